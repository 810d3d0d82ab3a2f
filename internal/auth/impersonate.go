package auth

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
)

const auditLogCollection = "audit_logs"

// ImpersonationService mints short-lived custom tokens for support staff
// acting as another user. Every grant is written to the audit log before a
// token is issued; there is no silent identity swap.
type ImpersonationService struct {
	auth *fbauth.Client
	fs   *firestore.Client
}

func NewImpersonationService(authClient *fbauth.Client, fs *firestore.Client) *ImpersonationService {
	return &ImpersonationService{auth: authClient, fs: fs}
}

// AuditEntry is the persisted record of one impersonation grant.
type AuditEntry struct {
	Action    string    `firestore:"action"`
	ActorUID  string    `firestore:"actor_uid"`
	TargetUID string    `firestore:"target_uid"`
	Reason    string    `firestore:"reason"`
	RequestID string    `firestore:"request_id"`
	CreatedAt time.Time `firestore:"created_at"`
}

// Impersonate verifies the target exists, records the grant in the audit
// log, then returns a Firebase custom token for the target user. The actor
// must already be admin-verified by the caller.
func (s *ImpersonationService) Impersonate(ctx context.Context, actorUID, targetUID, reason, requestID string) (string, error) {
	if actorUID == targetUID {
		return "", fmt.Errorf("cannot impersonate yourself")
	}

	if _, err := s.auth.GetUser(ctx, targetUID); err != nil {
		return "", fmt.Errorf("target user lookup: %w", err)
	}

	entry := AuditEntry{
		Action:    "impersonate",
		ActorUID:  actorUID,
		TargetUID: targetUID,
		Reason:    reason,
		RequestID: requestID,
		CreatedAt: time.Now().UTC(),
	}

	// Audit first. If the audit write fails no token is minted.
	if _, _, err := s.fs.Collection(auditLogCollection).Add(ctx, entry); err != nil {
		return "", fmt.Errorf("write audit entry: %w", err)
	}

	token, err := s.auth.CustomTokenWithClaims(ctx, targetUID, map[string]interface{}{
		"impersonated_by": actorUID,
	})
	if err != nil {
		return "", fmt.Errorf("mint custom token: %w", err)
	}

	return token, nil
}
