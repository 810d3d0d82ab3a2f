package auth

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/storage"
	"google.golang.org/api/option"

	"github.com/growcircle/growcircle-backend/config"
)

// FirebaseClients bundles the Firebase Admin SDK clients the backend uses.
// Persistence, identity and file storage are all delegated to Firebase.
type FirebaseClients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *storage.Client
}

// InitializeFirebase initializes the Firebase Admin SDK and returns the
// Auth, Firestore and Storage clients.
func InitializeFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*FirebaseClients, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}

	return &FirebaseClients{
		Auth:      authClient,
		Firestore: fsClient,
		Storage:   storageClient,
	}, nil
}
