package media

import (
	"context"
	"fmt"

	cloudstorage "cloud.google.com/go/storage"
	fbstorage "firebase.google.com/go/v4/storage"
	"github.com/google/uuid"

	"github.com/growcircle/growcircle-backend/internal/ai"
)

// extensions for the image MIME types the upload path accepts.
var mimeExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Uploader writes user images into the Firebase Storage bucket.
type Uploader struct {
	bucket     *cloudstorage.BucketHandle
	bucketName string
}

func NewUploader(client *fbstorage.Client, bucketName string) (*Uploader, error) {
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("resolve default bucket: %w", err)
	}
	return &Uploader{bucket: bucket, bucketName: bucketName}, nil
}

// UploadResult describes where the stored object lives.
type UploadResult struct {
	ObjectPath string `json:"objectPath"`
	URL        string `json:"url"`
}

// UploadDataURI validates the data URI, decodes it and writes the bytes to
// uploads/{uid}/{uuid}.{ext}. The same validator guards this path as the
// AI flows: nothing malformed reaches the bucket.
func (u *Uploader) UploadDataURI(ctx context.Context, uid, photoDataURI string) (*UploadResult, error) {
	img, err := ai.ParseDataURI(photoDataURI)
	if err != nil {
		return nil, err
	}

	ext, ok := mimeExtensions[img.MIMEType]
	if !ok {
		return nil, ai.ErrInvalidDataURI
	}

	objectPath := fmt.Sprintf("uploads/%s/%s.%s", uid, uuid.New().String(), ext)

	w := u.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = img.MIMEType
	if _, err := w.Write(img.Data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close object writer: %w", err)
	}

	return &UploadResult{
		ObjectPath: objectPath,
		URL:        fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectPath),
	}, nil
}
