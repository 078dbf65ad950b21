package storage

import (
	"context"
	"fmt"
	"log"
	"os"

	cloudstorage "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseUploader implements MediaUploader against a Firebase Storage
// (Google Cloud Storage) bucket.
type FirebaseUploader struct {
	bucket     *cloudstorage.BucketHandle
	bucketName string
}

// NewFirebaseUploader initializes the Firebase app and returns an uploader
// bound to the configured bucket.
func NewFirebaseUploader(ctx context.Context, credentialsPath, bucketName string) (*FirebaseUploader, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("Firebase credentials path not provided")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("storage bucket name not provided")
	}

	// Check if the credentials file exists
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)

	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	storageClient, err := firebaseApp.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase storage client: %w", err)
	}

	bucket, err := storageClient.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("error getting storage bucket %s: %w", bucketName, err)
	}

	log.Println("Firebase app and storage bucket initialized successfully!")
	return &FirebaseUploader{bucket: bucket, bucketName: bucketName}, nil
}

// Upload writes the blob under a fresh key and returns its public URL.
func (u *FirebaseUploader) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	ext, err := checkExtension(filename)
	if err != nil {
		return "", err
	}

	key := newObjectKey(ext)

	w := u.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("error uploading object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("error finalizing object %s: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, key), nil
}
