// Package storage holds the file-upload backends behind POST /upload. The
// backend is picked once at startup; there is no runtime fallback between them.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores one file and returns the URL it will be served from.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// SanitizeFilename collapses whitespace to dashes and strips any path
// components, mirroring how uploaded names are keyed.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Join(strings.Fields(name), "-")
}

// S3Uploader stores uploads in an S3 bucket under an uploads/ prefix.
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Uploader(ctx context.Context, bucket, publicURL string) (*S3Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("upload bucket must not be empty")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	return &S3Uploader{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := "uploads/" + SanitizeFilename(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	return u.publicURL + "/" + key, nil
}

// DiskUploader writes uploads under a local directory, served as /uploads/.
type DiskUploader struct {
	dir string
}

func NewDiskUploader(dir string) (*DiskUploader, error) {
	if dir == "" {
		dir = filepath.Join("public", "uploads")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DiskUploader{dir: dir}, nil
}

func (u *DiskUploader) Upload(_ context.Context, filename, _ string, body io.Reader) (string, error) {
	name := SanitizeFilename(filename)

	f, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return "/uploads/" + name, nil
}
