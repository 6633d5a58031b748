package utils

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the slice of the S3 client the archive needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive stores analyzed photos under prefix/<key><ext>.
type S3Archive struct {
	client    PutObjectAPI
	bucket    string
	prefix    string
	publicURL string
}

func NewS3Client(cfg aws.Config) *s3.Client {
	return s3.NewFromConfig(cfg)
}

func NewS3Archive(client PutObjectAPI, bucket, prefix, publicURL string) *S3Archive {
	return &S3Archive{
		client:    client,
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Store uploads data and returns its public URL (CloudFront when configured).
func (a *S3Archive) Store(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objectKey := key + extensionFor(contentType)
	if a.prefix != "" {
		objectKey = a.prefix + "/" + objectKey
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if a.publicURL != "" {
		return fmt.Sprintf("%s/%s", a.publicURL, objectKey), nil
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, objectKey), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	// fallback: use subtype
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}
	return ""
}
