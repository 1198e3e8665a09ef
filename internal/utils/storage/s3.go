package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AllowImage lists the content types accepted for meal photos. Any other image/* type is
// also accepted by IsAllowedImage.
var AllowImage = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"image/heic",
	"application/octet-stream",
}

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, data []byte, contentType string, folder string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	objectAPI interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	Config struct {
		Bucket    string
		Region    string
		AccessKey string
		SecretKey string
	}

	awsS3 struct {
		client objectAPI
		bucket string
		region string
	}
)

// NewAwsS3 builds the photo store. Static credentials are used when both keys are set;
// otherwise the default AWS credential chain applies.
func NewAwsS3(ctx context.Context, cfg Config) (AwsS3, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newAwsS3(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Region), nil
}

func newAwsS3(client objectAPI, bucket, region string) *awsS3 {
	return &awsS3{client: client, bucket: bucket, region: region}
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, data []byte, contentType string, folder string) (string, error) {
	if !IsAllowedImage(contentType) {
		return "", fmt.Errorf("content type %q is not allowed", contentType)
	}

	key := fmt.Sprintf("%s/%s-%d%s", folder, strings.TrimSuffix(fileName, filepath.Ext(fileName)), time.Now().UnixNano(), extension(fileName, contentType))
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

// GetObjectKeyFromLink reverses GetPublicLinkKey. Links to other buckets yield "".
func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func IsAllowedImage(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, allowed := range AllowImage {
		if ct == allowed {
			return true
		}
	}
	return strings.HasPrefix(ct, "image/")
}

func extension(fileName, contentType string) string {
	if ext := filepath.Ext(fileName); ext != "" {
		return strings.ToLower(ext)
	}
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ""
	}
}
