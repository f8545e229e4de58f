package media

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	appcfg "clipstream-backend/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader stores media in an S3-compatible bucket (MinIO in dev).
type S3Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Uploader(cfg *appcfg.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	publicBase := cfg.S3PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket)
	}

	return &S3Uploader{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
	}, nil
}

// Upload pushes the staged file under a random key and removes the local
// copy whether or not the upload succeeded, mirroring the staging dir
// contract: nothing lingers on disk after a request.
func (u *S3Uploader) Upload(ctx context.Context, localPath string) (*Asset, error) {
	if localPath == "" {
		return nil, fmt.Errorf("no file to upload")
	}
	defer os.Remove(localPath)

	f, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := filepath.Ext(localPath)
	key := uuid.New().String() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, err
	}

	return &Asset{URL: u.publicBaseURL + "/" + key}, nil
}
