package services

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	sc "github.com/slugmart/slugmart/internal/server/config"
	"github.com/slugmart/slugmart/internal/server/models"
)

var (
	UploadFolders      = []string{"profile", "listing"}
	UploadContentTypes = []string{"image/jpeg", "image/png"}

	unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	headBucket = func(c *s3.Client, ctx context.Context, in *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
		return c.HeadBucket(ctx, in)
	}

	now = time.Now
)

// UploadService hands out presigned PUT URLs so clients upload images
// straight to the bucket.
type UploadService struct {
	config *sc.Config
	logger logging.Logger
}

func NewUploadService(config *sc.Config, logger logging.Logger) *UploadService {
	return &UploadService{config: config, logger: logger.With("module", "uploads")}
}

// SanitizeFileName drops every character outside [A-Za-z0-9._-].
func SanitizeFileName(name string) string {
	return unsafeFileNameChars.ReplaceAllString(name, "")
}

func (s *UploadService) getClient(ctx context.Context) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.config.S3Region)}
	if s.config.S3RootUser != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Ping checks that the configured bucket exists and is reachable.
func (s *UploadService) Ping(ctx context.Context) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return fmt.Errorf("s3 config: %w", err)
	}
	if _, err := headBucket(client, ctx, &s3.HeadBucketInput{Bucket: aws.String(s.config.S3Bucket)}); err != nil {
		return fmt.Errorf("s3 bucket %q: %w", s.config.S3Bucket, err)
	}
	return nil
}

// GenerateUploadURL validates req and presigns a PUT for
// folder/<unix millis>_<sanitized name>.
func (s *UploadService) GenerateUploadURL(ctx context.Context, req models.UploadRequest) (*models.UploadURL, error) {
	if !slices.Contains(UploadFolders, req.Folder) {
		return nil, common.ErrInvalidFolder
	}
	if !slices.Contains(UploadContentTypes, req.ContentType) {
		return nil, common.ErrUnsupportedContent
	}
	name := SanitizeFileName(req.FileName)
	if name == "" {
		return nil, common.ErrInvalidInput
	}
	key := fmt.Sprintf("%s/%d_%s", req.Folder, now().UnixMilli(), name)

	client, err := s.getClient(ctx)
	if err != nil {
		s.logger.Error(ctx, "s3 client", "error", err)
		return nil, common.ErrorInternal
	}

	signed, err := presignPutObject(newS3PresignClient(client), ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(s.config.UploadURLValidityDuration))
	if err != nil {
		s.logger.Error(ctx, "presign put", "key", key, "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "upload url generated", "folder", req.Folder, "key", key)
	return &models.UploadURL{PreSignedURL: signed.URL, FileURL: s.fileURL(key)}, nil
}

func (s *UploadService) fileURL(key string) string {
	if s.config.S3BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.config.S3BaseEndpoint, "/"), s.config.S3Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.S3Bucket, s.config.S3Region, key)
}
