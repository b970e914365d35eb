package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/logging"
	sc "github.com/slugmart/slugmart/internal/server/config"
	"github.com/slugmart/slugmart/internal/server/models"
)

type s3Capture struct {
	loadOpts awsconfig.LoadOptions
	s3Opts   s3.Options
	put      *s3.PutObjectInput
	presign  s3.PresignOptions
	head     *s3.HeadBucketInput
}

// stubS3 replaces every S3 seam for the duration of the test.
func stubS3(t *testing.T, presignErr, headErr error) *s3Capture {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origHead := headBucket
	origNow := now
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		headBucket = origHead
		now = origNow
	})

	c := &s3Capture{}
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			if err := fn(&c.loadOpts); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&c.s3Opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(cl *s3.Client) *s3.PresignClient {
		if cl == nil {
			t.Fatalf("nil client passed to presign")
		}
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		c.put = in
		for _, fn := range optFns {
			fn(&c.presign)
		}
		if presignErr != nil {
			return nil, presignErr
		}
		return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + *in.Key + "?X-Amz-Signature=abc", Method: "PUT"}, nil
	}
	headBucket = func(cl *s3.Client, ctx context.Context, in *s3.HeadBucketInput) (*s3.HeadBucketOutput, error) {
		c.head = in
		return &s3.HeadBucketOutput{}, headErr
	}
	now = func() time.Time { return time.UnixMilli(1700000000123) }
	return c
}

func awsUploadConfig() *sc.Config {
	return &sc.Config{
		S3Bucket:                  "slugmart-images",
		S3Region:                  "us-west-1",
		UploadURLValidityDuration: time.Minute,
	}
}

func TestGenerateUploadURL_AWS(t *testing.T) {
	c := stubS3(t, nil, nil)
	svc := NewUploadService(awsUploadConfig(), logging.Nop{})

	got, err := svc.GenerateUploadURL(context.Background(), models.UploadRequest{
		FileName: "my photo (1).png", ContentType: "image/png", Folder: "listing",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	const key = "listing/1700000000123_myphoto1.png"
	if *c.put.Key != key || *c.put.Bucket != "slugmart-images" || *c.put.ContentType != "image/png" {
		t.Fatalf("unexpected put input: key=%q bucket=%q ct=%q", *c.put.Key, *c.put.Bucket, *c.put.ContentType)
	}
	if c.presign.Expires != time.Minute {
		t.Fatalf("expires not applied: %v", c.presign.Expires)
	}
	if c.loadOpts.Region != "us-west-1" {
		t.Fatalf("region not applied: %q", c.loadOpts.Region)
	}
	if c.loadOpts.Credentials != nil {
		t.Fatalf("static credentials set without a configured user")
	}
	if c.s3Opts.BaseEndpoint != nil || c.s3Opts.UsePathStyle {
		t.Fatalf("custom endpoint options set for AWS")
	}
	if got.FileURL != "https://slugmart-images.s3.us-west-1.amazonaws.com/"+key {
		t.Fatalf("file url: %q", got.FileURL)
	}
	if !strings.Contains(got.PreSignedURL, key) {
		t.Fatalf("presigned url: %q", got.PreSignedURL)
	}
}

func TestGenerateUploadURL_CustomEndpoint(t *testing.T) {
	c := stubS3(t, nil, nil)
	cfg := awsUploadConfig()
	cfg.S3BaseEndpoint = "http://127.0.0.1:9000/"
	cfg.S3RootUser = "minioadmin"
	cfg.S3RootPassword = "minioadmin"
	svc := NewUploadService(cfg, logging.Nop{})

	got, err := svc.GenerateUploadURL(context.Background(), models.UploadRequest{
		FileName: "avatar.jpg", ContentType: "image/jpeg", Folder: "profile",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.s3Opts.BaseEndpoint == nil || *c.s3Opts.BaseEndpoint != "http://127.0.0.1:9000/" || !c.s3Opts.UsePathStyle {
		t.Fatalf("endpoint options not applied: %+v", c.s3Opts)
	}
	if c.loadOpts.Credentials == nil {
		t.Fatalf("static credentials not applied")
	}
	if got.FileURL != "http://127.0.0.1:9000/slugmart-images/profile/1700000000123_avatar.jpg" {
		t.Fatalf("file url: %q", got.FileURL)
	}
}

func TestGenerateUploadURL_Validation(t *testing.T) {
	stubS3(t, nil, nil)
	svc := NewUploadService(awsUploadConfig(), logging.Nop{})

	cases := []struct {
		name string
		req  models.UploadRequest
		want error
	}{
		{"bad folder", models.UploadRequest{FileName: "a.png", ContentType: "image/png", Folder: "secrets"}, common.ErrInvalidFolder},
		{"bad content type", models.UploadRequest{FileName: "a.gif", ContentType: "image/gif", Folder: "listing"}, common.ErrUnsupportedContent},
		{"nothing left after sanitizing", models.UploadRequest{FileName: "/ ()", ContentType: "image/png", Folder: "listing"}, common.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GenerateUploadURL(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGenerateUploadURL_PresignFailureIsInternal(t *testing.T) {
	stubS3(t, errors.New("sign-fail"), nil)
	svc := NewUploadService(awsUploadConfig(), logging.Nop{})

	_, err := svc.GenerateUploadURL(context.Background(), models.UploadRequest{
		FileName: "a.png", ContentType: "image/png", Folder: "listing",
	})
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want internal error, got %v", err)
	}
}

func TestUploadService_Ping(t *testing.T) {
	c := stubS3(t, nil, nil)
	svc := NewUploadService(awsUploadConfig(), logging.Nop{})

	if err := svc.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if *c.head.Bucket != "slugmart-images" {
		t.Fatalf("bucket: %q", *c.head.Bucket)
	}

	stubS3(t, nil, errors.New("no such bucket"))
	if err := svc.Ping(context.Background()); err == nil || !strings.Contains(err.Error(), "no such bucket") {
		t.Fatalf("expected head bucket error, got %v", err)
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"photo.png", "photo.png"},
		{"my photo.png", "myphoto.png"},
		{"../../etc/passwd", "....etcpasswd"},
		{"naïve-file_1.JPG", "nave-file_1.JPG"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
