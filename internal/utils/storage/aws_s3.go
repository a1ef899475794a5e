package storage

import (
	"RecipeHub/domain"
	"RecipeHub/internal/utils"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxUploadSize is the per-part upload limit.
const MaxUploadSize = 20 << 20

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, file *multipart.FileHeader, folder string, allowed ...string) (UploadedObject, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	// UploadedObject describes a stored file.
	UploadedObject struct {
		Key  string
		URL  string
		Kind string
	}

	awsS3 struct {
		client   *s3.Client
		bucket   string
		region   string
		endpoint string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	endpoint := strings.TrimSuffix(utils.GetConfig("AWS_S3_ENDPOINT"), "/")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
		config.WithRegion(region),
	)
	if err != nil {
		log.Fatalf("unable to load S3 config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &awsS3{
		client:   client,
		bucket:   bucket,
		region:   region,
		endpoint: endpoint,
	}
}

func (s *awsS3) UploadFile(ctx context.Context, file *multipart.FileHeader, folder string, allowed ...string) (UploadedObject, error) {
	kind, ext, err := ClassifyFile(file, allowed...)
	if err != nil {
		return UploadedObject{}, err
	}
	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
	return s.put(ctx, key, kind, file)
}

func (s *awsS3) put(ctx context.Context, key string, kind MediaType, file *multipart.FileHeader) (UploadedObject, error) {
	src, err := file.Open()
	if err != nil {
		return UploadedObject{}, err
	}
	defer src.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(kind.MIME),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return UploadedObject{}, fmt.Errorf("put object %s: %w", key, err)
	}

	return UploadedObject{
		Key:  key,
		URL:  s.GetPublicLinkKey(key),
		Kind: kind.Kind,
	}, nil
}

func (s *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := s.GetPublicLinkKey("")
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

// KindOf reports whether an uploaded URL refers to an image or a video, based
// on the stored object's extension.
func KindOf(url string) string {
	lower := strings.ToLower(url)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return domain.MediaKindVideo
		}
	}
	return domain.MediaKindImage
}
