// Package storage хранит содержимое файлов во внешнем S3-совместимом хранилище
// (Supabase Storage, MinIO, AWS S3) и строит публичные ссылки на объекты.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config - параметры подключения к бакету.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // пусто - AWS по умолчанию
	AccessKeyID     string
	SecretAccessKey string
	// PublicURL - база публичных ссылок, например
	// https://<project>.supabase.co/storage/v1/object/public
	PublicURL string
}

// S3Store кладёт объекты в бакет и отдаёт их публичные адреса.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store собирает S3-клиент по конфигурации.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO и Supabase требуют path-style адресацию
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithClient(client, cfg.Bucket, publicBase(cfg)), nil
}

// NewS3StoreWithClient оборачивает уже настроенный клиент.
func NewS3StoreWithClient(client *s3.Client, bucket, publicURL string) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func publicBase(cfg S3Config) string {
	switch {
	case cfg.PublicURL != "":
		return cfg.PublicURL
	case cfg.Endpoint != "":
		return cfg.Endpoint
	default:
		return fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.Region)
	}
}

// Put загружает данные под ключом key с указанным Content-Type.
func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: put %q: %w", key, err)
	}
	return nil
}

// PublicURL возвращает публично доступный адрес объекта.
func (s *S3Store) PublicURL(key string) string {
	return s.publicURL + "/" + url.PathEscape(s.bucket) + "/" + url.PathEscape(key)
}
