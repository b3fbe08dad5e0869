package minio

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

const defaultPresignTTL = 24 * time.Hour

// AssetStore resolves fixture images hosted in a bucket. With a public base URL it
// builds plain links; otherwise it hands out presigned GET URLs.
type AssetStore struct {
	client     *minio.Client
	bucket     string
	publicURL  string
	presignTTL time.Duration
}

func NewAssetStore(client *minio.Client, bucket, publicURL string) (*AssetStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errors.New("minio: empty asset bucket")
	}
	return &AssetStore{
		client:     client,
		bucket:     bucket,
		publicURL:  strings.TrimRight(strings.TrimSpace(publicURL), "/"),
		presignTTL: defaultPresignTTL,
	}, nil
}

func (s *AssetStore) ObjectURL(ctx context.Context, objectName string) (string, error) {
	objectName = strings.TrimLeft(objectName, "/")
	if objectName == "" {
		return "", errors.New("minio: empty object name")
	}
	if s.publicURL != "" {
		return s.publicURL + "/" + s.bucket + "/" + objectName, nil
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.presignTTL, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

var _ ports.ObjectStorage = (*AssetStore)(nil)
