// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3 reads corpus files and article bodies from one bucket of an
// S3-compatible store. It is configured for path-style access
// (required by CEPH/Hetzner and most local fakes).
type S3 struct {
	s3       *s3.Client
	bucket   string
	prefix   string
	endpoint string
}

// NewS3 creates a read-only S3 source. Returns (nil, nil) if endpoint,
// credentials or bucket are empty, allowing the app to start without S3.
// Every key is resolved under prefix.
func NewS3(endpoint, region, accessKey, secretKey, bucket, prefix string) (*S3, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, nil
	}
	if region == "" {
		region = "us-east-1"
	}

	// Strip trailing slash from endpoint for consistent URL building.
	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &S3{
		s3:       client,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		endpoint: endpoint,
	}, nil
}

// Open streams the object stored under key. A missing object yields an
// error wrapping fs.ErrNotExist.
func (c *S3) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	full := c.objectKey(key)
	output, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(full),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("s3 open %s/%s: %w", c.bucket, full, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("s3 open %s/%s: %w", c.bucket, full, err)
	}
	return output.Body, nil
}

// String identifies the source in logs.
func (c *S3) String() string {
	return "s3:" + c.endpoint + "/" + c.bucket + "/" + c.prefix
}

func (c *S3) objectKey(key string) string {
	key = strings.TrimLeft(key, "/")
	if c.prefix == "" {
		return key
	}
	return c.prefix + "/" + key
}

func isNotFound(err error) bool {
	var nsk *s3types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
