// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package resource

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
)

func newS3API(region, endpoint string) (s3iface.S3API, error) {
	config := aws.NewConfig()
	if len(region) > 0 {
		config = config.WithRegion(region)
	}

	if len(endpoint) > 0 {
		config = config.WithEndpoint(endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, err
	}

	return s3.New(sess), nil
}

// newS3FS copies every object beneath prefix in the given bucket into an in-memory filesystem.
// Object keys ending in a slash are directory markers and are skipped.
func newS3FS(ctx context.Context, api s3iface.S3API, bucket, prefix string) (hackpadfs.FS, error) {
	if len(bucket) == 0 {
		return nil, ErrBucketRequired
	}

	prefix = strings.TrimPrefix(prefix, "/")
	if len(prefix) > 0 && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	target, err := mem.NewFS()
	if err != nil {
		return nil, err
	}

	var keys []*s3.Object
	err = api.ListObjectsV2PagesWithContext(
		ctx,
		&s3.ListObjectsV2Input{
			Bucket: aws.String(bucket),
			Prefix: aws.String(prefix),
		},
		func(page *s3.ListObjectsV2Output, _ bool) bool {
			keys = append(keys, page.Contents...)
			return true
		},
	)

	if err != nil {
		return nil, fmt.Errorf("Unable to list s3://%s/%s: %w", bucket, prefix, err)
	}

	for _, object := range keys {
		key := aws.StringValue(object.Key)
		name := strings.TrimPrefix(key, prefix)
		if len(name) == 0 || strings.HasSuffix(name, "/") {
			continue
		}

		if _, err := CleanPath(name); err != nil {
			return nil, fmt.Errorf("Object s3://%s/%s cannot be served: %w", bucket, key, err)
		}

		data, err := getObject(ctx, api, bucket, key)
		if err != nil {
			return nil, err
		}

		if err := writeFile(target, name, data); err != nil {
			return nil, err
		}

		if object.LastModified != nil {
			if err := target.Chtimes(name, *object.LastModified, *object.LastModified); err != nil {
				return nil, err
			}
		}
	}

	return target, nil
}

func getObject(ctx context.Context, api s3iface.S3API, bucket, key string) ([]byte, error) {
	output, err := api.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, fmt.Errorf("Unable to get s3://%s/%s: %w", bucket, key, err)
	}

	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("Unable to read s3://%s/%s: %w", bucket, key, err)
	}

	return data, nil
}

func writeFile(target *mem.FS, name string, data []byte) error {
	if dir := path.Dir(name); dir != "." {
		if err := target.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := target.OpenFile(name, hackpadfs.FlagWriteOnly|hackpadfs.FlagCreate|hackpadfs.FlagTruncate, 0o644)
	if err != nil {
		return err
	}

	if _, err := hackpadfs.WriteFile(f, data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
