package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"google.golang.org/api/option"
)

// Client stores objects in a Google Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket types.BucketName
}

var _ interfaces.ObjectStorage = (*Client)(nil)

func New(ctx context.Context, bucket types.BucketName, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client",
			goerr.V("bucket", bucket),
		)
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

func (x *Client) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := x.client.Bucket(x.bucket.String()).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", x.bucket),
			goerr.V("key", key),
		)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", x.bucket, key), nil
}
