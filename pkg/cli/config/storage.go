package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	bucket string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for uploaded images (optional)",
			Category:    "Storage",
			Sources:     cli.EnvVars("USHER_STORAGE_BUCKET"),
			Destination: &x.bucket,
		},
	}
}

func (x *Storage) Enabled() bool {
	return x.bucket != ""
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("bucket", x.bucket),
	)
}

func (x *Storage) NewClient(ctx context.Context) (*gcs.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return gcs.New(ctx, types.BucketName(x.bucket))
}
