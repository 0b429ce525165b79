package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID string
	datasetID string
	tableID   string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("USHER_BIGQUERY_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("USHER_BIGQUERY_DATASET_ID"),
			Value:       "usher",
			Destination: &x.datasetID,
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("USHER_BIGQUERY_TABLE_ID"),
			Value:       "intake_submissions",
			Destination: &x.tableID,
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}

func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return bq.New(ctx,
		types.GoogleProjectID(x.projectID),
		types.BQDatasetID(x.datasetID),
		types.BQTableID(x.tableID),
	)
}
