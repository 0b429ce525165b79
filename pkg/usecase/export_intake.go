package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/utils/logging"
)

// exportIntake mirrors the submission snapshot into BigQuery for analytics.
// The table schema is inferred from the record and widened in place when
// new fields appear.
func (x *UseCase) exportIntake(ctx context.Context, sub *model.IntakeSubmission) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		logging.From(ctx).Debug("BigQuery is not configured, skipping intake export")
		return nil
	}

	schema, err := createOrUpdateIntakeTable(ctx, bq, sub)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, sub); err != nil {
		return goerr.Wrap(err, "failed to insert intake record to BigQuery")
	}

	return nil
}

func createOrUpdateIntakeTable(ctx context.Context, bq interfaces.BigQuery, sub *model.IntakeSubmission) (bigquery.Schema, error) {
	schema, err := bqs.Infer(sub)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer intake schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get intake table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create intake table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge intake schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update intake table")
	}

	return mergedSchema, nil
}
