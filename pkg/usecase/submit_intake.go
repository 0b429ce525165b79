package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/utils/errutil"
	"github.com/m-mizutani/usher/pkg/utils/logging"
)

const submitIntakeMessage = "Thanks for your submission! We will get back to you soon."

// SubmitIntake runs the intake pipeline: validate, persist, upload images,
// patch the record, then the best-effort tail of queue-position computation,
// notification, and analytics export. Any failure up to and including the
// record patch fails the request; the tail never does.
func (x *UseCase) SubmitIntake(ctx context.Context, input *model.SubmitIntakeInput) (*model.SubmitIntakeOutput, error) {
	repo := x.clients.IntakeRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "intake repository is not configured")
	}

	if issues := input.Validate(); len(issues) > 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "intake form validation failed",
			goerr.V("issues", issues),
		)
	}
	if len(input.Images) > 0 && x.clients.Storage() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "object storage is not configured but images are attached")
	}

	sub := model.NewIntakeSubmission(input, logging.CtxTime(ctx).UTC())

	if err := repo.PutSubmission(ctx, sub); err != nil {
		return nil, goerr.Wrap(err, "failed to persist intake submission",
			goerr.V("key", sub.Key().ID()),
		)
	}

	if len(input.Images) > 0 {
		urls, err := x.uploadIntakeImages(ctx, sub, input.Images)
		if err != nil {
			// The record persisted above stays behind with an empty image
			// list; there is no compensating delete.
			return nil, err
		}

		if err := repo.UpdateSubmissionImages(ctx, sub.Key(), urls); err != nil {
			return nil, goerr.Wrap(err, "failed to update submission images",
				goerr.V("key", sub.Key().ID()),
			)
		}
		sub.Images = urls
	}

	// Advisory only: concurrent submissions may observe the same count.
	var queueNumber *int
	if count, err := repo.CountIncomplete(ctx); err != nil {
		errutil.HandleError(ctx, "failed to count incomplete submissions", err)
	} else {
		queueNumber = &count
	}

	x.notifyIntake(ctx, sub, queueNumber)

	if err := x.exportIntake(ctx, sub); err != nil {
		errutil.HandleError(ctx, "failed to export intake submission", err)
	}

	return &model.SubmitIntakeOutput{
		FormData:    sub,
		QueueNumber: queueNumber,
		Message:     submitIntakeMessage,
	}, nil
}

// uploadIntakeImages stores the attachments one at a time. Uploads are
// serialized so the index in each object key and in error attribution is
// stable; the first failure aborts the remaining uploads.
func (x *UseCase) uploadIntakeImages(ctx context.Context, sub *model.IntakeSubmission, images []model.ImageAttachment) ([]string, error) {
	storage := x.clients.Storage()

	urls := make([]string, 0, len(images))
	for i, img := range images {
		key := fmt.Sprintf("%d-%s-%s-%d", sub.SubmittedAt.UnixMilli(), sub.GitHubHandle, sub.Email, i)

		url, err := storage.Put(ctx, key, img.Data, img.ContentType)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to upload image",
				goerr.V("index", i),
				goerr.V("key", key),
				goerr.V("fileName", img.FileName),
			)
		}
		urls = append(urls, url)
	}

	return urls, nil
}
