package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/mock"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/infra"
	"github.com/m-mizutani/usher/pkg/repository/memory"
	"github.com/m-mizutani/usher/pkg/usecase"
	"github.com/m-mizutani/usher/pkg/utils/logging"
)

func validIntakeInput() *model.SubmitIntakeInput {
	return &model.SubmitIntakeInput{
		Name:         "Grace Hopper",
		Email:        "grace@example.com",
		GitHubHandle: "ghopper",
		Notes:        "looking forward to it",
		RawRepos:     `[{"externalId": 42, "fullName": "ghopper/compiler", "name": "compiler", "url": "https://github.com/ghopper/compiler"}]`,
	}
}

func pngAttachment(name string) model.ImageAttachment {
	return model.ImageAttachment{
		FileName:    name,
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

func fixedTimeCtx(t *testing.T, at time.Time) context.Context {
	t.Helper()
	return logging.CtxWithTime(context.Background(), func() time.Time { return at })
}

func TestSubmitIntake(t *testing.T) {
	submittedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("submission without images gets queue number 1", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithIntakeRepository(repo)))
		ctx := fixedTimeCtx(t, submittedAt)

		out := gt.R1(uc.SubmitIntake(ctx, validIntakeInput())).NoError(t)

		gt.V(t, out.FormData.Email).Equal("grace@example.com")
		gt.V(t, len(out.FormData.Repos)).Equal(1)
		gt.V(t, out.FormData.Repos[0].ExternalID).Equal(42)
		gt.V(t, len(out.FormData.Images)).Equal(0)
		gt.V(t, out.FormData.IsComplete).Equal(false)
		gt.V(t, out.Message).Equal("Thanks for your submission! We will get back to you soon.")

		if gt.V(t, out.QueueNumber != nil).Equal(true); out.QueueNumber != nil {
			gt.V(t, *out.QueueNumber).Equal(1)
		}

		stored := gt.R1(repo.GetSubmission(ctx, out.FormData.Key())).NoError(t)
		gt.V(t, stored.GitHubHandle).Equal("ghopper")
	})

	t.Run("images upload in order with stable keys", func(t *testing.T) {
		repo := memory.New()
		storageMock := &mock.ObjectStorageMock{
			PutFunc: func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
				return "https://storage.example.com/" + key, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithIntakeRepository(repo),
			infra.WithStorage(storageMock),
		))
		ctx := fixedTimeCtx(t, submittedAt)

		input := validIntakeInput()
		input.Images = []model.ImageAttachment{
			pngAttachment("desk.png"),
			pngAttachment("badge.png"),
		}

		out := gt.R1(uc.SubmitIntake(ctx, input)).NoError(t)

		calls := storageMock.PutCalls()
		gt.V(t, len(calls)).Equal(2)
		prefix := fmt.Sprintf("%d-ghopper-grace@example.com-", submittedAt.UnixMilli())
		gt.V(t, calls[0].Key).Equal(prefix + "0")
		gt.V(t, calls[1].Key).Equal(prefix + "1")

		gt.V(t, len(out.FormData.Images)).Equal(2)

		stored := gt.R1(repo.GetSubmission(ctx, out.FormData.Key())).NoError(t)
		gt.V(t, len(stored.Images)).Equal(2)
		gt.V(t, stored.Images[0]).Equal("https://storage.example.com/" + prefix + "0")
	})

	t.Run("upload failure stops later uploads and fails the request", func(t *testing.T) {
		repo := memory.New()
		var uploads int
		storageMock := &mock.ObjectStorageMock{
			PutFunc: func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
				uploads++
				if uploads == 3 {
					return "", errors.New("bucket unavailable")
				}
				return "https://storage.example.com/" + key, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithIntakeRepository(repo),
			infra.WithStorage(storageMock),
		))
		ctx := fixedTimeCtx(t, submittedAt)

		input := validIntakeInput()
		input.Images = []model.ImageAttachment{
			pngAttachment("a.png"),
			pngAttachment("b.png"),
			pngAttachment("c.png"),
			pngAttachment("d.png"),
		}

		_, err := uc.SubmitIntake(ctx, input)
		gt.Error(t, err)
		gt.V(t, uploads).Equal(3)

		// The record persisted before the uploads stays behind with an
		// empty image list.
		key := model.SubmissionKey{
			Email:        "grace@example.com",
			GitHubHandle: "ghopper",
			SubmittedAt:  submittedAt,
		}
		stored := gt.R1(repo.GetSubmission(ctx, key)).NoError(t)
		gt.V(t, len(stored.Images)).Equal(0)
	})

	t.Run("image patch failure fails the request", func(t *testing.T) {
		repoMock := &mock.IntakeRepositoryMock{
			PutSubmissionFunc: func(ctx context.Context, sub *model.IntakeSubmission) error {
				return nil
			},
			UpdateSubmissionImagesFunc: func(ctx context.Context, key model.SubmissionKey, images []string) error {
				return errors.New("datastore write failed")
			},
		}
		storageMock := &mock.ObjectStorageMock{
			PutFunc: func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
				return "https://storage.example.com/" + key, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithIntakeRepository(repoMock),
			infra.WithStorage(storageMock),
		))
		ctx := fixedTimeCtx(t, submittedAt)

		input := validIntakeInput()
		input.Images = []model.ImageAttachment{pngAttachment("a.png")}

		_, err := uc.SubmitIntake(ctx, input)
		gt.Error(t, err)
	})

	t.Run("validation failure carries field issues", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithIntakeRepository(memory.New())))
		ctx := fixedTimeCtx(t, submittedAt)

		input := validIntakeInput()
		input.Email = "not-an-address"

		_, err := uc.SubmitIntake(ctx, input)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(infra.New(infra.WithIntakeRepository(repo)))
		ctx := fixedTimeCtx(t, submittedAt)

		input := validIntakeInput()
		input.GitHubHandle = "-bad-handle-"

		_, err := uc.SubmitIntake(ctx, input)
		gt.Error(t, err)

		count := gt.R1(repo.CountIncomplete(ctx)).NoError(t)
		gt.V(t, count).Equal(0)
	})

	t.Run("notifier outage does not fail the submission", func(t *testing.T) {
		repo := memory.New()
		notifierMock := &mock.NotifierMock{
			SendTemplatedFunc: func(ctx context.Context, m *interfaces.TemplatedMail) error {
				return errors.New("sendgrid is down")
			},
			SendPlainFunc: func(ctx context.Context, m *interfaces.PlainMail) error {
				return errors.New("sendgrid is down")
			},
		}
		uc := usecase.New(infra.New(
			infra.WithIntakeRepository(repo),
			infra.WithNotifier(notifierMock),
		))
		ctx := fixedTimeCtx(t, submittedAt)

		out := gt.R1(uc.SubmitIntake(ctx, validIntakeInput())).NoError(t)
		gt.V(t, out.QueueNumber != nil).Equal(true)
		gt.V(t, len(notifierMock.SendTemplatedCalls())).Equal(1)
		gt.V(t, len(notifierMock.SendPlainCalls())).Equal(1)
	})

	t.Run("count failure drops the queue number only", func(t *testing.T) {
		repoMock := &mock.IntakeRepositoryMock{
			PutSubmissionFunc: func(ctx context.Context, sub *model.IntakeSubmission) error {
				return nil
			},
			CountIncompleteFunc: func(ctx context.Context) (int, error) {
				return 0, errors.New("aggregation failed")
			},
		}
		uc := usecase.New(infra.New(infra.WithIntakeRepository(repoMock)))
		ctx := fixedTimeCtx(t, submittedAt)

		out := gt.R1(uc.SubmitIntake(ctx, validIntakeInput())).NoError(t)
		gt.True(t, out.QueueNumber == nil)
	})

	t.Run("persist failure fails the request", func(t *testing.T) {
		repoMock := &mock.IntakeRepositoryMock{
			PutSubmissionFunc: func(ctx context.Context, sub *model.IntakeSubmission) error {
				return errors.New("datastore is down")
			},
		}
		uc := usecase.New(infra.New(infra.WithIntakeRepository(repoMock)))
		ctx := fixedTimeCtx(t, submittedAt)

		_, err := uc.SubmitIntake(ctx, validIntakeInput())
		gt.Error(t, err)
	})
}
