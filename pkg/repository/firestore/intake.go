package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionIntake = "intake_submissions"
)

type intakeRepository struct {
	client *firestore.Client
}

func (r *intakeRepository) PutSubmission(ctx context.Context, sub *model.IntakeSubmission) error {
	if sub.Email == "" || sub.GitHubHandle == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "email or github handle is empty",
			goerr.V("email", sub.Email),
			goerr.V("githubHandle", sub.GitHubHandle),
		)
	}

	docRef := r.client.Collection(collectionIntake).Doc(sub.Key().ID())

	if _, err := docRef.Set(ctx, sub); err != nil {
		return goerr.Wrap(err, "failed to put submission",
			goerr.V("key", sub.Key().ID()),
		)
	}

	return nil
}

func (r *intakeRepository) UpdateSubmissionImages(ctx context.Context, key model.SubmissionKey, images []string) error {
	docRef := r.client.Collection(collectionIntake).Doc(key.ID())

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "Images", Value: images},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "submission not found",
				goerr.V("key", key.ID()),
			)
		}
		return goerr.Wrap(err, "failed to update submission images",
			goerr.V("key", key.ID()),
		)
	}

	return nil
}

func (r *intakeRepository) GetSubmission(ctx context.Context, key model.SubmissionKey) (*model.IntakeSubmission, error) {
	doc, err := r.client.Collection(collectionIntake).Doc(key.ID()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "submission not found",
				goerr.V("key", key.ID()),
			)
		}
		return nil, goerr.Wrap(err, "failed to get submission",
			goerr.V("key", key.ID()),
		)
	}

	var sub model.IntakeSubmission
	if err := doc.DataTo(&sub); err != nil {
		return nil, goerr.Wrap(err, "failed to decode submission",
			goerr.V("key", key.ID()),
		)
	}
	if sub.Images == nil {
		sub.Images = []string{}
	}

	return &sub, nil
}

func (r *intakeRepository) CountIncomplete(ctx context.Context) (int, error) {
	query := r.client.Collection(collectionIntake).Where("IsComplete", "==", false)

	results, err := query.NewAggregationQuery().WithCount("count").Get(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count incomplete submissions")
	}

	raw, ok := results["count"]
	if !ok {
		return 0, goerr.New("count is missing in aggregation result")
	}
	value, ok := raw.(*firestorepb.Value)
	if !ok {
		return 0, goerr.New("unexpected aggregation result type", goerr.V("result", raw))
	}

	return int(value.GetIntegerValue()), nil
}
