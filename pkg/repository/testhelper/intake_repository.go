package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/repository"
)

func newSubmission(email, handle string, submittedAt time.Time) *model.IntakeSubmission {
	desc := "test repository"
	return &model.IntakeSubmission{
		Name:         "Test User",
		Email:        email,
		GitHubHandle: handle,
		Notes:        "some notes",
		Repos: []model.Repository{
			{
				ExternalID:  1234,
				Name:        "widget",
				FullName:    handle + "/widget",
				Description: &desc,
				URL:         "https://github.com/" + handle + "/widget",
				Permissions: model.RepoPermissions{Admin: true, Push: true, Pull: true},
				StarCount:   12,
			},
		},
		Images:      []string{},
		SubmittedAt: submittedAt,
	}
}

// TestAll exercises an IntakeRepository implementation against the behavior
// shared by all backends.
func TestAll(t *testing.T, repo interfaces.IntakeRepository) {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)
	suffix := base.UnixNano()

	t.Run("put and get", func(t *testing.T) {
		email := fmt.Sprintf("alice+%d@example.com", suffix)
		sub := newSubmission(email, "alice", base)
		gt.NoError(t, repo.PutSubmission(ctx, sub))

		got := gt.R1(repo.GetSubmission(ctx, sub.Key())).NoError(t)
		gt.V(t, got.Email).Equal(email)
		gt.V(t, got.GitHubHandle).Equal("alice")
		gt.V(t, len(got.Repos)).Equal(1)
		gt.V(t, len(got.Images)).Equal(0)
		gt.V(t, got.IsComplete).Equal(false)
	})

	t.Run("update images", func(t *testing.T) {
		email := fmt.Sprintf("bob+%d@example.com", suffix)
		sub := newSubmission(email, "bob", base)
		gt.NoError(t, repo.PutSubmission(ctx, sub))

		images := []string{
			"https://storage.googleapis.com/bucket/a-0",
			"https://storage.googleapis.com/bucket/a-1",
		}
		gt.NoError(t, repo.UpdateSubmissionImages(ctx, sub.Key(), images))

		got := gt.R1(repo.GetSubmission(ctx, sub.Key())).NoError(t)
		gt.V(t, got.Images).Equal(images)
	})

	t.Run("update images of missing record", func(t *testing.T) {
		key := model.SubmissionKey{
			Email:        fmt.Sprintf("nobody+%d@example.com", suffix),
			GitHubHandle: "nobody",
			SubmittedAt:  base,
		}
		err := repo.UpdateSubmissionImages(ctx, key, []string{"https://example.com/x"})
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("get missing record", func(t *testing.T) {
		key := model.SubmissionKey{
			Email:        fmt.Sprintf("ghost+%d@example.com", suffix),
			GitHubHandle: "ghost",
			SubmittedAt:  base,
		}
		_, err := repo.GetSubmission(ctx, key)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("count incomplete grows with submissions", func(t *testing.T) {
		before := gt.R1(repo.CountIncomplete(ctx)).NoError(t)

		email := fmt.Sprintf("carol+%d@example.com", suffix)
		gt.NoError(t, repo.PutSubmission(ctx, newSubmission(email, "carol", base)))

		after := gt.R1(repo.CountIncomplete(ctx)).NoError(t)
		gt.V(t, after).Equal(before + 1)
	})

	t.Run("resubmission by same identity keeps both records", func(t *testing.T) {
		email := fmt.Sprintf("dave+%d@example.com", suffix)
		first := newSubmission(email, "dave", base)
		second := newSubmission(email, "dave", base.Add(time.Minute))
		gt.NoError(t, repo.PutSubmission(ctx, first))
		gt.NoError(t, repo.PutSubmission(ctx, second))

		gotFirst := gt.R1(repo.GetSubmission(ctx, first.Key())).NoError(t)
		gotSecond := gt.R1(repo.GetSubmission(ctx, second.Key())).NoError(t)
		gt.V(t, gotFirst.SubmittedAt.UnixMilli()).Equal(base.UnixMilli())
		gt.V(t, gotSecond.SubmittedAt.UnixMilli()).Equal(base.Add(time.Minute).UnixMilli())
	})
}
