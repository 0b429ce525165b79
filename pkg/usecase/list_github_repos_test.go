package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/usher/pkg/domain/mock"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/infra"
	"github.com/m-mizutani/usher/pkg/usecase"
)

func sourceRepo(id int64, fullName string, stars int, fork bool, perms map[string]bool) *model.SourceRepo {
	return &model.SourceRepo{
		ID:          id,
		Name:        shortName(fullName),
		FullName:    fullName,
		HTMLURL:     "https://github.com/" + fullName,
		Fork:        fork,
		StarCount:   stars,
		Permissions: perms,
	}
}

func prRepo(id int64, fullName string, stars int, fork bool, level types.PermissionLevel) *model.PullRequestRepo {
	return &model.PullRequestRepo{
		ID:         id,
		Name:       shortName(fullName),
		FullName:   fullName,
		HTMLURL:    "https://github.com/" + fullName,
		Fork:       fork,
		StarCount:  stars,
		Permission: level,
	}
}

func shortName(fullName string) string {
	for i := 0; i < len(fullName); i++ {
		if fullName[i] == '/' {
			return fullName[i+1:]
		}
	}
	return fullName
}

func newAggregationMock(personal []*model.SourceRepo, orgs map[string][]*model.SourceRepo, prs []*model.PullRequestRepo) *mock.GitHubClientMock {
	orgNames := make([]string, 0, len(orgs))
	for name := range orgs {
		orgNames = append(orgNames, name)
	}

	return &mock.GitHubClientMock{
		GetAuthenticatedUserFunc: func(ctx context.Context, token types.GitHubToken) (*model.GitHubUser, error) {
			return &model.GitHubUser{ID: 1, Login: "octocat"}, nil
		},
		ListUserReposFunc: func(ctx context.Context, token types.GitHubToken) ([]*model.SourceRepo, error) {
			return personal, nil
		},
		ListUserOrgsFunc: func(ctx context.Context, token types.GitHubToken) ([]string, error) {
			return orgNames, nil
		},
		ListOrgReposFunc: func(ctx context.Context, token types.GitHubToken, org string) ([]*model.SourceRepo, error) {
			return orgs[org], nil
		},
		SearchMergedPullRequestReposFunc: func(ctx context.Context, token types.GitHubToken, login string) ([]*model.PullRequestRepo, error) {
			return prs, nil
		},
	}
}

func writePerms() map[string]bool {
	return map[string]bool{"admin": true, "maintain": false, "push": true, "triage": true, "pull": true}
}

func TestListGitHubRepos(t *testing.T) {
	ctx := context.Background()
	token := types.GitHubToken("test-token")

	t.Run("segments are ordered personal, org, PR", func(t *testing.T) {
		ghMock := newAggregationMock(
			[]*model.SourceRepo{sourceRepo(10, "octocat/personal", 5, false, writePerms())},
			map[string][]*model.SourceRepo{
				"acme": {sourceRepo(20, "acme/service", 8, false, writePerms())},
			},
			[]*model.PullRequestRepo{prRepo(30, "upstream/lib", 100, false, types.PermissionRead)},
		)
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)
		gt.V(t, len(repos)).Equal(3)
		gt.V(t, repos[0].ExternalID).Equal(10)
		gt.V(t, repos[1].ExternalID).Equal(20)
		gt.V(t, repos[2].ExternalID).Equal(30)
	})

	t.Run("duplicate stays in the segment of its surviving record", func(t *testing.T) {
		// The same repository shows up in both the personal listing and the
		// PR search. The PR pass runs first in identity resolution, so the
		// PR-derived record wins and surfaces in the PR segment with the
		// expanded permission set.
		ghMock := newAggregationMock(
			[]*model.SourceRepo{
				sourceRepo(10, "octocat/personal", 5, false, writePerms()),
				sourceRepo(30, "octocat/shared", 9, false, writePerms()),
			},
			nil,
			[]*model.PullRequestRepo{prRepo(30, "octocat/shared", 9, false, types.PermissionWrite)},
		)
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)
		gt.V(t, len(repos)).Equal(2)
		gt.V(t, repos[0].ExternalID).Equal(10)
		gt.V(t, repos[1].ExternalID).Equal(30)

		// WRITE expands to push/triage/pull without admin, unlike the
		// personal listing's permission booleans.
		gt.V(t, repos[1].Permissions.Admin).Equal(false)
		gt.V(t, repos[1].Permissions.Push).Equal(true)
		gt.V(t, repos[1].Permissions.Triage).Equal(true)
		gt.V(t, repos[1].Permissions.Pull).Equal(true)
	})

	t.Run("no duplicate external IDs in any output", func(t *testing.T) {
		ghMock := newAggregationMock(
			[]*model.SourceRepo{
				sourceRepo(1, "octocat/a", 5, false, writePerms()),
				sourceRepo(2, "octocat/b", 5, false, writePerms()),
			},
			map[string][]*model.SourceRepo{
				"acme": {
					sourceRepo(2, "acme/b-moved", 5, false, writePerms()),
					sourceRepo(3, "acme/c", 5, false, writePerms()),
				},
			},
			[]*model.PullRequestRepo{
				prRepo(1, "octocat/a", 5, false, types.PermissionAdmin),
				prRepo(4, "upstream/d", 0, false, types.PermissionRead),
			},
		)
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)

		ids := map[int64]int{}
		for _, repo := range repos {
			ids[repo.ExternalID]++
		}
		for id, n := range ids {
			if n != 1 {
				t.Errorf("external ID %d appears %d times", id, n)
			}
		}
		gt.V(t, len(repos)).Equal(4)
	})

	t.Run("forks are rejected from every source", func(t *testing.T) {
		ghMock := newAggregationMock(
			[]*model.SourceRepo{sourceRepo(1, "octocat/fork", 50, true, writePerms())},
			map[string][]*model.SourceRepo{
				"acme": {sourceRepo(2, "acme/fork", 50, true, writePerms())},
			},
			[]*model.PullRequestRepo{prRepo(3, "upstream/fork", 50, true, types.PermissionAdmin)},
		)
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)
		gt.V(t, len(repos)).Equal(0)
	})

	t.Run("listed repos need stars and write access", func(t *testing.T) {
		ghMock := newAggregationMock(
			[]*model.SourceRepo{
				sourceRepo(1, "octocat/unpopular", 1, false, writePerms()),
				sourceRepo(2, "octocat/readonly", 10, false, map[string]bool{"pull": true, "triage": true}),
				sourceRepo(3, "octocat/eligible", 2, false, map[string]bool{"push": true, "pull": true}),
			},
			nil,
			nil,
		)
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].ExternalID).Equal(3)
	})

	t.Run("PR repos bypass star and permission filters", func(t *testing.T) {
		ghMock := newAggregationMock(nil, nil, []*model.PullRequestRepo{
			prRepo(1, "upstream/tiny", 0, false, types.PermissionRead),
		})
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].ExternalID).Equal(1)
		gt.V(t, repos[0].StarCount).Equal(0)
		gt.V(t, repos[0].Permissions.Pull).Equal(true)
		gt.V(t, repos[0].Permissions.Push).Equal(false)
	})

	t.Run("multiple organizations are all fetched", func(t *testing.T) {
		ghMock := newAggregationMock(
			nil,
			map[string][]*model.SourceRepo{
				"acme":    {sourceRepo(1, "acme/one", 5, false, writePerms())},
				"initech": {sourceRepo(2, "initech/two", 5, false, writePerms())},
				"hooli":   {sourceRepo(3, "hooli/three", 5, false, writePerms())},
			},
			nil,
		)
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		repos := gt.R1(uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})).NoError(t)
		gt.V(t, len(repos)).Equal(3)
		gt.V(t, len(ghMock.ListOrgReposCalls())).Equal(3)
	})

	t.Run("upstream failure abandons the aggregation", func(t *testing.T) {
		ghMock := newAggregationMock(
			[]*model.SourceRepo{sourceRepo(1, "octocat/a", 5, false, writePerms())},
			nil,
			nil,
		)
		ghMock.ListUserReposFunc = func(ctx context.Context, token types.GitHubToken) ([]*model.SourceRepo, error) {
			return nil, errors.New("github is down")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		_, err := uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})
		gt.Error(t, err)
	})

	t.Run("organization fetch failure abandons the aggregation", func(t *testing.T) {
		ghMock := newAggregationMock(
			nil,
			map[string][]*model.SourceRepo{
				"acme": {sourceRepo(1, "acme/one", 5, false, writePerms())},
			},
			nil,
		)
		ghMock.ListOrgReposFunc = func(ctx context.Context, token types.GitHubToken, org string) ([]*model.SourceRepo, error) {
			return nil, errors.New("org listing failed")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

		_, err := uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{Token: token})
		gt.Error(t, err)
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHub(&mock.GitHubClientMock{})))

		_, err := uc.ListGitHubRepos(ctx, &model.ListGitHubReposInput{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
