package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// minStarCount is the popularity floor for repositories found via direct
// listings. Repositories found via merged pull requests are exempt.
const minStarCount = 2

// ListGitHubRepos aggregates the user's repositories from three surfaces:
// merged-public-PR search, the authenticated-user listing, and the listings
// of every organization the user belongs to. The result is deduplicated by
// external ID and ordered as personal, organization, then PR-sourced
// repositories.
func (x *UseCase) ListGitHubRepos(ctx context.Context, input *model.ListGitHubReposInput) ([]*model.Repository, error) {
	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if input.Token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	user, err := gh.GetAuthenticatedUser(ctx, input.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve authenticated user")
	}

	prRepos, err := gh.SearchMergedPullRequestRepos(ctx, input.Token, user.Login)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search merged pull request repositories",
			goerr.V("login", user.Login),
		)
	}

	personalRepos, err := gh.ListUserRepos(ctx, input.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list personal repositories",
			goerr.V("login", user.Login),
		)
	}

	orgs, err := gh.ListUserOrgs(ctx, input.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list organizations",
			goerr.V("login", user.Login),
		)
	}

	// Fetch every organization listing concurrently. The merge pass below
	// starts only after all fetches have joined; the dedup set is never
	// touched from these goroutines.
	orgRepos := make([][]*model.SourceRepo, len(orgs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, org := range orgs {
		eg.Go(func() error {
			repos, err := gh.ListOrgRepos(egCtx, input.Token, org)
			if err != nil {
				return goerr.Wrap(err, "failed to list organization repositories",
					goerr.V("org", org),
				)
			}
			orgRepos[i] = repos
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Identity resolution runs in priority order PR, personal, organization:
	// the first surviving record claims the external ID. The output keeps
	// segment order personal, organization, PR regardless of which pass a
	// record survived in.
	agg := newRepoAggregator()
	prSegment := agg.addPullRequestRepos(prRepos)
	personalSegment := agg.addSourceRepos(personalRepos)

	var orgSegment []*model.Repository
	for _, repos := range orgRepos {
		orgSegment = append(orgSegment, agg.addSourceRepos(repos)...)
	}

	result := make([]*model.Repository, 0, len(personalSegment)+len(orgSegment)+len(prSegment))
	result = append(result, personalSegment...)
	result = append(result, orgSegment...)
	result = append(result, prSegment...)

	logging.From(ctx).Info("aggregated github repositories",
		slog.String("login", user.Login),
		slog.Int("personal", len(personalSegment)),
		slog.Int("org", len(orgSegment)),
		slog.Int("pull_request", len(prSegment)),
		slog.Int("rejected", agg.rejected),
		slog.Int("duplicated", agg.duplicated),
	)

	return result, nil
}

// repoAggregator owns the dedup set for one aggregation call. It is not
// safe for concurrent use; callers must finish all fetches before adding.
type repoAggregator struct {
	seen       map[int64]struct{}
	rejected   int
	duplicated int
}

func newRepoAggregator() *repoAggregator {
	return &repoAggregator{
		seen: make(map[int64]struct{}),
	}
}

// addPullRequestRepos admits repositories found via merged pull requests.
// Authorship of a merged PR is sufficient signal, so only forks are
// filtered; star count and permissions are not checked.
func (x *repoAggregator) addPullRequestRepos(src []*model.PullRequestRepo) []*model.Repository {
	var out []*model.Repository
	for _, raw := range src {
		if raw.Fork {
			x.rejected++
			continue
		}
		if _, ok := x.seen[raw.ID]; ok {
			x.duplicated++
			continue
		}
		x.seen[raw.ID] = struct{}{}
		out = append(out, raw.Canonical())
	}
	return out
}

// addSourceRepos admits repositories from direct listings. Besides the fork
// filter, these need at least minStarCount stars and write access.
func (x *repoAggregator) addSourceRepos(src []*model.SourceRepo) []*model.Repository {
	var out []*model.Repository
	for _, raw := range src {
		repo := raw.Canonical()
		if raw.Fork || raw.StarCount < minStarCount || !repo.Permissions.HasWriteAccess() {
			x.rejected++
			continue
		}
		if _, ok := x.seen[raw.ID]; ok {
			x.duplicated++
			continue
		}
		x.seen[raw.ID] = struct{}{}
		out = append(out, repo)
	}
	return out
}
