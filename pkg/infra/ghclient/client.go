package ghclient

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const perPage = 100

// Client talks to the GitHub REST API on behalf of a user. The user's token
// is passed per call; a fresh authenticated client is built for each one.
type Client struct{}

var _ interfaces.GitHubClient = (*Client)(nil)

func New() *Client {
	return &Client{}
}

func (x *Client) buildGithubClient(ctx context.Context, token types.GitHubToken) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

func (x *Client) GetAuthenticatedUser(ctx context.Context, token types.GitHubToken) (*model.GitHubUser, error) {
	client := x.buildGithubClient(ctx, token)

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get authenticated user")
	}

	return &model.GitHubUser{
		ID:    user.GetID(),
		Login: user.GetLogin(),
	}, nil
}

func (x *Client) ListUserRepos(ctx context.Context, token types.GitHubToken) ([]*model.SourceRepo, error) {
	client := x.buildGithubClient(ctx, token)

	var allRepos []*model.SourceRepo
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		repos, resp, err := client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list user repositories")
		}

		for _, repo := range repos {
			allRepos = append(allRepos, toSourceRepo(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

func (x *Client) ListUserOrgs(ctx context.Context, token types.GitHubToken) ([]string, error) {
	client := x.buildGithubClient(ctx, token)

	var allOrgs []string
	opts := &github.ListOptions{PerPage: perPage}

	for {
		orgs, resp, err := client.Organizations.List(ctx, "", opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list user organizations")
		}

		for _, org := range orgs {
			allOrgs = append(allOrgs, org.GetLogin())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allOrgs, nil
}

func (x *Client) ListOrgRepos(ctx context.Context, token types.GitHubToken, org string) ([]*model.SourceRepo, error) {
	client := x.buildGithubClient(ctx, token)

	var allRepos []*model.SourceRepo
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	for {
		repos, resp, err := client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list organization repositories",
				goerr.V("org", org),
			)
		}

		for _, repo := range repos {
			allRepos = append(allRepos, toSourceRepo(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

// SearchMergedPullRequestRepos finds repositories the user has a merged
// public pull request in. The issue search only carries a repository URL, so
// each unique repository is resolved with a follow-up fetch, and the coarse
// permission level comes from the collaborator permission endpoint.
func (x *Client) SearchMergedPullRequestRepos(ctx context.Context, token types.GitHubToken, login string) ([]*model.PullRequestRepo, error) {
	if login == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "login is empty")
	}

	client := x.buildGithubClient(ctx, token)

	query := "type:pr is:merged is:public author:" + login
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	seen := map[string]struct{}{}
	var repoPaths []string

	for {
		result, resp, err := client.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to search merged pull requests",
				goerr.V("query", query),
			)
		}

		for _, issue := range result.Issues {
			path, err := repoPathFromURL(issue.GetRepositoryURL())
			if err != nil {
				logging.From(ctx).Warn("skipping issue with unexpected repository URL",
					slog.String("url", issue.GetRepositoryURL()),
					slog.Any("error", err),
				)
				continue
			}
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			repoPaths = append(repoPaths, path)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	var prRepos []*model.PullRequestRepo
	for _, path := range repoPaths {
		parts := strings.SplitN(path, "/", 2)
		owner, name := parts[0], parts[1]

		repo, _, err := client.Repositories.Get(ctx, owner, name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get repository",
				goerr.V("owner", owner),
				goerr.V("repo", name),
			)
		}

		prRepos = append(prRepos, &model.PullRequestRepo{
			ID:          repo.GetID(),
			Name:        repo.GetName(),
			FullName:    repo.GetFullName(),
			Description: repo.Description,
			HTMLURL:     repo.GetHTMLURL(),
			Owner:       toRepoOwner(repo.GetOwner()),
			Fork:        repo.GetFork(),
			StarCount:   repo.GetStargazersCount(),
			Permission:  x.permissionLevel(ctx, client, owner, name, login),
		})
	}

	return prRepos, nil
}

// permissionLevel resolves the user's coarse role on a repository. The
// collaborator endpoint is forbidden for repositories the user has no
// collaborator relation with; a merged PR in a public repository still
// implies read access, so that case degrades to READ.
func (x *Client) permissionLevel(ctx context.Context, client *github.Client, owner, name, login string) types.PermissionLevel {
	level, _, err := client.Repositories.GetPermissionLevel(ctx, owner, name, login)
	if err != nil {
		logging.From(ctx).Debug("failed to get permission level, assuming read access",
			slog.String("owner", owner),
			slog.String("repo", name),
			slog.Any("error", err),
		)
		return types.PermissionRead
	}
	return types.PermissionLevel(strings.ToUpper(level.GetPermission()))
}

// repoPathFromURL extracts "owner/name" from an API repository URL such as
// https://api.github.com/repos/owner/name
func repoPathFromURL(rawURL string) (string, error) {
	const marker = "/repos/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", goerr.New("repository URL has no /repos/ segment", goerr.V("url", rawURL))
	}

	path := rawURL[idx+len(marker):]
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", goerr.New("repository URL has unexpected path", goerr.V("url", rawURL))
	}

	return path, nil
}

func toRepoOwner(owner *github.User) model.RepoOwner {
	return model.RepoOwner{
		ID:        owner.GetID(),
		Type:      owner.GetType(),
		Name:      owner.GetLogin(),
		AvatarURL: owner.GetAvatarURL(),
		URL:       owner.GetHTMLURL(),
	}
}

func toSourceRepo(repo *github.Repository) *model.SourceRepo {
	return &model.SourceRepo{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.Description,
		HTMLURL:     repo.GetHTMLURL(),
		Owner:       toRepoOwner(repo.GetOwner()),
		Fork:        repo.GetFork(),
		StarCount:   repo.GetStargazersCount(),
		Permissions: repo.GetPermissions(),
	}
}
