package server

import (
	"net/http"
	"strings"

	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/utils/errutil"
)

// reposCacheControl lets intermediaries reuse a fresh aggregation for five
// minutes and serve a stale one for up to thirty while revalidating.
const reposCacheControl = "public, max-age=300, stale-while-revalidate=1800"

// bearerToken extracts the token from the Authorization header. Both the
// "Bearer <token>" form and a bare token are accepted.
func bearerToken(r *http.Request) types.GitHubToken {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return types.GitHubToken(strings.TrimSpace(token))
	}
	return types.GitHubToken(auth)
}

type errorResponse struct {
	Message string `json:"message"`
}

func handleListGitHubRepos(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondJSON(w, http.StatusUnauthorized, &errorResponse{
			Message: "GitHub token is required",
		})
		return
	}

	repos, err := uc.ListGitHubRepos(r.Context(), &model.ListGitHubReposInput{
		Token: token,
	})
	if err != nil {
		errutil.HandleError(r.Context(), "fail to list GitHub repositories", err)
		respondJSON(w, http.StatusBadRequest, &errorResponse{
			Message: "failed to fetch repositories from GitHub",
		})
		return
	}

	w.Header().Set("Cache-Control", reposCacheControl)
	respondJSON(w, http.StatusOK, repos)
}
