package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/usher/pkg/controller/server"
	"github.com/m-mizutani/usher/pkg/domain/mock"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
)

func TestHealthEndpoint(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestListGitHubReposEndpoint(t *testing.T) {
	t.Run("returns aggregated repos with cache headers", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListGitHubReposFunc: func(ctx context.Context, input *model.ListGitHubReposInput) ([]*model.Repository, error) {
				gt.V(t, input.Token).Equal(types.GitHubToken("gho_testtoken"))
				return []*model.Repository{
					{ExternalID: 1, Name: "widget", FullName: "acme/widget"},
				}, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/github/repos", nil)
		req.Header.Set("Authorization", "Bearer gho_testtoken")
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Cache-Control")).Equal("public, max-age=300, stale-while-revalidate=1800")
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var repos []*model.Repository
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repos))
		gt.V(t, len(repos)).Equal(1)
		gt.V(t, repos[0].FullName).Equal("acme/widget")
	})

	t.Run("bare token without Bearer prefix is accepted", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListGitHubReposFunc: func(ctx context.Context, input *model.ListGitHubReposInput) ([]*model.Repository, error) {
				gt.V(t, input.Token).Equal(types.GitHubToken("gho_testtoken"))
				return nil, nil
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/github/repos", nil)
		req.Header.Set("Authorization", "gho_testtoken")
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("missing token returns 401", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/github/repos", nil)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
		gt.V(t, len(mockUC.ListGitHubReposCalls())).Equal(0)
	})

	t.Run("upstream failure returns 400 with message", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			ListGitHubReposFunc: func(ctx context.Context, input *model.ListGitHubReposInput) ([]*model.Repository, error) {
				return nil, errors.New("github is down")
			},
		}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodGet, "/github/repos", nil)
		req.Header.Set("Authorization", "Bearer gho_testtoken")
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		var body map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.True(t, body["message"] != "")
	})
}

type formFile struct {
	name string
	data []byte
}

func buildIntakeForm(t *testing.T, fields map[string]string, images []formFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		gt.NoError(t, mw.WriteField(name, value))
	}
	for _, img := range images {
		fw := gt.R1(mw.CreateFormFile("images", img.name)).NoError(t)
		gt.R1(fw.Write(img.data)).NoError(t)
	}
	gt.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestSubmitIntakeEndpoint(t *testing.T) {
	validFields := map[string]string{
		"name":   "Grace Hopper",
		"email":  "grace@example.com",
		"github": "ghopper",
		"repos":  `[{"externalId": 1, "fullName": "ghopper/compiler"}]`,
	}

	t.Run("valid form returns the pipeline output", func(t *testing.T) {
		queueNumber := 3
		mockUC := &mock.UseCaseMock{
			SubmitIntakeFunc: func(ctx context.Context, input *model.SubmitIntakeInput) (*model.SubmitIntakeOutput, error) {
				gt.V(t, input.Name).Equal("Grace Hopper")
				gt.V(t, input.Email).Equal("grace@example.com")
				gt.V(t, input.GitHubHandle).Equal("ghopper")
				return &model.SubmitIntakeOutput{
					FormData:    model.NewIntakeSubmission(input, time.Now().UTC()),
					QueueNumber: &queueNumber,
					Message:     "thanks",
				}, nil
			},
		}
		srv := server.New(mockUC)

		body, contentType := buildIntakeForm(t, validFields, nil)
		req := httptest.NewRequest(http.MethodPost, "/intake-form", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var out model.SubmitIntakeOutput
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		gt.V(t, out.Message).Equal("thanks")
		if gt.V(t, out.QueueNumber != nil).Equal(true); out.QueueNumber != nil {
			gt.V(t, *out.QueueNumber).Equal(3)
		}
	})

	t.Run("attached files reach the pipeline", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			SubmitIntakeFunc: func(ctx context.Context, input *model.SubmitIntakeInput) (*model.SubmitIntakeOutput, error) {
				gt.V(t, len(input.Images)).Equal(2)
				gt.V(t, input.Images[0].FileName).Equal("a.png")
				gt.V(t, input.Images[0].Data).Equal([]byte("png-data-a"))
				return &model.SubmitIntakeOutput{Message: "ok"}, nil
			},
		}
		srv := server.New(mockUC)

		body, contentType := buildIntakeForm(t, validFields, []formFile{
			{name: "a.png", data: []byte("png-data-a")},
			{name: "b.png", data: []byte("png-data-b")},
		})
		req := httptest.NewRequest(http.MethodPost, "/intake-form", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("validation failure returns the issue list", func(t *testing.T) {
		issues := []model.FieldIssue{
			{Field: "email", Message: "email is not a valid address"},
		}
		mockUC := &mock.UseCaseMock{
			SubmitIntakeFunc: func(ctx context.Context, input *model.SubmitIntakeInput) (*model.SubmitIntakeOutput, error) {
				return nil, goerr.Wrap(types.ErrValidationFailed, "intake form validation failed",
					goerr.V("issues", issues),
				)
			},
		}
		srv := server.New(mockUC)

		body, contentType := buildIntakeForm(t, validFields, nil)
		req := httptest.NewRequest(http.MethodPost, "/intake-form", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		var resp struct {
			Issues []model.FieldIssue `json:"issues"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, len(resp.Issues)).Equal(1)
		gt.V(t, resp.Issues[0].Field).Equal("email")
	})

	t.Run("pipeline failure returns 400 with message", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			SubmitIntakeFunc: func(ctx context.Context, input *model.SubmitIntakeInput) (*model.SubmitIntakeOutput, error) {
				return nil, errors.New("datastore is down")
			},
		}
		srv := server.New(mockUC)

		body, contentType := buildIntakeForm(t, validFields, nil)
		req := httptest.NewRequest(http.MethodPost, "/intake-form", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.True(t, resp["msg"] != "")
	})

	t.Run("non-multipart body returns 400", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{}
		srv := server.New(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/intake-form", bytes.NewReader([]byte(`{"name":"x"}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(mockUC.SubmitIntakeCalls())).Equal(0)
	})
}
