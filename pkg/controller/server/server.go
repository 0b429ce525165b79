package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"msg":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/github/repos", func(w http.ResponseWriter, r *http.Request) {
		handleListGitHubRepos(uc, w, r)
	})
	r.Post("/intake-form", func(w http.ResponseWriter, r *http.Request) {
		handleSubmitIntake(uc, w, r)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
