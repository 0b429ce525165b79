package server

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/utils/errutil"
	"github.com/m-mizutani/usher/pkg/utils/safe"
)

// maxIntakeFormBytes caps the whole multipart body: up to five images of
// ten megabytes each plus form fields and encoding overhead.
const maxIntakeFormBytes = (model.MaxImageCount * model.MaxImageBytes) + (2 << 20)

// multipartMemoryBytes is how much of the form stays in memory before
// spilling to temporary files.
const multipartMemoryBytes = 32 << 20

type issuesResponse struct {
	Issues []model.FieldIssue `json:"issues"`
}

type messageResponse struct {
	Message string `json:"msg"`
}

func handleSubmitIntake(uc interfaces.UseCase, w http.ResponseWriter, r *http.Request) {
	input, err := parseIntakeForm(w, r)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to parse intake form", err)
		respondJSON(w, http.StatusBadRequest, &messageResponse{
			Message: "failed to parse intake form",
		})
		return
	}

	output, err := uc.SubmitIntake(r.Context(), input)
	if err != nil {
		if issues := validationIssues(err); issues != nil {
			respondJSON(w, http.StatusBadRequest, &issuesResponse{Issues: issues})
			return
		}

		errutil.HandleError(r.Context(), "fail to submit intake form", err)
		respondJSON(w, http.StatusBadRequest, &messageResponse{
			Message: "failed to process the submission",
		})
		return
	}

	respondJSON(w, http.StatusOK, output)
}

func parseIntakeForm(w http.ResponseWriter, r *http.Request) (*model.SubmitIntakeInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxIntakeFormBytes)

	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		return nil, goerr.Wrap(err, "failed to parse multipart form")
	}

	input := &model.SubmitIntakeInput{
		Name:                r.FormValue("name"),
		Email:               r.FormValue("email"),
		GitHubHandle:        r.FormValue("github"),
		Notes:               r.FormValue("notes"),
		ShouldDesign:        r.FormValue("shouldDesign") == "true",
		IsOneProjectPerRepo: r.FormValue("isOneProjectPerRepo") == "true",
		RawRepos:            r.FormValue("repos"),
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			img, err := readImageAttachment(header)
			if err != nil {
				return nil, err
			}
			input.Images = append(input.Images, *img)
		}
	}

	return input, nil
}

func readImageAttachment(header *multipart.FileHeader) (*model.ImageAttachment, error) {
	f, err := header.Open()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open uploaded file",
			goerr.V("fileName", header.Filename),
		)
	}
	defer safe.Close(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read uploaded file",
			goerr.V("fileName", header.Filename),
		)
	}

	return &model.ImageAttachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// validationIssues extracts the violated constraints from a validation
// failure, or nil for any other error.
func validationIssues(err error) []model.FieldIssue {
	if !errors.Is(err, types.ErrValidationFailed) {
		return nil
	}

	if goErr := goerr.Unwrap(err); goErr != nil {
		if issues, ok := goErr.Values()["issues"].([]model.FieldIssue); ok {
			return issues
		}
	}

	return []model.FieldIssue{}
}
