// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/caiosouza15/seufirmino-awards/admin"
	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/images"
	"github.com/caiosouza15/seufirmino-awards/middleware"
	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/store"
)

// multipart overhead allowed on top of the image itself
const uploadSlack = 1 << 20

type AdminHandler struct {
	service *admin.Service
	bucket  images.Bucket
}

func NewAdminHandler(st *store.Store, cfg cliparse.Config, bucket images.Bucket) *AdminHandler {
	caps := admin.Capabilities{AllowReset: cfg.AllowReset}
	return &AdminHandler{
		service: admin.NewService(st, caps, cfg.PublicBaseURL),
		bucket:  bucket,
	}
}

// writeAdminError maps service errors to status codes. Admin clients get the
// raw error text in details.
func writeAdminError(w http.ResponseWriter, action string, err error) {
	var validation *models.ValidationError
	var resetErr *admin.ResetError

	switch {
	case errors.As(err, &validation):
		middleware.ErrorResponse(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrContestExists):
		middleware.ErrorResponse(w, http.StatusConflict, "A contest with this id already exists")
	case errors.Is(err, models.ErrNomineeLimit):
		middleware.ErrorResponse(w, http.StatusConflict, "A category can have at most 6 nominees")
	case errors.Is(err, models.ErrResetDisabled):
		middleware.ErrorResponse(w, http.StatusForbidden, "Reset and delete are disabled on this server")
	case errors.As(err, &resetErr):
		slog.Error("contest reset failed", "step", resetErr.Step, "error", resetErr.Err)
		middleware.DetailedErrorResponse(w, http.StatusInternalServerError, resetErr.Message(), resetErr.Err)
	default:
		slog.Error("admin operation failed", "action", action, "error", err)
		middleware.DetailedErrorResponse(w, http.StatusInternalServerError, "Could not "+action, err)
	}
}

// Capabilities handles GET /admin/capabilities
func (h *AdminHandler) Capabilities(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CapabilitiesResponse{
		AllowReset: h.service.Capabilities().AllowReset,
	})
}

// ListContests handles GET /admin/contests
func (h *AdminHandler) ListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.service.ListContests(r.Context())
	if err != nil {
		writeAdminError(w, "load contests", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, contests)
}

// CreateContest handles POST /admin/contests
func (h *AdminHandler) CreateContest(w http.ResponseWriter, r *http.Request) {
	var req models.ContestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	contest, err := h.service.CreateContest(r.Context(), req)
	if err != nil {
		writeAdminError(w, "create contest", err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, contest)
}

// UpdateContest handles PUT /admin/contests/{id}
func (h *AdminHandler) UpdateContest(w http.ResponseWriter, r *http.Request) {
	var req models.ContestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	contest, err := h.service.UpdateContest(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeAdminError(w, "update contest", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, contest)
}

// DeleteContest handles DELETE /admin/contests/{id}
func (h *AdminHandler) DeleteContest(w http.ResponseWriter, r *http.Request) {
	contestID := r.PathValue("id")
	if err := h.service.DeleteContest(r.Context(), contestID); err != nil {
		writeAdminError(w, "delete contest", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		ContestID: contestID,
		Deleted:   true,
		Message:   "Contest and all of its data were deleted.",
	})
}

// ResetContest handles POST /admin/contests/{id}/reset
// Keeps the contest row and removes everything under it.
func (h *AdminHandler) ResetContest(w http.ResponseWriter, r *http.Request) {
	contestID := r.PathValue("id")
	if err := h.service.ResetContest(r.Context(), contestID); err != nil {
		writeAdminError(w, "reset contest", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		ContestID: contestID,
		Message:   "Votes, voters, nominees and categories were deleted.",
	})
}

// ListCategories handles GET /admin/contests/{id}/categories
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAdminError(w, "load categories", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// CreateCategory handles POST /admin/contests/{id}/categories
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	categories, err := h.service.CreateCategory(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeAdminError(w, "create category", err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, categories)
}

// UpdateCategory handles PUT /admin/categories/{id}
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	categories, err := h.service.UpdateCategory(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeAdminError(w, "update category", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// DeleteCategory handles DELETE /admin/categories/{id}
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.DeleteCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAdminError(w, "delete category", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// AddNominee handles POST /admin/categories/{id}/nominees
func (h *AdminHandler) AddNominee(w http.ResponseWriter, r *http.Request) {
	var req models.NomineeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	categories, err := h.service.AddNominee(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeAdminError(w, "add nominee", err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, categories)
}

// UpdateNominee handles PUT /admin/nominees/{id}
func (h *AdminHandler) UpdateNominee(w http.ResponseWriter, r *http.Request) {
	var req models.NomineeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	categories, err := h.service.UpdateNominee(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeAdminError(w, "update nominee", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// DeleteNominee handles DELETE /admin/nominees/{id}
func (h *AdminHandler) DeleteNominee(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.DeleteNominee(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAdminError(w, "delete nominee", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// UploadNomineeImage handles POST /admin/nominees/{id}/image
// Expects a multipart form with the file in field "image".
func (h *AdminHandler) UploadNomineeImage(w http.ResponseWriter, r *http.Request) {
	nomineeID := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, images.MaxImageSize+uploadSlack)
	if err := r.ParseMultipartForm(images.MaxImageSize); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Upload must be a multipart form under 5 MB")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, images.MaxImageSize+1))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Could not read upload")
		return
	}

	img, err := images.Validate(data)
	switch {
	case errors.Is(err, images.ErrTooLarge):
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Image must be 5 MB or smaller")
		return
	case errors.Is(err, images.ErrUnsupportedType):
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, "Image must be PNG, JPEG, GIF or WebP")
		return
	case err != nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Image is empty")
		return
	}

	if _, err := h.service.GetNominee(r.Context(), nomineeID); err != nil {
		writeAdminError(w, "load nominee", err)
		return
	}

	url, err := h.bucket.Put(r.Context(), images.ObjectName(nomineeID, img.Extension), img.Data, img.ContentType)
	if err != nil {
		writeAdminError(w, "store image", err)
		return
	}

	nominee, err := h.service.SetNomineeImage(r.Context(), nomineeID, url)
	if err != nil {
		writeAdminError(w, "save image url", err)
		return
	}

	slog.Info("nominee image uploaded", "nominee_id", nomineeID, "content_type", img.ContentType, "bytes", len(img.Data))
	middleware.JSONResponse(w, http.StatusOK, nominee)
}

// ListVoters handles GET /admin/contests/{id}/voters
func (h *AdminHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.service.ListVoters(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAdminError(w, "load voters", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, voters)
}

// CreateVoters handles POST /admin/contests/{id}/voters
// An empty body creates a single voter.
func (h *AdminHandler) CreateVoters(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVotersRequest
	if r.ContentLength != 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	voters, err := h.service.CreateVoters(r.Context(), r.PathValue("id"), req.Count)
	if err != nil {
		writeAdminError(w, "create voters", err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, voters)
}

// ToggleVoter handles POST /admin/voters/{id}/toggle
func (h *AdminHandler) ToggleVoter(w http.ResponseWriter, r *http.Request) {
	voter, err := h.service.ToggleVoter(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAdminError(w, "update voter", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, voter)
}

// ClearVoterVotes handles DELETE /admin/voters/{id}/votes
func (h *AdminHandler) ClearVoterVotes(w http.ResponseWriter, r *http.Request) {
	voterID := r.PathValue("id")
	deleted, err := h.service.ClearVoterVotes(r.Context(), voterID)
	if err != nil {
		writeAdminError(w, "clear votes", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ClearVotesResponse{VoterID: voterID, Deleted: deleted})
}

// ContestResults handles GET /admin/contests/{id}/results
// Unlike GET /results this ignores the reveal time.
func (h *AdminHandler) ContestResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Results(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAdminError(w, "load results", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, rows)
}
