// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/middleware"
	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/results"
	"github.com/caiosouza15/seufirmino-awards/store"
)

type ResultsHandler struct {
	cfg        cliparse.Config
	aggregator *results.Aggregator
}

func NewResultsHandler(st *store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		cfg:        cfg,
		aggregator: results.NewAggregator(st, time.Now),
	}
}

// GetResults handles GET /results
// Results stay sealed until the contest's reveal time. ?demo=true returns a
// fixed sample without touching the database.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	demo, _ := strconv.ParseBool(r.URL.Query().Get("demo"))
	if demo {
		outcome, err := results.Demo()
		if err != nil {
			slog.Error("failed to load demo results", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, results.MsgLoadFailed)
			return
		}
		resp := toResultsResponse(outcome)
		resp.Demo = true
		middleware.JSONResponse(w, http.StatusOK, resp)
		return
	}

	outcome := h.aggregator.Aggregate(r.Context(), h.cfg.ResultsContestID)

	status := http.StatusOK
	if outcome.Status == models.ResultsError {
		status = http.StatusInternalServerError
	}

	middleware.JSONResponse(w, status, toResultsResponse(outcome))
}

func toResultsResponse(o results.Outcome) models.ResultsResponse {
	categories := o.Categories
	if categories == nil {
		categories = []models.CategoryResult{}
	}
	return models.ResultsResponse{
		Status:     o.Status,
		Message:    o.Message,
		Contest:    o.Contest,
		Categories: categories,
	}
}
