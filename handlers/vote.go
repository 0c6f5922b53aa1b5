// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caiosouza15/seufirmino-awards/auth"
	"github.com/caiosouza15/seufirmino-awards/cliparse"
	"github.com/caiosouza15/seufirmino-awards/middleware"
	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/store"
	"github.com/caiosouza15/seufirmino-awards/voting"
)

type VoteHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	loader   *voting.Loader
	sessions *voting.Sessions
}

func NewVoteHandler(st *store.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{
		store:    st,
		cfg:      cfg,
		loader:   voting.NewLoader(st, time.Now),
		sessions: voting.NewSessions(cfg.BallotTTL, time.Now),
	}
}

// flowFor returns the voter's live flow, loading the contest when there is
// none. A live flow is dropped once its link or contest period stops
// passing the loader gates. A nil flow means the loader did not report ready.
func (h *VoteHandler) flowFor(ctx context.Context, token string) (*voting.Flow, voting.Result) {
	if token != "" {
		if flow, ok := h.sessions.Get(token); ok {
			res := h.loader.Check(ctx, token)
			if res.Status != models.LoadReady {
				if res.Status != models.LoadError {
					h.sessions.Drop(token)
				}
				return nil, res
			}
			return flow, res
		}
	}

	res := h.loader.Load(ctx, token)
	if res.Status != models.LoadReady {
		return nil, res
	}

	flow := voting.NewFlow(res)
	if flow.Done() {
		// Nothing to vote on; keep re-checking on every visit.
		return flow, res
	}
	return h.sessions.PutIfAbsent(token, flow), res
}

func writeLoadResult(w http.ResponseWriter, res voting.Result) {
	status := http.StatusOK
	if res.Status == models.LoadError {
		status = http.StatusInternalServerError
	}
	middleware.JSONResponse(w, status, models.VoteStatusResponse{
		Status:  res.Status,
		Message: res.Message,
	})
}

func writeBallot(w http.ResponseWriter, status int, snap models.BallotSnapshot) {
	middleware.JSONResponse(w, status, models.VoteStatusResponse{
		Status:  models.LoadReady,
		Message: snap.Message,
		Ballot:  &snap,
	})
}

// writeFlowError maps a flow error to a status code. It reports false when
// err is nil.
func writeFlowError(w http.ResponseWriter, snap models.BallotSnapshot, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, voting.ErrSubmissionInFlight):
		middleware.ErrorResponse(w, http.StatusConflict, "Your vote is still being recorded")
	case errors.Is(err, voting.ErrBallotClosed):
		middleware.ErrorResponse(w, http.StatusConflict, "This ballot is already complete")
	case errors.Is(err, voting.ErrUnknownNominee):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Nominee is not part of this category")
	case errors.Is(err, voting.ErrNoSelection):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Select a nominee first")
	case errors.Is(err, voting.ErrVoteFailed):
		writeBallot(w, http.StatusInternalServerError, snap)
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unexpected ballot error")
	}
	return true
}

// GetBallot handles GET /vote?token=
// Reports why voting is unavailable, or the ballot when it is ready.
func (h *VoteHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))

	flow, res := h.flowFor(r.Context(), token)
	if flow == nil {
		if res.Status == models.LoadError {
			slog.Error("failed to load ballot", "message", res.Message)
		} else {
			slog.Info("ballot unavailable", "status", res.Status)
		}
		writeLoadResult(w, res)
		return
	}

	writeBallot(w, http.StatusOK, flow.Snapshot())
}

// SelectNominee handles POST /vote/select
func (h *VoteHandler) SelectNominee(w http.ResponseWriter, r *http.Request) {
	var req models.SelectNomineeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, voting.MsgTokenMissing)
		return
	}
	if req.NomineeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nominee_id is required")
		return
	}

	flow, res := h.flowFor(r.Context(), req.Token)
	if flow == nil {
		writeLoadResult(w, res)
		return
	}

	snap, err := flow.Select(req.NomineeID)
	if writeFlowError(w, snap, err) {
		return
	}
	writeBallot(w, http.StatusOK, snap)
}

// ConfirmVote handles POST /vote/confirm
// Writes the selected nominee for the current category and advances the ballot.
func (h *VoteHandler) ConfirmVote(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, voting.MsgTokenMissing)
		return
	}

	flow, res := h.flowFor(r.Context(), req.Token)
	if flow == nil {
		writeLoadResult(w, res)
		return
	}

	snap, err := flow.ConfirmNominee(r.Context(), h.store, req.NomineeID, h.voteMeta(r))
	if err != nil && errors.Is(err, voting.ErrVoteFailed) {
		slog.Error("failed to record vote", "contest_id", snap.ContestID, "step", snap.Step, "error", err)
	}
	if writeFlowError(w, snap, err) {
		return
	}

	if flow.Done() {
		h.sessions.Drop(req.Token)
		slog.Info("ballot completed", "contest_id", snap.ContestID)
	}
	writeBallot(w, http.StatusOK, snap)
}

func (h *VoteHandler) voteMeta(r *http.Request) voting.VoteMeta {
	meta := voting.VoteMeta{UserAgent: middleware.UserAgent(r)}
	if h.cfg.IPHashSalt != "" {
		hashed := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
		meta.IPAddress = &hashed
	}
	return meta
}
