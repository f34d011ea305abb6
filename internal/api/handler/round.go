package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfscore/internal/api/request"
	"github.com/mcoot/golfscore/internal/api/response"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/round"
)

// RoundHandler handles round endpoints
type RoundHandler struct {
	rounds round.ControllerInterface
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(rounds round.ControllerInterface) *RoundHandler {
	return &RoundHandler{rounds: rounds}
}

func roundID(r *http.Request) model.RoundID {
	return model.RoundID(mux.Vars(r)["id"])
}

// Start handles POST /api/v1/rounds
func (h *RoundHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	setup, err := req.ToSetup()
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.rounds.StartRound(r.Context(), setup)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.RoundFromModel(state))
}

// Get handles GET /api/v1/rounds/{id}
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.rounds.GetRound(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoundFromModel(state))
}

// Score handles PUT /api/v1/rounds/{id}/scores
func (h *RoundHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Player == "" {
		WriteError(w, NewInvalidRequestError("player is required"))
		return
	}

	var (
		state *model.RoundState
		err   error
	)
	if req.Hole != nil {
		state, err = h.rounds.AmendScore(r.Context(), roundID(r), req.Player, *req.Hole, req.Gross)
	} else {
		state, err = h.rounds.RecordScore(r.Context(), roundID(r), req.Player, req.Gross)
	}
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoundFromModel(state))
}

// Confirm handles POST /api/v1/rounds/{id}/confirm
func (h *RoundHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	state, err := h.rounds.ConfirmHole(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoundFromModel(state))
}

// Advance handles POST /api/v1/rounds/{id}/advance
func (h *RoundHandler) Advance(w http.ResponseWriter, r *http.Request) {
	state, settlement, err := h.rounds.AdvanceHole(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Advance{
		Round:      response.RoundFromModel(state),
		Settlement: settlement,
	})
}

// Back handles POST /api/v1/rounds/{id}/back
func (h *RoundHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.rounds.PreviousHole(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RoundFromModel(state))
}

// Status handles GET /api/v1/rounds/{id}/status
func (h *RoundHandler) Status(w http.ResponseWriter, r *http.Request) {
	id := roundID(r)
	lines, totals, err := h.rounds.Status(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	state, err := h.rounds.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.Status{
		RoundID:     string(id),
		CurrentHole: state.CurrentHole,
		Lines:       lines,
		Totals:      totals,
	})
}

// Format handles GET /api/v1/rounds/{id}/formats/{format}
func (h *RoundHandler) Format(w http.ResponseWriter, r *http.Request) {
	format, err := model.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.rounds.ComputeFormat(r.Context(), roundID(r), format)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.FormatResult{
		Format:      format,
		DisplayName: format.DisplayName(),
		Result:      result,
	})
}

// Complete handles POST /api/v1/rounds/{id}/complete
func (h *RoundHandler) Complete(w http.ResponseWriter, r *http.Request) {
	settlement, err := h.rounds.CompleteRound(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, settlement)
}

// Settlement handles GET /api/v1/rounds/{id}/settlement
func (h *RoundHandler) Settlement(w http.ResponseWriter, r *http.Request) {
	settlement, err := h.rounds.GetSettlement(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, settlement)
}

// Abandon handles DELETE /api/v1/rounds/{id}
func (h *RoundHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.rounds.AbandonRound(r.Context(), roundID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
