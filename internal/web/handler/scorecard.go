package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
	"github.com/mcoot/golfscore/internal/services/round"
	"github.com/mcoot/golfscore/internal/services/status"
	"github.com/mcoot/golfscore/internal/web/templates/layout"
	"github.com/mcoot/golfscore/internal/web/templates/pages"
)

// ScorecardHandler renders a round's scorecard
type ScorecardHandler struct {
	renderer
	rounds  round.ControllerInterface
	courses course.ServiceInterface
}

// NewScorecardHandler creates a new ScorecardHandler
func NewScorecardHandler(rounds round.ControllerInterface, courses course.ServiceInterface, logger *slog.Logger) *ScorecardHandler {
	return &ScorecardHandler{
		renderer: renderer{logger: logger},
		rounds:   rounds,
		courses:  courses,
	}
}

// View renders the scorecard of a round in progress or a completed round
func (h *ScorecardHandler) View(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := model.RoundID(mux.Vars(r)["id"])

	state, err := h.rounds.GetRound(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	lines, _, err := h.rounds.Status(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	handicaps, err := h.courses.HandicapSummary(ctx, state.Course.ID, "", state.Players)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := buildScorecard(state, handicaps)
	data.Lines = lines
	if state.IsComplete() {
		settlement, err := h.rounds.GetSettlement(ctx, id)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		data.Winners = settlement.Winners
	}
	h.render(w, r, http.StatusOK, pages.Scorecard(data))
}

func buildScorecard(state *model.RoundState, handicaps *course.HandicapSummary) pages.ScorecardData {
	tee := model.DefaultTeeColor
	if len(state.Players) > 0 {
		tee = state.Players[0].Tee()
	}
	active := !state.IsComplete()

	data := pages.ScorecardData{
		PageData:    layout.PageData{Title: state.Course.Name + " scorecard"},
		RoundID:     state.ID,
		CourseName:  state.Course.Name,
		Complete:    state.IsComplete(),
		CurrentHole: state.CurrentHole,
		Holes:       make([]pages.ScorecardHole, state.HoleCount()),
	}
	half := state.HoleCount() / 2
	for i, hole := range state.Course.Holes {
		par := hole.ParFor(tee)
		data.Holes[i] = pages.ScorecardHole{
			Number:      hole.Number,
			Par:         par,
			StrokeIndex: hole.StrokeIndexFor(tee),
			Current:     active && i+1 == state.CurrentHole,
		}
		if i < half {
			data.ParOut += par
		} else {
			data.ParIn += par
		}
	}
	data.ParTotal = data.ParOut + data.ParIn

	totals := status.ScorecardTotals(state)
	for i, p := range state.Players {
		row := pages.ScorecardRow{
			Name:   p.Name,
			Team:   state.Teams.TeamOf(p.Name),
			Cells:  make([]pages.ScorecardCell, state.HoleCount()),
			Totals: totals[i],
		}
		var strokes []int
		if i < len(handicaps.Players) {
			row.CourseHandicap = handicaps.Players[i].CourseHandicap
			strokes = handicaps.Players[i].Strokes
		}
		for hole := range row.Cells {
			cell := pages.ScorecardCell{Current: data.Holes[hole].Current}
			if hole < len(strokes) {
				cell.Strokes = strokes[hole]
			}
			s := state.Score(p.Name, hole)
			if s.HasGross() {
				cell.Gross = strconv.Itoa(*s.Gross)
				cell.Stableford = s.Stableford
			}
			if s.HasNet() {
				cell.Net = strconv.Itoa(*s.Net)
			}
			row.Cells[hole] = cell
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}
