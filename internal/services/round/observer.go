package round

import (
	"log/slog"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/formats"
)

// LogObserver traces six point allocations to the debug log
type LogObserver struct {
	logger *slog.Logger
}

var _ formats.SixPointObserver = (*LogObserver)(nil)

// NewLogObserver creates a LogObserver writing to logger
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// HoleAllocated logs the points each player took on a hole
func (o *LogObserver) HoleAllocated(hole model.SixPointHole) {
	attrs := []any{
		slog.Int("hole", hole.Hole),
		slog.String("pattern", string(hole.Pattern)),
	}
	for name, pts := range hole.Points {
		attrs = append(attrs, slog.Int("points."+name, pts))
	}
	o.logger.Debug("six point hole allocated", attrs...)
}

// Normalized logs the raw totals and the amount taken off each
func (o *LogObserver) Normalized(raw map[string]int, reduction int) {
	attrs := []any{slog.Int("reduction", reduction)}
	for name, total := range raw {
		attrs = append(attrs, slog.Int("raw."+name, total))
	}
	o.logger.Debug("six point totals normalized", attrs...)
}
