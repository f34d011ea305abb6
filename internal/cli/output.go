package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/golfscore/internal/api/response"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to w and errW
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	case response.CourseList:
		o.printCourseList(v)
	case model.Course:
		o.printCourse(v)
	case course.HandicapSummary:
		o.printHandicaps(v)
	case response.Round:
		o.printRound(v)
	case response.Advance:
		o.printRound(v.Round)
		if v.Settlement != nil {
			o.printf("\n")
			o.printSettlement(*v.Settlement)
		}
	case response.Status:
		o.printStatus(v)
	case response.FormatResult:
		o.printf("%s:\n", v.DisplayName)
		o.printJSON(v.Result)
	case model.Settlement:
		o.printSettlement(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printCourseList(l response.CourseList) {
	if len(l.Courses) == 0 {
		o.printf("No courses found\n")
		return
	}
	for _, c := range l.Courses {
		o.printf("%-20s %-36s %2d holes, par %d\n", c.ID, c.Name, c.Holes, c.TotalPar)
	}
}

func (o *Output) printCourse(c model.Course) {
	o.printf("Course: %s (%s)\n", c.Name, c.ID)
	if c.Location != "" {
		o.printf("Location: %s\n", c.Location)
	}
	o.printf("Par: %d\n", c.TotalPar)
	o.printf("Tees:\n")
	for _, t := range c.TeeBoxes {
		o.printf("  %-8s %-14s %.1f / %d\n", t.Color, t.Name, t.CourseRating, t.SlopeRating)
	}
	o.printf("Holes:\n")
	for _, h := range c.Holes {
		o.printf("  %2d  par %d  SI %2d\n", h.Number, h.ParFor(model.DefaultTeeColor), h.StrokeIndexFor(model.DefaultTeeColor))
	}
}

func (o *Output) printHandicaps(s course.HandicapSummary) {
	o.printf("Course: %s\n", s.CourseName)
	for _, p := range s.Players {
		o.printf("  %s: index %.1f, %s tee, course handicap %d\n", p.Name, p.HandicapIndex, p.TeeColor, p.CourseHandicap)
	}
}

func (o *Output) printRound(r response.Round) {
	o.printf("Round: %s (%s)\n", r.ID, r.CourseName)
	if r.Finished {
		o.printf("Status: %s\n", r.Status)
	} else {
		o.printf("Status: %s, hole %d of %d\n", r.Status, r.CurrentHole, len(r.Holes))
	}
	names := make([]string, len(r.Formats))
	for i, f := range r.Formats {
		names[i] = f.DisplayName()
	}
	o.printf("Formats: %s\n", strings.Join(names, ", "))
	o.printScores(r.Players, r.Scores, len(r.Holes))
}

func (o *Output) printScores(players []model.Player, scores map[string][]model.HoleScore, holes int) {
	width := 4
	for _, p := range players {
		width = max(width, len(p.Name))
	}

	o.printf("%-*s", width, "Hole")
	for i := 1; i <= holes; i++ {
		o.printf(" %2d", i)
	}
	o.printf("  Tot\n")
	for _, p := range players {
		o.printf("%-*s", width, p.Name)
		total := 0
		for _, s := range scores[p.Name] {
			if s.HasGross() {
				total += *s.Gross
				o.printf(" %2d", *s.Gross)
			} else {
				o.printf("  .")
			}
		}
		o.printf("  %3d\n", total)
	}
}

func (o *Output) printStatus(s response.Status) {
	o.printf("Round %s, hole %d\n", s.RoundID, s.CurrentHole)
	for _, l := range s.Lines {
		o.printf("  %s\n", l)
	}
	for _, t := range s.Totals {
		o.printf("  %s: %d strokes, %d pts through %d\n", t.Name, t.GrossTotal, t.StablefordTotal, t.HolesCompleted)
	}
}

func (o *Output) printSettlement(s model.Settlement) {
	o.printf("Settlement: %s (%s)\n", s.RoundID, s.CourseName)
	for _, t := range s.Totals {
		o.printf("  %s: out %d, in %d, total %d (net %d, %d pts)\n",
			t.Name, t.Front9.Gross, t.Back9.Gross, t.Total.Gross, t.Total.Net, t.Total.Stableford)
	}
	if len(s.Winners) > 0 {
		o.printf("Results:\n")
		for _, w := range s.Winners {
			o.printf("  %s\n", w)
		}
	}
}
