package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/testutil"
)

const parCard = `course: park
players:
  - name: Ann
  - name: Ben
    handicap_index: 0
formats: [skins]
scores:
  Ann: [4, 5, 4, 3, 4, 3, 4, 5, 4, 4, 4, 3, 5, 4, 4, 3, 4, 5]
  Ben: [5, 6, 5, 4, 5, 4, 5, 6, 5, 5, 5, 4, 6, 5, 5, 4, 5, 6]
`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// writeCourse writes the park test course as a course file
func writeCourse(t *testing.T, dir string) string {
	t.Helper()
	data, err := json.Marshal(testutil.ParkCourse())
	require.NoError(t, err)
	return writeFile(t, dir, "park.json", data)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCardScoreJSON(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	cardPath := writeFile(t, dir, "card.yaml", []byte(parCard))

	out, err := runCLI(t, "card", "score", cardPath, "--courses", coursePath, "-o", "json")
	require.NoError(t, err)

	var settlement model.Settlement
	require.NoError(t, json.Unmarshal([]byte(out), &settlement))
	assert.Equal(t, "park", settlement.CourseID)
	assert.Equal(t, []string{"Skins: Ann (18 skins)"}, settlement.Winners)
	require.Len(t, settlement.Totals, 2)
	assert.Equal(t, 72, settlement.Totals[0].Total.Gross)
	assert.Equal(t, 36, settlement.Totals[0].Total.Stableford)
	assert.Equal(t, 90, settlement.Totals[1].Total.Gross)
}

func TestCardScoreText(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	cardPath := writeFile(t, dir, "card.yaml", []byte(parCard))

	out, err := runCLI(t, "card", "score", cardPath, "--courses", coursePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Settlement: ")
	assert.Contains(t, out, "(Park Links)")
	assert.Contains(t, out, "  Ann: out 36, in 36, total 72 (net 72, 36 pts)\n")
	assert.Contains(t, out, "Results:\n  Skins: Ann (18 skins)\n")
}

func TestCardScorePartialCard(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)
	cardPath := writeFile(t, dir, "card.json", []byte(`{
  "course": "park",
  "players": [{"name": "Ann"}, {"name": "Ben"}],
  "formats": ["skins"],
  "scores": {"Ann": [4, null, 4], "Ben": [5, 6]}
}`))

	out, err := runCLI(t, "card", "score", cardPath, "--courses", coursePath, "-o", "json")
	require.NoError(t, err)

	var settlement model.Settlement
	require.NoError(t, json.Unmarshal([]byte(out), &settlement))
	assert.Equal(t, 8, settlement.Totals[0].Total.Gross)
	assert.Equal(t, 11, settlement.Totals[1].Total.Gross)
	assert.False(t, settlement.Scores["Ann"][1].HasGross())
	// Ben takes hole 2 alone
	assert.Equal(t, 1, settlement.Results.Skins.Skins["Ben"])
	assert.Equal(t, []string{"Skins: Ann (2 skins)"}, settlement.Winners)
}

func TestCardScoreErrors(t *testing.T) {
	dir := t.TempDir()
	coursePath := writeCourse(t, dir)

	tests := []struct {
		name    string
		card    string
		wantErr error
	}{
		{
			name:    "scores for someone not playing",
			card:    "course: park\nplayers: [{name: Ann}]\nscores:\n  Cat: [4]\n",
			wantErr: model.ErrPlayerNotFound,
		},
		{
			name:    "more scores than holes",
			card:    "course: park\nplayers: [{name: Ann}]\nscores:\n  Ann: [4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4,4]\n",
			wantErr: model.ErrInvalidHole,
		},
		{
			name:    "gross out of range",
			card:    "course: park\nplayers: [{name: Ann}]\nscores:\n  Ann: [16]\n",
			wantErr: model.ErrInvalidGrossScore,
		},
		{
			name:    "unknown course",
			card:    "course: nowhere\nplayers: [{name: Ann}]\n",
			wantErr: model.ErrCourseNotFound,
		},
		{
			name:    "unknown format",
			card:    "course: park\nplayers: [{name: Ann}]\nformats: [bingo]\n",
			wantErr: model.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cardPath := writeFile(t, t.TempDir(), "card.yaml", []byte(tt.card))
			_, err := runCLI(t, "card", "score", cardPath, "--courses", coursePath)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCardScoreMissingFile(t *testing.T) {
	_, err := runCLI(t, "card", "score", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
