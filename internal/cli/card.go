package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/golfscore/internal/api/request"
	"github.com/mcoot/golfscore/internal/factory"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/round"
)

// Card is a filled-in scorecard read from YAML or JSON. A null or missing
// entry in a player's scores means no score was taken on that hole.
type Card struct {
	Course  string            `yaml:"course"`
	Players []model.Player    `yaml:"players"`
	Formats []string          `yaml:"formats"`
	Teams   *CardTeams        `yaml:"teams"`
	Scores  map[string][]*int `yaml:"scores"`
}

// CardTeams splits a four-ball card into two sides
type CardTeams struct {
	TeamA CardTeam `yaml:"team_a"`
	TeamB CardTeam `yaml:"team_b"`
}

// CardTeam is one side on a card
type CardTeam struct {
	Name            string    `yaml:"name"`
	Players         [2]string `yaml:"players"`
	FoursomesPlayer string    `yaml:"foursomes_player"`
}

// ReadCard parses a scorecard file
func ReadCard(path string) (Card, error) {
	var card Card
	data, err := os.ReadFile(path)
	if err != nil {
		return card, fmt.Errorf("read card: %w", err)
	}
	if err := yaml.Unmarshal(data, &card); err != nil {
		return card, fmt.Errorf("parse card %s: %w", path, err)
	}
	return card, nil
}

func (c Card) setup() (round.Setup, error) {
	req := request.StartRoundRequest{CourseID: c.Course, Formats: c.Formats}
	for _, p := range c.Players {
		req.Players = append(req.Players, request.Player{
			Name:          p.Name,
			HandicapIndex: p.HandicapIndex,
			TeeColor:      p.TeeColor,
		})
	}
	if c.Teams != nil {
		req.Teams = &request.Teams{
			TeamA: request.Team(c.Teams.TeamA),
			TeamB: request.Team(c.Teams.TeamB),
		}
	}
	return req.ToSetup()
}

// ScoreCard plays a card through the round engine hole by hole and returns
// the settlement
func ScoreCard(ctx context.Context, rounds round.ControllerInterface, card Card) (*model.Settlement, error) {
	setup, err := card.setup()
	if err != nil {
		return nil, err
	}
	state, err := rounds.StartRound(ctx, setup)
	if err != nil {
		return nil, err
	}

	for name, row := range card.Scores {
		if _, ok := state.Player(name); !ok {
			return nil, fmt.Errorf("%w: scores given for %q", model.ErrPlayerNotFound, name)
		}
		if len(row) > state.HoleCount() {
			return nil, fmt.Errorf("%w: %d scores for %s on a %d hole course",
				model.ErrInvalidHole, len(row), name, state.HoleCount())
		}
	}

	for hole := 0; hole < state.HoleCount(); hole++ {
		for _, p := range state.Players {
			row := card.Scores[p.Name]
			if hole >= len(row) || row[hole] == nil {
				continue
			}
			if _, err := rounds.RecordScore(ctx, state.ID, p.Name, *row[hole]); err != nil {
				return nil, fmt.Errorf("hole %d, %s: %w", hole+1, p.Name, err)
			}
		}
		_, settlement, err := rounds.AdvanceHole(ctx, state.ID)
		if err != nil {
			return nil, err
		}
		if settlement != nil {
			return settlement, nil
		}
	}
	return rounds.GetSettlement(ctx, state.ID)
}

func newCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Work with scorecard files offline",
	}

	cmd.AddCommand(newCardScoreCmd())

	return cmd
}

func newCardScoreCmd() *cobra.Command {
	var coursesPath string

	cmd := &cobra.Command{
		Use:   "score <file>",
		Short: "Settle a filled-in scorecard without a server",
		Long: `Score a YAML or JSON scorecard with the round engine and print the settlement.

The card names a catalog course, the players, the formats and each player's
gross scores in hole order. Use null for a hole a player did not finish.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := ReadCard(args[0])
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			app, err := factory.New(cmd.Context(), factory.Config{Logger: logger, CoursesPath: coursesPath})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			settlement, err := ScoreCard(cmd.Context(), app.RoundController, card)
			if err != nil {
				return err
			}

			output(cmd).Print(*settlement)
			return nil
		},
	}

	cmd.Flags().StringVar(&coursesPath, "courses", "", "Extra course file or directory to load")

	return cmd
}
