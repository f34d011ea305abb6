package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/golfscore/internal/api/request"
	"github.com/mcoot/golfscore/internal/api/response"
	"github.com/mcoot/golfscore/internal/model"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Play a round hole by hole",
	}

	cmd.AddCommand(newRoundStartCmd())
	cmd.AddCommand(newRoundGetCmd())
	cmd.AddCommand(newRoundScoreCmd())
	cmd.AddCommand(newRoundActionCmd("confirm", "Toggle confirmation of the current hole"))
	cmd.AddCommand(newRoundAdvanceCmd())
	cmd.AddCommand(newRoundActionCmd("back", "Move back to the previous hole"))
	cmd.AddCommand(newRoundStatusCmd())
	cmd.AddCommand(newRoundFormatCmd())
	cmd.AddCommand(newRoundCompleteCmd())
	cmd.AddCommand(newRoundSettlementCmd())
	cmd.AddCommand(newRoundAbandonCmd())

	return cmd
}

func newRoundStartCmd() *cobra.Command {
	var (
		courseID string
		players  []string
		formats  []string
		teamA    string
		teamB    string
	)

	cmd := &cobra.Command{
		Use:     "start",
		Short:   "Start a new round",
		Example: `  golfscore round start --course brora --player Ann:12.4 --player Ben:3.1:blue --format skins --format nassau`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildStartRequest(courseID, players, formats, teamA, teamB)
			if err != nil {
				return err
			}

			var result response.Round
			if err := client.Post(cmd.Context(), "/api/v1/rounds", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&courseID, "course", "c", "", "Course ID (defaults to the server's default course)")
	cmd.Flags().StringArrayVarP(&players, "player", "p", nil, "Player as name:index[:tee] (repeatable)")
	cmd.Flags().StringArrayVarP(&formats, "format", "f", nil, "Format to play (repeatable)")
	cmd.Flags().StringVar(&teamA, "team-a", "", "Team A players, comma separated")
	cmd.Flags().StringVar(&teamB, "team-b", "", "Team B players, comma separated")
	_ = cmd.MarkFlagRequired("player")
	cmd.MarkFlagsRequiredTogether("team-a", "team-b")

	return cmd
}

func buildStartRequest(courseID string, players, formats []string, teamA, teamB string) (request.StartRoundRequest, error) {
	req := request.StartRoundRequest{CourseID: courseID, Formats: formats}
	for _, s := range players {
		p, err := request.ParsePlayerParam(s)
		if err != nil {
			return req, err
		}
		req.Players = append(req.Players, request.Player{
			Name:          p.Name,
			HandicapIndex: p.HandicapIndex,
			TeeColor:      p.TeeColor,
		})
	}
	if teamA != "" || teamB != "" {
		a, err := parseTeam(teamA)
		if err != nil {
			return req, err
		}
		b, err := parseTeam(teamB)
		if err != nil {
			return req, err
		}
		req.Teams = &request.Teams{TeamA: a, TeamB: b}
	}
	return req, nil
}

func parseTeam(s string) (request.Team, error) {
	names := strings.Split(s, ",")
	if len(names) != 2 {
		return request.Team{}, fmt.Errorf("team %q must name exactly two players", s)
	}
	return request.Team{Players: [2]string{strings.TrimSpace(names[0]), strings.TrimSpace(names[1])}}, nil
}

func newRoundGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <round-id>",
		Short: "Show a round's scorecard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Round
			if err := client.Get(cmd.Context(), roundPath(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundScoreCmd() *cobra.Command {
	var hole int

	cmd := &cobra.Command{
		Use:   "score <round-id> <player> <gross>",
		Short: "Enter a gross score on the current hole, or amend an earlier one with --hole",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("gross score %q is not a number", args[2])
			}

			req := request.ScoreRequest{Player: args[1], Gross: gross}
			if cmd.Flags().Changed("hole") {
				req.Hole = &hole
			}

			var result response.Round
			if err := client.Put(cmd.Context(), roundPath(args[0], "scores"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&hole, "hole", 0, "Hole to amend (1-based)")

	return cmd
}

// newRoundActionCmd builds a command that posts to a round action and shows the round
func newRoundActionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <round-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Round
			if err := client.Post(cmd.Context(), roundPath(args[0], action), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundAdvanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advance <round-id>",
		Short: "Move to the next hole, settling the round after the last",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Advance
			if err := client.Post(cmd.Context(), roundPath(args[0], "advance"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <round-id>",
		Short: "Show the status of every format and running totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Status
			if err := client.Get(cmd.Context(), roundPath(args[0], "status"), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <round-id> <format>",
		Short: "Compute one format's result for a round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := model.ParseFormat(args[1]); err != nil {
				return fmt.Errorf("%w: %q", err, args[1])
			}

			var result response.FormatResult
			if err := client.Get(cmd.Context(), roundPath(args[0], "formats", args[1]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <round-id>",
		Short: "Finish the round where it stands and settle it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Settlement
			if err := client.Post(cmd.Context(), roundPath(args[0], "complete"), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundSettlementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settlement <round-id>",
		Short: "Show the settlement of a completed round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Settlement
			if err := client.Get(cmd.Context(), roundPath(args[0], "settlement"), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <round-id>",
		Short: "Abandon a round in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), roundPath(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Round abandoned")
			return nil
		},
	}
}
