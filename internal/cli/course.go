package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/golfscore/internal/api/response"
	"github.com/mcoot/golfscore/internal/model"
	"github.com/mcoot/golfscore/internal/services/course"
)

func newCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Browse the course catalog",
	}

	cmd.AddCommand(newCourseListCmd())
	cmd.AddCommand(newCourseGetCmd())
	cmd.AddCommand(newCourseHandicapsCmd())

	return cmd
}

func newCourseListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses, optionally filtered by name or location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/courses"
			if query != "" {
				path += "?" + url.Values{"q": {query}}.Encode()
			}

			var result response.CourseList
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name or location")

	return cmd
}

func newCourseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <course-id>",
		Short: "Show a course's tees and holes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Course
			if err := client.Get(cmd.Context(), "/api/v1/courses/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newCourseHandicapsCmd() *cobra.Command {
	var (
		players []string
		tee     string
	)

	cmd := &cobra.Command{
		Use:     "handicaps <course-id>",
		Short:   "Show playing handicaps for a group on a course",
		Example: `  golfscore course handicaps royal-dornoch --player Ann:12.4 --player Ben:3.1:blue`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{"player": players}
			if tee != "" {
				query.Set("tee", tee)
			}

			var result course.HandicapSummary
			path := "/api/v1/courses/" + url.PathEscape(args[0]) + "/handicaps?" + query.Encode()
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&players, "player", "p", nil, "Player as name:index[:tee] (repeatable)")
	cmd.Flags().StringVar(&tee, "tee", "", "Tee colour for every player")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
