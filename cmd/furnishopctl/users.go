package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUsersCmd(run runner) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Work with the account registry",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(ctx context.Context, s *stores) error {
				users, err := s.session.ListUsers(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
				for _, u := range users {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
				}

				return w.Flush()
			})
		},
	}

	usersCmd.AddCommand(listCmd)

	return usersCmd
}

func newStatsCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the admin dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(ctx context.Context, s *stores) error {
				stats, err := s.dashboard.Stats(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "products: %d\norders: %d\nusers: %d\n",
					stats.Products, stats.Orders, stats.Users)

				return nil
			})
		},
	}
}
