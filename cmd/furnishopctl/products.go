package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProductsCmd(run runner) *cobra.Command {
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Work with the effective catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the effective catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(ctx context.Context, s *stores) error {
				products, err := s.catalog.List(ctx)
				if err != nil {
					return err
				}
				source, err := s.catalog.Source(ctx)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tFEATURED")
				for _, p := range products {
					fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%t\n", p.ID, p.Name, p.Category, p.Price, p.Featured)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d products (%s)\n", len(products), source)

				return nil
			})
		},
	}

	productsCmd.AddCommand(listCmd)

	return productsCmd
}
