package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"furnishop/internal/domain/entity"
	"furnishop/internal/errors"

	"github.com/spf13/cobra"
)

func newOrdersCmd(run runner) *cobra.Command {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Work with the order history",
	}

	var userID int64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), func(ctx context.Context, s *stores) error {
				var (
					orders []*entity.Order
					err    error
				)
				if cmd.Flags().Changed("user") {
					orders, err = s.orders.GetUserOrders(ctx, userID)
				} else {
					orders, err = s.orders.ListOrders(ctx)
				}
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tDATE\tUSER\tITEMS\tTOTAL\tPAYMENT\tSTATUS")
				for _, o := range orders {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.2f\t%s\t%s\n",
						o.ID, o.Date.Format(time.RFC3339), o.UserID, len(o.Items), o.Total, o.PaymentMethod, o.Status)
				}

				return w.Flush()
			})
		},
	}
	listCmd.Flags().Int64Var(&userID, "user", 0, "only orders placed by this user id")

	setStatusCmd := &cobra.Command{
		Use:   "set-status <order-id> <Pending|Shipped|Delivered>",
		Short: "Replace the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Errorf("invalid order id %q", args[0])
			}
			status := entity.OrderStatus(args[1])
			if !status.IsValid() {
				return errors.Errorf("invalid status %q", args[1])
			}

			return run(cmd.Context(), func(ctx context.Context, s *stores) error {
				updated, err := s.orders.UpdateOrderStatus(ctx, orderID, status)
				if err != nil {
					return err
				}
				if !updated {
					return errors.Errorf("order %d not found", orderID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "order %d is now %s\n", orderID, status)

				return nil
			})
		},
	}

	ordersCmd.AddCommand(listCmd, setStatusCmd)

	return ordersCmd
}
