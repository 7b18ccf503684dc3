package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/review-scheduler/internal/app"
	"github.com/heartmarshall/review-scheduler/internal/domain"
	"github.com/heartmarshall/review-scheduler/internal/service/schedule"
)

func newDueCommand() *cobra.Command {
	var (
		owner string
		asOf  string
		limit int
	)

	command := &cobra.Command{
		Use:   "due",
		Short: "List the items of an owner that are due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := uuid.Parse(owner)
			if err != nil {
				return fmt.Errorf("invalid --owner: %w", err)
			}
			at := time.Now().UTC()
			if asOf != "" {
				if at, err = time.Parse(time.RFC3339, asOf); err != nil {
					return fmt.Errorf("invalid --as-of: %w", err)
				}
			}

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), maintenanceTimeout)
			defer cancel()

			backend, err := app.OpenBackend(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer backend.Close()

			ids, err := backend.Service.GetDueItems(ctx, schedule.DueItemsInput{OwnerID: ownerID, AsOf: at, Limit: limit})
			if err != nil {
				return err
			}
			recs, err := backend.Service.GetSchedules(ctx, ownerID, ids)
			if err != nil {
				return err
			}

			printDue(cmd.OutOrStdout(), ids, recs, at)
			return nil
		},
	}

	command.Flags().StringVar(&owner, "owner", "", "owner id (required)")
	command.Flags().StringVar(&asOf, "as-of", "", "RFC3339 instant to evaluate (default now)")
	command.Flags().IntVar(&limit, "limit", 50, "maximum number of items")
	_ = command.MarkFlagRequired("owner")

	return command
}

var (
	neverTakenColor = color.New(color.FgYellow)
	overdueColor    = color.New(color.FgRed)
)

// printDue writes one line per due item in due order. Items never taken are
// yellow, items at least a day past their review time are red.
func printDue(w io.Writer, ids []uuid.UUID, recs []domain.ReviewRecord, asOf time.Time) {
	if len(ids) == 0 {
		fmt.Fprintln(w, "nothing due")
		return
	}

	byItem := make(map[uuid.UUID]domain.ReviewRecord, len(recs))
	for _, r := range recs {
		byItem[r.ItemID] = r
	}

	for _, id := range ids {
		rec, ok := byItem[id]
		switch {
		case !ok || rec.NeverTaken():
			neverTakenColor.Fprintf(w, "%s  never taken\n", id)
		case asOf.Sub(*rec.NextReviewAt) >= domain.ReviewDay:
			overdueColor.Fprintf(w, "%s  overdue since %s  (interval %dd, %d attempts)\n",
				id, rec.NextReviewAt.Format(time.RFC3339), rec.IntervalDays, rec.AttemptCount)
		default:
			fmt.Fprintf(w, "%s  due %s  (interval %dd, %d attempts)\n",
				id, rec.NextReviewAt.Format(time.RFC3339), rec.IntervalDays, rec.AttemptCount)
		}
	}
}
