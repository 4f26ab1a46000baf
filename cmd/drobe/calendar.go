package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ainsleyw/drobe/internal/cli"
	"github.com/ainsleyw/drobe/internal/model"
)

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Plan outfits on the calendar",
	}

	cmd.AddCommand(calendarAssignCmd())
	cmd.AddCommand(calendarShowCmd())
	cmd.AddCommand(calendarRemoveCmd())

	return cmd
}

func calendarAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <date> <outfit-id>",
		Short: "Assign an outfit to a date",
		Long: `Assign an outfit to a calendar date (YYYY-MM-DD, or "today"). A date that
already has an outfit gets it replaced; each date holds at most one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := args[0]
			if date == "today" {
				date = model.DateKey(time.Now())
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			event, err := store.UpsertCalendarEvent(ctx, date, args[1])
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s Outfit planned for %s.", cli.SuccessIcon, event.Date)))
			return nil
		},
	}
}

func calendarShowCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show planned outfits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			events, err := store.LoadEvents(ctx)
			if err != nil {
				return err
			}

			if month != "" {
				if _, err := time.Parse("2006-01", month); err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
				}
				kept := events[:0]
				for _, event := range events {
					if len(event.Date) >= 7 && event.Date[:7] == month {
						kept = append(kept, event)
					}
				}
				events = kept
			}

			if len(events) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No outfits planned."))
				return nil
			}

			outfits, err := store.LoadOutfits(ctx)
			if err != nil {
				return err
			}

			sort.Slice(events, func(i, j int) bool { return events[i].Date < events[j].Date })

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Outfit"))

			for _, event := range events {
				// Dangling outfit references are filtered from display, not
				// repaired.
				outfit := event.ResolveOutfit(outfits)
				if outfit == nil {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", event.Date, outfit.Name)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "only show a month (YYYY-MM)")
	return cmd
}

func calendarRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <date>",
		Short: "Clear the outfit planned for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := args[0]
			if date == "today" {
				date = model.DateKey(time.Now())
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.RemoveCalendarEvent(ctx, date); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s Plan cleared for %s.", cli.SuccessIcon, date)))
			return nil
		},
	}
}
