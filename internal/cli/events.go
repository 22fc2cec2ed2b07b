package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/amigos/internal/command"
	"github.com/faizmokh/amigos/internal/event"
)

func newAddEventCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		atFlag  string
		friends []string
	)

	cmd := &cobra.Command{
		Use:     "addevent NAME... --at \"D-M-YYYY Hmm\"",
		Short:   "Plan an event with one or more friends.",
		Example: "  amigos addevent Dinner at Alice's --at \"5-5-2021 1930\" --friend \"Alice Tan\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := event.Parse(atFlag)
			if err != nil {
				return err
			}

			c := command.AddEventCommand{
				Name:    strings.Join(args, " "),
				At:      at,
				Friends: friends,
			}
			result, _, err := a.run(ctx, "addevent", c)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Date and time in D-M-YYYY Hmm, e.g. 5-5-2021 1930")
	cmd.Flags().StringArrayVar(&friends, "friend", nil, "Name of a friend attending (repeatable)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func newEventsCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events in chronological order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, book, err := a.load(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			events := chronological(book.Events())
			if len(events) == 0 {
				fmt.Fprintln(out, "(no events)")
				return nil
			}
			for i, e := range events {
				fmt.Fprintf(out, "%d. %s\n", i+1, formatEvent(e))
			}
			return nil
		},
	}
}
