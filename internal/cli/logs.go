package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/amigos/internal/command"
)

func newAddLogCommand(ctx context.Context, a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "addlog INDEX t/TITLE [d/DESCRIPTION]",
		Short: "Add a log to an existing friend.",
		Long: "addlog attaches a titled note to one friend, chosen by their position in `amigos list` " +
			"or by exact name with --name. A friend cannot hold the same log twice.",
		Example: "  amigos addlog 1 t/Likes apples d/Especially red ones\n" +
			"  amigos addlog --name \"Alice Tan\" t/Birthday d/5th of May",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			var (
				c   *command.AddLogCommand
				err error
			)
			if name != "" {
				c, err = command.ParseAddLogByName(name, input)
			} else {
				c, err = command.ParseAddLog(input)
			}
			if err != nil {
				return err
			}

			result, _, err := a.run(ctx, command.AddLogCommandWord, c)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact name of the friend (instead of INDEX)")

	return cmd
}
