package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/amigos/internal/command"
	"github.com/faizmokh/amigos/internal/person"
)

func newAddCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		phone       string
		email       string
		address     string
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add NAME...",
		Short: "Add a new friend.",
		Long:  "add records a new friend. Names must be unique; contact details and tags are optional.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := person.New(strings.Join(args, " "), phone, email, address, description, tags)
			if err != nil {
				return err
			}

			result, _, err := a.run(ctx, "add", command.AddPersonCommand{Person: p})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Feedback)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag to attach (repeatable)")

	return cmd
}

func newListCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every friend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(ctx, a, cmd)
		},
	}
}

func runList(ctx context.Context, a *app, cmd *cobra.Command) error {
	result, book, err := a.query(ctx, "list", command.ListCommand{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Feedback)
	printPersons(out, book.FilteredPersons())
	return nil
}

func newFindCommand(ctx context.Context, a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "Find friends whose names contain any of the keywords.",
		Long:  "find matches whole words in names, ignoring case. Indexes shown here are not kept between runs.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, book, err := a.query(ctx, "find", command.FindCommand{Keywords: args})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Feedback)
			for _, p := range book.FilteredPersons() {
				fmt.Fprintf(out, "- %s\n", formatPerson(p))
			}
			return nil
		},
	}
}

func newViewCommand(ctx context.Context, a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "view [INDEX]",
		Short: "Show a friend's details and logs.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && len(args) == 0 {
				return fmt.Errorf("index or --name is required")
			}

			_, book, err := a.load(ctx)
			if err != nil {
				return err
			}

			var index string
			if len(args) == 1 {
				index = args[0]
			}
			p, err := resolvePerson(book, index, name)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), p.Card())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact name of the friend (instead of INDEX)")

	return cmd
}
