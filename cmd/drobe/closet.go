package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ainsleyw/drobe/internal/cli"
)

func closetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closet",
		Short: "Manage the clothing items in your closet",
	}

	cmd.AddCommand(closetListCmd())
	cmd.AddCommand(closetTagsCmd())
	cmd.AddCommand(closetDeleteCmd())

	return cmd
}

func closetListCmd() *cobra.Command {
	var filterType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List closet items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			items, err := store.LoadItems(ctx)
			if err != nil {
				return err
			}

			if filterType != "" && filterType != "all" {
				kept := items[:0]
				for _, item := range items {
					if item.Type == filterType {
						kept = append(kept, item)
					}
				}
				items = kept
			}

			if len(items) == 0 {
				if filterType != "" && filterType != "all" {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("No %s items yet.", filterType)))
				} else {
					fmt.Println(cli.SubtleStyle.Render("Your closet is empty. Try 'drobe detect <photo>'."))
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Tags"),
				cli.TableHeaderStyle.Render("Confidence"))

			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\n",
					item.ID,
					item.DisplayName(),
					cli.TypeStyle(item.Type).Render(item.Type),
					strings.Join(item.Tags, ", "),
					item.Confidence*100)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&filterType, "type", "t", "all", "filter by clothing type")
	return cmd
}

func closetTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags <item-id> <tags>",
		Short: "Replace an item's tags",
		Long:  `Replace the tags on a clothing item. Separate tags with commas; whitespace around each tag is trimmed and empty tags are dropped.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			itemID := args[0]

			tags := []string{}
			for _, tag := range strings.Split(args[1], ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					tags = append(tags, tag)
				}
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.UpdateItemTags(ctx, itemID, tags); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%s Tags updated.", cli.SuccessIcon)))
			return nil
		},
	}
}

func closetDeleteCmd() *cobra.Command {
	var autoYes bool

	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete a clothing item",
		Long: `Delete a clothing item from your closet. Outfits that reference the item
keep their reference; it simply stops resolving.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			itemID := args[0]

			if !autoYes && !cli.Confirm(os.Stdin, os.Stdout, "Are you sure you want to delete this item?") {
				fmt.Println(cli.SubtleStyle.Render("Nothing deleted."))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteItem(ctx, itemID); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%s Item deleted.", cli.SuccessIcon)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "delete without confirmation")
	return cmd
}
