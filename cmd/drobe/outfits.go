package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ainsleyw/drobe/internal/cli"
	"github.com/ainsleyw/drobe/internal/common"
)

func outfitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outfits",
		Short: "Compose and manage outfits",
	}

	cmd.AddCommand(outfitsCreateCmd())
	cmd.AddCommand(outfitsListCmd())
	cmd.AddCommand(outfitsShowCmd())
	cmd.AddCommand(outfitsDeleteCmd())
	cmd.AddCommand(outfitsEditCmd())

	return cmd
}

func outfitsCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <item-id> [item-id...]",
		Short: "Create a named outfit from closet items",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			outfit, err := store.CreateOutfit(ctx, args[0], args[1:])
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s Outfit %q saved with %d item(s).", cli.SuccessIcon, outfit.Name, len(outfit.ClothingItemIDs))))
			return nil
		},
	}
}

func outfitsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved outfits",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			outfits, err := store.LoadOutfits(ctx)
			if err != nil {
				return err
			}
			if len(outfits) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No outfits yet. Try 'drobe outfits create'."))
				return nil
			}

			items, err := store.LoadItems(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Items"),
				cli.TableHeaderStyle.Render("Created"))

			for _, outfit := range outfits {
				resolved := outfit.ResolveItems(items)
				count := fmt.Sprintf("%d", len(resolved))
				if len(resolved) < len(outfit.ClothingItemIDs) {
					count = fmt.Sprintf("%d (%d missing)", len(resolved),
						len(outfit.ClothingItemIDs)-len(resolved))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					outfit.ID, outfit.Name, count,
					outfit.CreatedAt.Format("2006-01-02"))
			}

			return nil
		},
	}
}

func outfitsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <outfit-id>",
		Short: "Show an outfit's items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			outfits, err := store.LoadOutfits(ctx)
			if err != nil {
				return err
			}

			for _, outfit := range outfits {
				if outfit.ID != args[0] {
					continue
				}

				items, err := store.LoadItems(ctx)
				if err != nil {
					return err
				}
				resolved := outfit.ResolveItems(items)

				fmt.Println(cli.TitleStyle.Render(cli.HangerIcon + " " + outfit.Name))
				if len(resolved) == 0 {
					fmt.Println(cli.SubtleStyle.Render("None of this outfit's items are still in your closet."))
					return nil
				}
				for _, item := range resolved {
					fmt.Printf("  %s %s %s\n",
						cli.TypeStyle(item.Type).Render(item.Type),
						item.DisplayName(),
						cli.SubtleStyle.Render("("+strings.Join(item.Tags, ", ")+")"))
				}
				if missing := len(outfit.ClothingItemIDs) - len(resolved); missing > 0 {
					fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d item(s) no longer in the closet.", missing)))
				}
				return nil
			}

			return fmt.Errorf("%w: outfit %q", common.ErrNotFound, args[0])
		},
	}
}

func outfitsDeleteCmd() *cobra.Command {
	var autoYes bool

	cmd := &cobra.Command{
		Use:   "delete <outfit-id>",
		Short: "Delete an outfit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !autoYes && !cli.Confirm(os.Stdin, os.Stdout, "Are you sure you want to delete this outfit?") {
				fmt.Println(cli.SubtleStyle.Render("Nothing deleted."))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteOutfit(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%s Outfit deleted.", cli.SuccessIcon)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&autoYes, "yes", "y", false, "delete without confirmation")
	return cmd
}

// Editing replaces the outfit wholesale: the store has no update-in-place,
// so edit deletes the original and creates a new outfit with the same name
// unless --name overrides it.
func outfitsEditCmd() *cobra.Command {
	var newName string

	cmd := &cobra.Command{
		Use:   "edit <outfit-id> <item-id> [item-id...]",
		Short: "Replace an outfit's item selection",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			outfits, err := store.LoadOutfits(ctx)
			if err != nil {
				return err
			}

			name := newName
			found := false
			for _, outfit := range outfits {
				if outfit.ID == args[0] {
					found = true
					if name == "" {
						name = outfit.Name
					}
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: outfit %q", common.ErrNotFound, args[0])
			}

			replacement, err := store.CreateOutfit(ctx, name, args[1:])
			if err != nil {
				return err
			}
			if err := store.DeleteOutfit(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"%s Outfit %q updated (new id %s).", cli.SuccessIcon, replacement.Name, replacement.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "rename the outfit while editing")
	return cmd
}
