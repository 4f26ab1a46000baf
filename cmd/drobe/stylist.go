package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ainsleyw/drobe/internal/cli"
	"github.com/ainsleyw/drobe/internal/stylist"
	"github.com/ainsleyw/drobe/internal/tui"
)

func stylistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stylist [question...]",
		Short: "Ask the stylist for outfit ideas",
		Long: `Ask the rule-based stylist for suggestions drawn from your own closet.

With a question it answers once and exits; without one it opens an
interactive chat.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := stylist.New(store, rand.New(rand.NewSource(time.Now().UnixNano())))

			if len(args) > 0 {
				reply, err := engine.Reply(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Println(cli.TitleStyle.Render(cli.SparkleIcon + " Stylist"))
				fmt.Println(reply)
				return nil
			}

			return tui.Run(engine)
		},
	}
}
