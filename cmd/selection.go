package cmd

import (
	"fmt"
	"strings"

	"sports-catalog/core/server"
	"sports-catalog/feature/selection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var selectionOwner string

// selectionCmd represents the selection command
var selectionCmd = &cobra.Command{
	Use:   "selection",
	Short: "Inspect or change the saved league selection",
}

var selectionGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the saved league selection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSelection(func(svc *selection.Service, owner string) error {
			sel, err := svc.Get(cmd.Context(), owner)
			if err != nil {
				return err
			}
			state := "saved"
			if !sel.Saved {
				state = "default"
			}
			fmt.Printf("%s (%s): %s\n", sel.Owner, state, strings.Join(sel.Leagues, ", "))
			return nil
		})
	},
}

var selectionSetCmd = &cobra.Command{
	Use:   "set <league> [league...]",
	Short: "Save the league selection",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSelection(func(svc *selection.Service, owner string) error {
			sel, err := svc.Set(cmd.Context(), owner, selection.UpdateRequest{Leagues: args})
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", sel.Owner, strings.Join(sel.Leagues, ", "))
			return nil
		})
	},
}

func withSelection(fn func(svc *selection.Service, owner string) error) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()

	store, err := selection.Open(rt.cfg.Selection)
	if err != nil {
		return fmt.Errorf("failed to open selection store: %w", err)
	}
	defer store.Close()

	svc := selection.NewService(store, rt.cfg.Catalog.Leagues(), rt.cfg.Selection.MaxLeagues, rt.log)
	owner := server.Config{}.Owner(selectionOwner)
	rt.log.Debug("Selection store opened", zap.String("path", rt.cfg.Selection.Path), zap.String("owner", owner))
	return fn(svc, owner)
}

func init() {
	RootCmd.AddCommand(selectionCmd)
	selectionCmd.AddCommand(selectionGetCmd, selectionSetCmd)
	selectionCmd.PersistentFlags().StringVar(&selectionOwner, "owner", server.DefaultOwner, "Owner of the selection")
}
