package cmd

import (
	"fmt"
	"strings"

	"sports-catalog/core/aggregate"
	"sports-catalog/core/server"
	"sports-catalog/feature/catalog"
	"sports-catalog/feature/selection"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	browseLeagues []string
	browsePages   int
	browseOwner   string
	browseEnrich  bool
	browseJSON    bool
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:       "browse <teams|players|matches>",
	Short:     "Browse the merged catalog from the terminal",
	Long:      `Resets a browsing session for the selected leagues and loads pages until the requested count is reached or the catalog is exhausted.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: catalog.Kinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		kind := args[0]

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.Close()
		logg := rt.log

		var sel catalog.SelectionReader
		if store, err := selection.Open(rt.cfg.Selection); err != nil {
			logg.Warn("Selection store unavailable, using defaults", zap.Error(err))
		} else {
			defer store.Close()
			sel = store
		}

		svc := catalog.NewService(rt.client, sel, nil, rt.cfg.Catalog, logg)
		defer svc.Close()

		owner := server.Config{}.Owner(browseOwner)
		reset, err := svc.Reset(ctx, owner, kind, browseLeagues)
		if err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		logg.Info("Session reset",
			zap.String("kind", kind),
			zap.Strings("leagues", reset.Leagues),
			zap.Int("teams", reset.Teams),
		)

		var page catalog.Page
		for i := 0; i < browsePages; i++ {
			res, err := svc.More(ctx, owner, kind)
			if err != nil {
				return fmt.Errorf("load more failed: %w", err)
			}
			page = res.Page
			logg.Debug("Page loaded",
				zap.Stringer("change", res.Change.Kind),
				zap.Int("count", res.Change.Count),
				zap.Int("visible", page.Count),
			)
			if res.Change.Kind == aggregate.Exhausted {
				break
			}
		}

		if browseEnrich {
			n, err := svc.Enrich(ctx, owner, kind)
			if err != nil {
				return fmt.Errorf("enrich failed: %w", err)
			}
			logg.Info("Enrichment finished", zap.Int("updated", n))
			if page, err = svc.Page(owner, kind); err != nil {
				return err
			}
		}

		if browseJSON {
			data, err := json.MarshalIndent(page, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal page: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("\n=== %s (%d of %d merged) ===\n", strings.ToUpper(kind), page.Count, page.Total)
		printItems(page.Items)
		if page.Exhausted {
			fmt.Println("(end of catalog)")
		}
		return nil
	},
}

func printItems(items any) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return
	}
	for i, row := range rows {
		fmt.Printf("%3d. %s\n", i+1, describeRow(row))
	}
}

// describeRow picks the display fields of a team, player or match row.
func describeRow(row map[string]any) string {
	str := func(key string) string {
		if v, ok := row[key].(string); ok {
			return v
		}
		return ""
	}
	switch {
	case str("event") != "":
		return fmt.Sprintf("%s  %s", str("date"), str("event"))
	case str("team") != "":
		return fmt.Sprintf("%s (%s) %s", str("name"), str("team"), str("position"))
	default:
		return fmt.Sprintf("%s [%s]", str("name"), str("league"))
	}
}

func init() {
	RootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringSliceVarP(&browseLeagues, "leagues", "l", nil, "Leagues to browse (defaults to the saved selection)")
	browseCmd.Flags().IntVarP(&browsePages, "pages", "p", 1, "Number of load-more requests to issue")
	browseCmd.Flags().StringVar(&browseOwner, "owner", server.DefaultOwner, "Session owner whose saved selection is used")
	browseCmd.Flags().BoolVar(&browseEnrich, "enrich", false, "Resolve missing team badges before printing")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "Print the page as JSON")
}
