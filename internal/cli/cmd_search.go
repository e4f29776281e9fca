package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/config"
	"filmlog/internal/eventbus"
	"filmlog/internal/logging"
	"filmlog/internal/searchindex"
	"filmlog/internal/ui/services/search"
)

var searchPages int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the site index and print the results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		svc := newSearchService(a.bus, a.cfg)
		defer func() {
			if err := svc.Destroy(context.Background()); err != nil {
				log := logging.Logger()
				log.Warn().Err(err).Msg("failed to release search index")
			}
		}()

		if err := svc.Search(a.ctx, strings.Join(args, " ")); err != nil {
			return err
		}
		for i := 1; i < searchPages && svc.State().CanLoadMore(); i++ {
			if err := svc.LoadMore(a.ctx); err != nil {
				return err
			}
		}
		printSearch(cmd.OutOrStdout(), svc.State(), svc.PageSize())
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchPages, "pages", 1, "number of result pages to load")
}

func newSearchService(bus eventbus.EventBus, cfg *config.Config) *search.Service {
	return search.NewService(searchindex.New(), bus, search.Options{
		Bundle:   cfg.Search.Bundle,
		Debounce: cfg.Search.Debounce.Duration,
		PageSize: cfg.Search.PageSize,
	})
}

func printSearch(w io.Writer, st search.State, pageSize int) {
	fmt.Fprintln(w, st.Summary())
	for _, doc := range st.Results {
		fmt.Fprintf(w, "  %s (%s)\n", doc.Title, doc.Kind)
		if doc.URL != "" {
			fmt.Fprintf(w, "    %s\n", doc.URL)
		}
	}
	if label := st.LoadMoreLabel(pageSize); label != "" {
		fmt.Fprintf(w, "%s, use --pages to see more\n", label)
	}
}
