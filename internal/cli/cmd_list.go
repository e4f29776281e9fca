package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"filmlog/internal/ui"
	"filmlog/internal/ui/lists"
	"filmlog/internal/ui/logic"
	"filmlog/internal/ui/services/query"
	"filmlog/internal/ui/state"
)

var (
	listSort    string
	listFilters []string
	listAll     bool
	listFrom    string
)

var listCmd = &cobra.Command{
	Use:   "list <reviews|watchlist|cast-and-crew|collections>",
	Short: "Print a list, sorted, filtered and grouped",
	Long: `Print one list the way the site shows it.

Filters are key=value pairs. Ranges use from..to, multi-selects take
comma-separated options:

  filmlog list reviews --sort grade-desc --filter genres=Horror,Drama --filter releaseYear=1930..1939`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.loadContent(listFrom)
		if err != nil {
			return err
		}

		var view ui.ListView
		for _, l := range ui.NewLists(c, a.bus, a.cfg.Lists.PageSize) {
			if l.Name() == args[0] {
				view = l
			}
		}
		if view == nil {
			return fmt.Errorf("unknown list %q", args[0])
		}

		if err := applyListOptions(view, listSort, listFilters, listAll); err != nil {
			return err
		}
		printList(cmd.OutOrStdout(), view)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort value, e.g. title-asc or release-date-desc")
	listCmd.Flags().StringArrayVar(&listFilters, "filter", nil, "filter as key=value (repeatable)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "print every item instead of the first page")
	listCmd.Flags().StringVar(&listFrom, "from", "", "read an export directory instead of the database")
}

// applyListOptions sorts, filters and pages view as the flags ask
func applyListOptions(view ui.ListView, sort string, filters []string, all bool) error {
	if sort != "" {
		if !hasSort(view, logic.SortValue(sort)) {
			return fmt.Errorf("list %s cannot be sorted by %q", view.Name(), sort)
		}
		view.Dispatch(state.SortAction{Value: logic.SortValue(sort)})
	}

	for _, f := range filters {
		key, raw, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q, want key=value", f)
		}
		value, err := parseFilterValue(view, logic.FilterKey(key), raw)
		if err != nil {
			return err
		}
		view.Dispatch(state.PendingFilterChangedAction{Key: logic.FilterKey(key), Value: value})
	}
	if len(filters) > 0 {
		view.Dispatch(state.ApplyPendingFiltersAction{})
	}

	if all {
		view.ShowAll()
	}
	return nil
}

func hasSort(view ui.ListView, value logic.SortValue) bool {
	for _, o := range view.SortOptions() {
		if o.Value == value {
			return true
		}
	}
	return false
}

// parseFilterValue reads raw as the value type of key's control
func parseFilterValue(view ui.ListView, key logic.FilterKey, raw string) (logic.FilterValue, error) {
	kind, ok := view.ControlKind(key)
	if !ok {
		return nil, fmt.Errorf("list %s has no filter %q", view.Name(), key)
	}
	switch kind {
	case lists.ControlRange:
		from, to, _ := strings.Cut(raw, "..")
		return logic.Range{From: from, To: to}, nil
	case lists.ControlMultiSelect:
		var options logic.Options
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				options = append(options, o)
			}
		}
		return options, nil
	case lists.ControlChoice:
		return logic.Choice(raw), nil
	default:
		return logic.Text(raw), nil
	}
}

func printList(w io.Writer, view ui.ListView) {
	rows := view.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(w, view.EmptyMessage())
		return
	}
	for _, row := range rows {
		switch row.Kind {
		case query.RowGroup:
			fmt.Fprintf(w, "%s (%d)\n", row.Group, row.Count)
		case query.RowItem:
			indent := ""
			if row.Group != "" {
				indent = "  "
			}
			line := indent + row.Item.Label
			if row.Item.Badge != "" {
				line += " [" + row.Item.Badge + "]"
			}
			if row.Item.Detail != "" {
				line += "  " + row.Item.Detail
			}
			fmt.Fprintln(w, line)
		case query.RowShowMore:
			fmt.Fprintf(w, "... %s, use --all to see every item\n", row.Item.Label)
		}
	}
	fmt.Fprintln(w, view.Summary())
}
