package cli

import (
	"github.com/spf13/cobra"

	"filmlog/internal/ui"
)

var browseFrom string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.loadContent(browseFrom)
		if err != nil {
			return err
		}
		return ui.Run(a.ctx, a.bus, a.cfg, c, newSearchService(a.bus, a.cfg))
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseFrom, "from", "", "read an export directory instead of the database")
	rootCmd.Flags().StringVar(&browseFrom, "from", "", "read an export directory instead of the database")
}
