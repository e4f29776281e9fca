package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlog/internal/content"
	"filmlog/internal/logging"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import a content export into the database",
	Long:  "Import reads titles.json, watchlist.json, cast-and-crew.json and collections.json from dir (default: content_dir from the config) and replaces the database contents.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		dir := a.cfg.ContentDir
		if len(args) == 1 {
			dir = args[0]
		}

		export, err := content.LoadExport(dir)
		if err != nil {
			return err
		}

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Import(a.ctx, export); err != nil {
			return err
		}

		log := logging.Logger()
		log.Info().Str("dir", dir).Int("titles", len(export.Titles)).Msg("content imported")

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d titles, %d watchlist titles, %d cast and crew, %d collections into %s\n",
			len(export.Titles), len(export.Watchlist), len(export.CastAndCrew), len(export.Collections), a.cfg.Database)
		return nil
	},
}
