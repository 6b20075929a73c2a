package vilviz

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dasdy/vilviz/db"
	"github.com/dasdy/vilviz/layout"
	"github.com/spf13/cobra"
)

// recentCmd groups the commands managing the recent files database.
var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage recently opened layouts",
}

var recentAddCmd = &cobra.Command{
	Use:              "add FILE...",
	Short:            "Remember VIL files",
	Args:             cobra.MinimumNArgs(1),
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, args []string) error {
		return withRecent(func(recent *db.RecentStore) error {
			for _, path := range args {
				cfg, err := layout.LoadFile(path)
				if err != nil {
					return fmt.Errorf("could not read %s: %w", path, err)
				}

				if _, err := layout.Validate(cfg); err != nil {
					return fmt.Errorf("refusing to remember %s: %w", path, err)
				}

				if err := remember(recent, path); err != nil {
					return err
				}

				slog.InfoContext(logCtx, "Remembered file", "path", path)
			}

			return nil
		})
	},
}

var recentListCmd = &cobra.Command{
	Use:              "list",
	Short:            "List remembered files, newest first",
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRecent(func(recent *db.RecentStore) error {
			for _, f := range recent.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", f.ID, f.Timestamp.Local().Format(time.DateTime), f.Name)
			}

			return nil
		})
	},
}

var recentRemoveCmd = &cobra.Command{
	Use:              "remove ID",
	Short:            "Forget a remembered file",
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: bindFlags,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		return withRecent(func(recent *db.RecentStore) error {
			if err := recent.Remove(id); err != nil {
				return err
			}

			if err := recent.Persist(); err != nil {
				return fmt.Errorf("could not save recent files: %w", err)
			}

			slog.InfoContext(logCtx, "Removed file", "id", id)

			return nil
		})
	},
}

// withRecent opens the database, loads the recent list and calls fn.
func withRecent(fn func(recent *db.RecentStore) error) error {
	storage, err := db.ConnectDB(storagePath)
	if err != nil {
		return fmt.Errorf("could not open %s as sqlite file: %w", storagePath, err)
	}
	defer storage.Close()

	recent := db.NewRecentStore(storage)
	if err := recent.LoadAll(); err != nil {
		return fmt.Errorf("could not load recent files: %w", err)
	}

	return fn(recent)
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.AddCommand(recentAddCmd, recentListCmd, recentRemoveCmd)

	recentCmd.PersistentFlags().StringVar(&storagePath, "db", "./vilviz.sqlite", "Path to the recent files database")
}
