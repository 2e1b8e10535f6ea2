package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leolwelter/2eTools-scraper/internal/config"
	"github.com/leolwelter/2eTools-scraper/internal/database"
	"github.com/leolwelter/2eTools-scraper/internal/model"
)

// NewDBCmd creates the db command.
func NewDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db [collection] [name]",
		Short: "Inspect the collections in the database",
		Long: `Db reads the local 2eTools database without changing it.

Without arguments it lists every collection with its size and the run that
wrote it. With a collection it prints the number of documents. With a
collection and a name it prints the matching documents as JSON lines.

Examples:
  # List collections
  2etools db

  # Count creatures
  2etools db creatures

  # Show the Goblin Warrior document
  2etools db creatures "Goblin Warrior"`,
		Args: cobra.MaximumNArgs(2),
		RunE: runDBCmd,
	}

	cmd.Flags().String("db", "",
		"Database directory (default: XDG data directory)")

	return cmd
}

func runDBCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.ApplyEnv()
	if cmd.Flags().Changed("db") {
		dir, err := cmd.Flags().GetString("db")
		if err != nil {
			return err
		}
		cfg.DBDir = dir
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	store, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	switch len(args) {
	case 0:
		return listCollections(ctx, store, out)
	case 1:
		n, err := store.Count(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
		return nil
	default:
		return findDocuments(ctx, store, out, args[0], args[1])
	}
}

func listCollections(ctx context.Context, store *database.Store, out io.Writer) error {
	infos, err := store.Collections(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(out, "No collections written yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Collection", "Documents", "Written", "Run ID"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.Name, info.Count, info.WrittenAt.Format(timeLayout), info.RunID})
	}
	t.Render()
	return nil
}

func findDocuments(ctx context.Context, store *database.Store, out io.Writer, collection, name string) error {
	docs, err := store.Find(ctx, collection, name)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no document named %q in %s (index field %q)", name, collection, model.IndexField)
	}
	for _, doc := range docs {
		fmt.Fprintf(out, "%s\n", doc.Body)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05"
