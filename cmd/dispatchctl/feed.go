package main

import (
	"context"
	"crew-dispatch/domain"
	"crew-dispatch/repositories"
	"crew-dispatch/services"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newFeedCmd() *cobra.Command {
	var (
		dbPath string
		userID string
		limit  int
		skip   int
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the activity feed of a user straight from the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openReadOnly(dbPath)
			if err != nil {
				return fmt.Errorf("error while opening badger: %w", err)
			}
			defer db.Close()

			log := logs.GetLoggerFromLevel(slog.LevelWarn)
			feed := services.NewActivityService(log,
				repositories.NewActivityRepository(db),
				repositories.NewUserRepository(db),
				repositories.NewOpportunityRepository(db),
				repositories.NewEventRepository(db))
			entries, err := feed.GetUserFeed(context.Background(), domain.UserID(userID), limit, skip)
			if err != nil {
				return err
			}
			renderFeed(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the badger directory (defaults to BADGER_FILEPATH)")
	cmd.Flags().StringVar(&userID, "user", "", "owner of the feed")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of rows")
	cmd.Flags().IntVar(&skip, "skip", 0, "rows to skip")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// openReadOnly lets the inspection run next to a live server.
func openReadOnly(path string) (*badger.DB, error) {
	if path == "" {
		path = envOr("BADGER_FILEPATH", "")
	}
	if path == "" {
		return nil, fmt.Errorf("no badger path: use --db or BADGER_FILEPATH")
	}
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)
	return badger.Open(opts)
}

func renderFeed(w io.Writer, entries []domain.FeedEntry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Type", "Read", "Created", "Message", "Link"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range entries {
		f := domain.FormatActivity(e)
		table.Append([]string{
			f.ID.String(),
			string(f.Type),
			strconv.FormatBool(f.Read),
			f.CreatedAt.Format("2006-01-02 15:04:05"),
			f.Message,
			f.Link,
		})
	}
	table.Render()
}
