package controllers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repograde/internal/domain/commands"
	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// HistoryController handles the "history" subcommand.
type HistoryController struct {
	command commands.History
}

// NewHistoryController creates a new HistoryController.
func NewHistoryController(command commands.History) *HistoryController {
	return &HistoryController{command: command}
}

// GetBind returns the Cobra command metadata for the history controller.
func (it *HistoryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "history",
		Short: "List the most recent analyses",
		Long: `List recorded analyses, newest first.

History lives in PostgreSQL when storage.database_url (or DATABASE_URL)
is set. Otherwise it is kept in memory and only covers the current process.`,
		Args: cobra.NoArgs,
	}
}

// Execute prints the recent analyses.
func (it *HistoryController) Execute(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := it.command.Execute(ctx, commands.HistoryOptions{Limit: limit})
	if err != nil {
		return err
	}
	if records == nil {
		records = []entities.Analysis{}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeIndentedJSON(out, records)
	}
	printHistory(out, records)
	return nil
}

// AddFlags adds the history-specific flags to the given Cobra command.
func (it *HistoryController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "n", 0, "Number of records to show (default: history.limit)")
	cmd.Flags().Bool("json", false, "Print the records as JSON")
}

func printHistory(out io.Writer, records []entities.Analysis) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, "No analyses recorded yet.")
		return
	}

	nameWidth := len("REPOSITORY")
	for _, record := range records {
		nameWidth = max(nameWidth, len(record.RepoName))
	}

	_, _ = fmt.Fprintf(out, "%-*s  %5s  %s\n", nameWidth, "REPOSITORY", "SCORE", "ANALYZED AT")
	for _, record := range records {
		_, _ = fmt.Fprintf(out, "%-*s  %5d  %s\n",
			nameWidth, record.RepoName, record.Score, record.CreatedAt.Format(time.RFC3339))
	}
}
