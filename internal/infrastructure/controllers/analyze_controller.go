package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repograde/internal/domain/commands"
	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// AnalyzeController handles the "analyze" subcommand.
type AnalyzeController struct {
	command commands.Analyze
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze) *AnalyzeController {
	return &AnalyzeController{command: command}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze <url|path>",
		Short: "Score a single repository",
		Long: `Fetch a GitHub repository, score it and print the result.

The argument is either a GitHub URL (https://github.com/owner/repo,
git@github.com:owner/repo.git) or a path to a local clone whose origin
remote points at GitHub.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute runs one analysis and prints it.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	opts := commands.AnalyzeOptions{URL: args[0]}
	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		opts = commands.AnalyzeOptions{LocalPath: args[0]}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analysis, err := it.command.Execute(ctx, opts)
	if err != nil && !errors.Is(err, commands.ErrHistoryWriteFailed) {
		return err
	}
	if err != nil {
		logger.Warnf("Analysis was not saved to history: %v", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeIndentedJSON(out, analysis)
	}
	printAnalysis(out, analysis)
	return nil
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the analysis as JSON")
}

func printAnalysis(out io.Writer, analysis *entities.Analysis) {
	_, _ = fmt.Fprintf(out, "Repository: %s\n", analysis.RepoName)
	_, _ = fmt.Fprintf(out, "Score:      %d/100\n", analysis.Score)
	_, _ = fmt.Fprintf(out, "Summary:    %s\n", analysis.Summary)
	if len(analysis.Roadmap) == 0 {
		_, _ = fmt.Fprintln(out, "Roadmap:    nothing to improve")
		return
	}
	_, _ = fmt.Fprintln(out, "Roadmap:")
	for i, item := range analysis.Roadmap {
		_, _ = fmt.Fprintf(out, "  %d. %s\n", i+1, item)
	}
}

func writeIndentedJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
