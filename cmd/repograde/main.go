package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/repograde/internal"
	"github.com/rios0rios0/repograde/internal/domain/entities"
)

type globalFlags struct {
	configPath string
	verbose    bool
}

// parseGlobalFlags reads the persistent flags ahead of Cobra, since settings
// are resolved while the command tree is being built.
func parseGlobalFlags(args []string) globalFlags {
	var flags globalFlags
	set := pflag.NewFlagSet("global", pflag.ContinueOnError)
	set.ParseErrorsWhitelist.UnknownFlags = true
	set.Usage = func() {}
	set.StringVarP(&flags.configPath, "config", "c", "", "")
	set.BoolVarP(&flags.verbose, "verbose", "v", false, "")
	set.BoolP("help", "h", false, "")
	_ = set.Parse(args)
	return flags
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repograde",
		Short: "Score the engineering quality of GitHub repositories",
		Long: `Score a GitHub repository from 0 to 100 using simple heuristics
(README, .gitignore, tests, dependency manifest, commit activity and
description) and suggest a roadmap of improvements.

Usage modes:
  repograde serve                          Start the HTTP API
  repograde analyze https://github.com/o/r Score one repository
  repograde analyze .                      Score the current clone's origin
  repograde history                        List the most recent analyses`,
		SilenceUsage: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if binder, ok := ctrl.(entities.FlagBinder); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	flags := parseGlobalFlags(os.Args[1:])
	if os.Getenv("DEBUG") == "true" || flags.verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext, err := injectAppContext(flags.configPath)
	if err != nil {
		logger.Fatalf("Failed to initialize 'repograde': %s", err)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext)

	if execErr := cobraRoot.Execute(); execErr != nil {
		logger.Fatalf("Error executing 'repograde': %s", execErr)
	}
}
