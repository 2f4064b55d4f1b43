package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spec-driven/specforge/internal/branding"
	"github.com/spec-driven/specforge/internal/config"
	"github.com/spec-driven/specforge/internal/project"
	"github.com/spec-driven/specforge/internal/ui"
	"github.com/spec-driven/specforge/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` walks you through a short interview and materializes a
spec-driven project skeleton: a specs/ tree with templates for the overview,
functional requirements, ADRs, and validation plans, plus configuration for
your AI coding assistant.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		ui.SetEnabled(config.ColorEnabled())

		// Doctor reports preference problems as findings; version stays quiet.
		name := cmd.Name()
		if name == "doctor" || name == "version" {
			return
		}
		printPreflightWarnings(os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		defer signal.Stop(sigCh)
		go func() {
			<-sigCh
			fmt.Fprint(cmd.OutOrStdout(), "\n\nCancelled.\n")
			os.Exit(0)
		}()

		return scaffoldProject(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// scaffoldProject runs the interview, materializes the project tree under
// the current directory, and prints the next-steps summary.
func scaffoldProject(in io.Reader, out io.Writer) error {
	inputs, err := wizard.Collect(in, out, wizard.Defaults{Description: config.DescriptionDefault()})
	if err != nil {
		return err
	}

	result, err := project.Create(*inputs, ".")
	if err != nil {
		return err
	}

	project.PrintNextSteps(out, result.Root, inputs.Tool)
	return nil
}

// printPreflightWarnings surfaces preference problems without blocking the
// wizard. A missing preferences file is not a problem.
func printPreflightWarnings(w io.Writer) {
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		return
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", ui.Warn("Warning:"), err)
		return
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "%s preferences: %s\n", ui.Warn("Warning:"), issue)
	}

	min := config.MinVersion()
	if min == "" {
		return
	}
	older, err := config.IsOlderThanMinimum(buildVersion, min)
	if err != nil {
		fmt.Fprintf(w, "%s preferences: %v\n", ui.Warn("Warning:"), err)
		return
	}
	if older {
		fmt.Fprintf(w, "%s %s %s is older than minimum version %s set in preferences\n",
			ui.Warn("Warning:"), branding.CLIName(), buildVersion, min)
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
