package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spec-driven/specforge/internal/branding"
	"github.com/spec-driven/specforge/internal/catalog"
	"github.com/spec-driven/specforge/internal/config"
	"github.com/spec-driven/specforge/internal/ui"
	"github.com/spf13/cobra"
)

var (
	checkPrefs     bool
	checkVersion   bool
	checkTemplates bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkPrefs, "check-prefs", false, "Validate the preferences file")
	doctorCmd.Flags().BoolVar(&checkVersion, "check-version", false, "Check the build against min_version in preferences")
	doctorCmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Verify embedded templates render")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for SpecForge installation",
	Long:  `Run diagnostic checks on your SpecForge installation and preferences.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		anyFlag := checkPrefs || checkVersion || checkTemplates

		// If no specific flag, run all checks.
		if !anyFlag {
			runPrefsCheck(out)
			runVersionCheck(out)
			runTemplatesCheck(out)
			return nil
		}

		if checkPrefs {
			runPrefsCheck(out)
		}
		if checkVersion {
			runVersionCheck(out)
		}
		if checkTemplates {
			runTemplatesCheck(out)
		}
		return nil
	},
}

func runPrefsCheck(w io.Writer) {
	fmt.Fprintln(w, "Preferences check:")

	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [MISS] no preferences file at %s %s\n", path, ui.Dim("(defaults in effect)"))
		return
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s is valid\n", path)
		return
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
}

func runVersionCheck(w io.Writer) {
	fmt.Fprintln(w, "Version check:")

	min := config.MinVersion()
	if min == "" {
		fmt.Fprintf(w, "  [ OK ] no minimum version set in preferences\n")
		return
	}

	older, err := config.IsOlderThanMinimum(buildVersion, min)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	if older {
		fmt.Fprintf(w, "  [WARN] %s %s is older than minimum version %s\n",
			branding.CLIName(), buildVersion, min)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s %s satisfies minimum version %s\n",
		branding.CLIName(), buildVersion, min)
}

func runTemplatesCheck(w io.Writer) {
	fmt.Fprintln(w, "Template check:")

	entries, err := catalog.Entries()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] listing templates: %v\n", err)
		return
	}

	probe := catalog.Data{Name: "sample", Description: "sample", Date: "1970-01-01"}
	bad := 0
	for _, entry := range entries {
		if _, err := catalog.Render(entry, probe); err != nil {
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", entry, err)
			bad++
		}
	}
	if bad == 0 {
		fmt.Fprintf(w, "  [ OK ] %d templates embedded and renderable\n", len(entries))
	}
}
