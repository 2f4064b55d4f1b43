package project

import (
	"fmt"
	"io"

	"github.com/spec-driven/specforge/internal/ui"
)

// PrintNextSteps writes the post-creation guidance for a project rooted at
// root, including the readiness hint for the chosen assistant.
func PrintNextSteps(w io.Writer, root string, tool AITool) {
	fmt.Fprintf(w, "\n%s Project created: %s/\n", ui.Ok("✓"), root)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  1. cd %s\n", root)
	fmt.Fprintln(w, "  2. Open specs/00-overview.md and flesh out your project description")
	fmt.Fprintln(w, "  3. Read specs/spec-format.md to understand how to write specs")
	fmt.Fprintln(w, "  4. Run 'git init' to start version control")
	fmt.Fprintln(w, "  5. Start a conversation with your AI assistant about requirements")
	fmt.Fprintln(w)

	if msg := tool.ReadyMessage(); msg != "" {
		fmt.Fprintf(w, "     %s\n\n", msg)
	}
}
