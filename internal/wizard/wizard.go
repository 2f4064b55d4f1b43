package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spec-driven/specforge/internal/project"
	"github.com/spec-driven/specforge/internal/ui"
)

// DefaultDescription is offered when no preference overrides it.
const DefaultDescription = "A spec-driven scientific project"

// Defaults carries preference-provided prompt defaults.
type Defaults struct {
	Description string
}

// Collect walks the user through the prompt session on r/w and returns the
// gathered inputs. Invalid answers re-prompt indefinitely; a read failure
// on an exhausted stream surfaces as an error.
func Collect(r io.Reader, w io.Writer, d Defaults) (*project.Inputs, error) {
	reader := bufio.NewReader(r)

	fmt.Fprintf(w, "\n%s\n\n", ui.Title("=== Spec-Driven Project Scaffolder ==="))

	name, err := promptLine(reader, w, "Project name (e.g., seismic-analysis)", "")
	if err != nil {
		return nil, err
	}
	for name == "" {
		fmt.Fprintln(w, "Project name is required.")
		name, err = promptLine(reader, w, "Project name", "")
		if err != nil {
			return nil, err
		}
	}

	defaultDesc := d.Description
	if defaultDesc == "" {
		defaultDesc = DefaultDescription
	}
	description, err := promptLine(reader, w, "One-line description", defaultDesc)
	if err != nil {
		return nil, err
	}

	types := project.AllProjectTypes()
	typeIdx, err := selectFromList(reader, w, "Project type:", typeLabels(types))
	if err != nil {
		return nil, err
	}

	tools := project.AllAITools()
	toolIdx, err := selectFromList(reader, w, "Primary AI coding assistant:", toolLabels(tools))
	if err != nil {
		return nil, err
	}

	return &project.Inputs{
		Name:        name,
		Description: description,
		Type:        types[typeIdx],
		Tool:        tools[toolIdx],
	}, nil
}

// promptLine asks a free-text question, returning def when the trimmed
// response is empty.
func promptLine(reader *bufio.Reader, w io.Writer, question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(w, "%s: ", question)
	}

	resp, err := readLine(reader)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp == "" {
		return def, nil
	}
	return resp, nil
}

// selectFromList presents a numbered list and returns the selected index.
// Non-numeric or out-of-range answers print guidance and re-prompt.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item)
	}

	for {
		fmt.Fprint(w, "Enter number: ")
		line, err := readLine(reader)
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}

		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(w, "Please enter a number between 1 and %d\n", len(items))
	}
}

// readLine reads one trimmed line, tolerating a final line without a
// trailing newline.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func typeLabels(types []project.ProjectType) []string {
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return labels
}

func toolLabels(tools []project.AITool) []string {
	labels := make([]string, len(tools))
	for i, t := range tools {
		labels[i] = string(t)
	}
	return labels
}
