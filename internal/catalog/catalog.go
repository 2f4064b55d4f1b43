package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// Data holds the template variables available to catalog entries.
type Data struct {
	Name        string // project name, e.g. "seismic-analysis"
	Description string // one-line project description
	Date        string // generation date, YYYY-MM-DD
}

// Render produces the final contents of a catalog entry. Entries with a
// .tmpl suffix are parsed and executed as Go templates against data;
// everything else is returned byte-for-byte.
func Render(entry string, data Data) ([]byte, error) {
	raw, err := fs.ReadFile(templateFS, path.Join("templates", entry))
	if err != nil {
		return nil, fmt.Errorf("template %q not found: %w", entry, err)
	}

	if !strings.HasSuffix(entry, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(entry).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", entry, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", entry, err)
	}
	return buf.Bytes(), nil
}

// Entries lists the catalog contents in lexical order.
func Entries() ([]string, error) {
	dirEntries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading template catalog: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
