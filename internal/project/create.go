package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spec-driven/specforge/internal/catalog"
)

// Result records what Create wrote to disk. Dirs and Files are
// project-relative, in creation order.
type Result struct {
	Root  string
	Dirs  []string
	Files []string
}

// Create materializes the project for in beneath parentDir. The project
// root is parentDir/<name> and must not exist yet; nothing is written when
// it does.
func Create(in Inputs, parentDir string) (*Result, error) {
	root := filepath.Join(parentDir, in.Name)

	if _, err := os.Stat(root); err == nil {
		return nil, fmt.Errorf("directory %q already exists", in.Name)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}

	plan := NewPlan(in)
	data := catalog.Data{
		Name:        in.Name,
		Description: in.Description,
		Date:        time.Now().Format("2006-01-02"),
	}

	result := &Result{Root: root}

	for _, dir := range plan.Dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		result.Dirs = append(result.Dirs, dir)
	}

	for _, f := range plan.Files {
		var content []byte
		if f.Entry != "" {
			var err error
			content, err = catalog.Render(f.Entry, data)
			if err != nil {
				return nil, err
			}
		}

		outPath := filepath.Join(root, f.Path)
		// Assistant config files live in directories outside the base plan
		// (.claude/, .github/); create parents as needed.
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}
