package project

// FileSpec pairs a project-relative output path with the catalog entry that
// produces its contents. An empty Entry yields an empty marker file.
type FileSpec struct {
	Path  string
	Entry string
}

// Plan is the complete set of directories and files for one project,
// derived deterministically from the inputs.
type Plan struct {
	Dirs  []string
	Files []FileSpec
}

// NewPlan derives the layout for the given inputs. Directories and files
// appear in creation order.
func NewPlan(in Inputs) *Plan {
	dirs := []string{
		"specs/01-requirements",
		"specs/02-architecture",
		"specs/03-implementation",
		"specs/99-decisions",
		"src",
		"tests",
	}
	if in.Type == AlgorithmImpl {
		dirs = append(dirs, "specs/04-algorithms", "specs/05-validation")
	}

	files := []FileSpec{
		{Path: "specs/spec-format.md", Entry: "spec-format.md"},
		{Path: "specs/00-overview.md", Entry: "00-overview.md.tmpl"},
		{Path: "specs/01-requirements/functional.md", Entry: "functional.md"},
		{Path: "specs/99-decisions/adr-000-template.md", Entry: "adr-000-template.md"},
	}

	if in.Type == DataPipeline {
		files = append(files, FileSpec{Path: "specs/02-architecture/data-flow.md", Entry: "data-flow.md"})
	}
	if in.Type == AlgorithmImpl {
		files = append(files,
			FileSpec{Path: "specs/04-algorithms/algorithm-template.md", Entry: "algorithm-template.md"},
			FileSpec{Path: "specs/05-validation/validation-plan.md", Entry: "validation-plan.md"},
		)
	}

	files = append(files,
		FileSpec{Path: "README.md", Entry: "README.md.tmpl"},
		FileSpec{Path: "CONTRIBUTING.md", Entry: "CONTRIBUTING.md.tmpl"},
	)

	if cfg := in.Tool.ConfigFile(); cfg != "" {
		files = append(files, FileSpec{Path: cfg, Entry: in.Tool.templateEntry()})
	}

	files = append(files,
		FileSpec{Path: "src/.gitkeep"},
		FileSpec{Path: "tests/.gitkeep"},
	)

	return &Plan{Dirs: dirs, Files: files}
}
