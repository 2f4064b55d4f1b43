package project

// ProjectType identifies the kind of project being scaffolded.
type ProjectType string

const (
	DataPipeline  ProjectType = "Data pipeline"
	AnalysisTool  ProjectType = "Analysis tool"
	AlgorithmImpl ProjectType = "Algorithm implementation"
	General       ProjectType = "General"
)

// AllProjectTypes returns the selectable project types in menu order.
func AllProjectTypes() []ProjectType {
	return []ProjectType{DataPipeline, AnalysisTool, AlgorithmImpl, General}
}

// ParseProjectType converts a label to a ProjectType, returning false if invalid.
func ParseProjectType(s string) (ProjectType, bool) {
	switch s {
	case "Data pipeline":
		return DataPipeline, true
	case "Analysis tool":
		return AnalysisTool, true
	case "Algorithm implementation":
		return AlgorithmImpl, true
	case "General":
		return General, true
	default:
		return "", false
	}
}

// AITool identifies the user's primary AI coding assistant.
type AITool string

const (
	ClaudeCode AITool = "Claude Code"
	Cursor     AITool = "Cursor"
	Copilot    AITool = "GitHub Copilot"
	NoTool     AITool = "Other/None"
)

// AllAITools returns the selectable assistants in menu order.
func AllAITools() []AITool {
	return []AITool{ClaudeCode, Cursor, Copilot, NoTool}
}

// ParseAITool converts a label to an AITool, returning false if invalid.
func ParseAITool(s string) (AITool, bool) {
	switch s {
	case "Claude Code":
		return ClaudeCode, true
	case "Cursor":
		return Cursor, true
	case "GitHub Copilot":
		return Copilot, true
	case "Other/None":
		return NoTool, true
	default:
		return "", false
	}
}

// ConfigFile returns the assistant configuration path written into a new
// project, or "" when the tool needs none.
func (t AITool) ConfigFile() string {
	switch t {
	case ClaudeCode:
		return ".claude/CLAUDE.md"
	case Cursor:
		return ".cursorrules"
	case Copilot:
		return ".github/copilot-instructions.md"
	default:
		return ""
	}
}

// templateEntry returns the catalog entry backing the tool's config file.
func (t AITool) templateEntry() string {
	switch t {
	case ClaudeCode:
		return "claude.md.tmpl"
	case Cursor:
		return "cursorrules.tmpl"
	case Copilot:
		return "copilot-instructions.md.tmpl"
	default:
		return ""
	}
}

// ReadyMessage returns the post-creation hint for the tool's config file,
// or "" when the tool has none.
func (t AITool) ReadyMessage() string {
	switch t {
	case ClaudeCode:
		return "Your .claude/CLAUDE.md is ready — Claude Code will read it automatically."
	case Cursor:
		return "Your .cursorrules is ready — Cursor will read it automatically."
	case Copilot:
		return "Your .github/copilot-instructions.md is ready for Copilot."
	default:
		return ""
	}
}

// Inputs holds everything the wizard collects for one project.
type Inputs struct {
	Name        string
	Description string
	Type        ProjectType
	Tool        AITool
}
