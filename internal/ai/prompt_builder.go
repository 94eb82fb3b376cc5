package ai

import "strings"

// BuildDocPrompt builds the per-file documentation prompt.
func BuildDocPrompt(path string, code string, related []string) string {
	var b strings.Builder

	b.WriteString("You are a senior software architect and technical writer.\n")
	b.WriteString("Generate professional documentation.\n\n")

	b.WriteString("# File\n")
	b.WriteString(path)
	b.WriteString("\n\n")

	b.WriteString("# Related Modules\n")
	b.WriteString("List of source files that this file imports or depends on:\n")
	if len(related) == 0 {
		b.WriteString("None detected\n")
	} else {
		for _, p := range related {
			b.WriteString("- ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("# Source Code\n")
	b.WriteString(code)
	b.WriteString("\n\n")

	b.WriteString("# Documentation Requirements (IMPORTANT)\n")
	b.WriteString("Write extremely high-quality documentation using the following sections:\n\n")
	b.WriteString("## Overview\n")
	b.WriteString("A concise overview of what this module does and why it exists.\n\n")
	b.WriteString("## Key Concepts\n")
	b.WriteString("Summaries of important ideas, algorithms, or patterns used in this module.\n\n")
	b.WriteString("## Main Classes & Functions\n")
	b.WriteString("Describe each important class or function:\n")
	b.WriteString("- Purpose\n")
	b.WriteString("- Parameters\n")
	b.WriteString("- Return values\n")
	b.WriteString("- Behavior details\n")
	b.WriteString("- Side effects\n\n")
	b.WriteString("## Module Relationships\n")
	b.WriteString("Explain how this file interacts with the modules listed above.\n")

	return b.String()
}
