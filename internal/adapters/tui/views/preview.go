package views

import (
	"fmt"
	"strings"

	"filegen/internal/adapters/tui/styles"
	"filegen/internal/application"
	"filegen/internal/domain"
)

// RenderTree draws entries as a tree, directories first, marking paths in conflicts
func RenderTree(entries []domain.Entry, conflicts []string) string {
	marked := make(map[string]bool, len(conflicts))
	for _, c := range conflicts {
		marked[c] = true
	}

	var b strings.Builder
	renderNodes(&b, domain.BuildTree(entries), "", marked)
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []*domain.TreeNode, prefix string, marked map[string]bool) {
	for i, node := range nodes {
		connector, next := "├── ", "│   "
		if i == len(nodes)-1 {
			connector, next = "└── ", "    "
		}

		b.WriteString(styles.TreeBranch.Render(prefix + connector))
		b.WriteString(renderNodeName(node.Entry, marked[node.Entry.Path]))
		b.WriteString("\n")

		renderNodes(b, node.Children, prefix+next, marked)
	}
}

func renderNodeName(e domain.Entry, conflict bool) string {
	switch {
	case e.IsDir():
		return styles.NodeDirectory.Render(e.Name + "/")
	case conflict:
		return styles.NodeConflict.Render(e.Name + " (exists)")
	default:
		return styles.NodeFile.Render(e.Name)
	}
}

// RenderSummary renders the directory and file counts of entries
func RenderSummary(entries []domain.Entry) string {
	dirs, files := domain.CountKinds(entries)
	return RenderMuted(fmt.Sprintf("%d directories, %d files", dirs, files))
}

// RenderValidation lists validation errors and warnings
func RenderValidation(result *application.ValidationResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	for _, e := range result.Errors {
		b.WriteString(styles.ErrorMsg.Render("✗ " + e))
		b.WriteString("\n")
	}
	for _, w := range result.Warnings {
		b.WriteString(styles.WarningMsg.Render("! " + w))
		b.WriteString("\n")
	}
	if len(result.Conflicts) > 0 {
		b.WriteString(styles.WarningMsg.Render(fmt.Sprintf("! %d files already exist", len(result.Conflicts))))
		b.WriteString("\n")
	}
	if result.OK && b.Len() == 0 {
		b.WriteString(styles.Success.Render("✓ Structure is valid"))
		b.WriteString("\n")
	}
	return b.String()
}
