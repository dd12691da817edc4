package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/automatalab/automata/pkg/domain"
)

// Describe renders a machine's documentation page (label, pattern,
// authored notes) as terminal markdown.
func Describe(def *domain.Definition) (string, error) {
	var md strings.Builder
	title := def.Label
	if title == "" {
		title = def.Name
	}
	fmt.Fprintf(&md, "# %s\n\n", title)
	if def.Pattern != "" {
		fmt.Fprintf(&md, "Regular expression:\n\n```\n%s\n```\n\n", def.Pattern)
	}
	fmt.Fprintf(&md, "States: %d · Alphabet: {%s} · Start: %s · Accept: {%s}\n\n",
		len(def.States),
		strings.Join(def.Alphabet, ", "),
		def.Start,
		strings.Join(def.Accept, ", "),
	)
	if def.Notes != "" {
		md.WriteString(def.Notes)
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("init renderer: %w", err)
	}
	return r.Render(md.String())
}
