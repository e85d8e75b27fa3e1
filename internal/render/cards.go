// Package render assembles the MDX card grid for the registry docs page.
package render

import (
	"sort"
	"strings"

	"github.com/soyeahso/registrygen/internal/registry"
)

// EscapeHTML escapes the characters that may not appear raw in MDX
// attribute values or text.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// EscapeText escapes free text and collapses newlines, which would break
// the surrounding MDX structure.
func EscapeText(s string) string {
	return strings.ReplaceAll(EscapeHTML(s), "\n", " ")
}

// Cards renders one <Card> per agent inside a <CardGroup>, sorted by
// case-insensitive name. icons maps agent id to sanitized SVG markup; an
// absent or empty entry renders the card without an icon block.
func Cards(agents []registry.Agent, icons map[string]string) string {
	sorted := make([]registry.Agent, len(agents))
	copy(sorted, agents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	var b strings.Builder
	b.WriteString("<CardGroup cols={3}>")

	for _, agent := range sorted {
		b.WriteString("\n  <Card")
		b.WriteString("\n    title=\"" + EscapeHTML(agent.DisplayName()) + "\"")
		if agent.Repository != "" {
			b.WriteString("\n    href=\"" + EscapeHTML(agent.Repository) + "\"")
		}
		if icon := icons[agent.ID]; icon != "" {
			b.WriteString("\n    icon={")
			for _, line := range strings.Split(icon, "\n") {
				b.WriteString("\n      " + line)
			}
			b.WriteString("\n    }")
		}
		b.WriteString("\n  >")
		b.WriteString("\n    <p class=\"text-xs mt-3\">")
		b.WriteString("\n      <code>" + EscapeText(versionText(agent.Version)) + "</code>")
		b.WriteString("\n    </p>")
		b.WriteString("\n  </Card>")
	}

	b.WriteString("\n</CardGroup>")
	return b.String()
}

// versionText substitutes the placeholder label for absent or dashed versions.
func versionText(version string) string {
	if version == "" || version == "-" {
		return "version unknown"
	}
	return version
}
