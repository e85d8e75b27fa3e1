// Package svg prepares raw SVG icons for embedding in JSX markup.
package svg

import (
	"regexp"
	"strings"
)

var (
	sizeAttrPattern  = regexp.MustCompile(`\s(width|height)="[^"]*"`)
	classAttrPattern = regexp.MustCompile(`\sclass="[^"]*"`)
	svgTagPattern    = regexp.MustCompile(`<svg\b`)
)

// injectedAttrs pins icon sizing and marks the icon as decorative; the
// renderer owns presentation, so any author-supplied sizing is stripped first.
const injectedAttrs = `<svg width="20" height="20" className="agent-icon" aria-hidden="true" focusable="false"`

// attrReplacements maps hyphenated SVG presentation attributes to their
// camelCase JSX spellings. Fixed allowlist: data-* and aria-* attributes
// must keep their hyphens.
var attrReplacements = [][2]string{
	{"fill-rule", "fillRule"},
	{"clip-rule", "clipRule"},
	{"clip-path", "clipPath"},
	{"stroke-width", "strokeWidth"},
	{"stroke-linecap", "strokeLinecap"},
	{"stroke-linejoin", "strokeLinejoin"},
	{"stroke-miterlimit", "strokeMiterlimit"},
	{"stroke-dasharray", "strokeDasharray"},
	{"stroke-dashoffset", "strokeDashoffset"},
	{"stroke-opacity", "strokeOpacity"},
	{"fill-opacity", "fillOpacity"},
	{"stop-color", "stopColor"},
	{"stop-opacity", "stopOpacity"},
	{"vector-effect", "vectorEffect"},
}

// Sanitize rewrites raw SVG markup for JSX embedding: author sizing and
// classes are removed, fixed presentation attributes are injected on the
// top-level tag, and hyphenated presentation attributes are camelCased.
// Input that fails to match the patterns passes through unchanged.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = sizeAttrPattern.ReplaceAllString(s, "")
	s = classAttrPattern.ReplaceAllString(s, "")
	s = replaceFirst(s, svgTagPattern, injectedAttrs)
	for _, r := range attrReplacements {
		s = strings.ReplaceAll(s, r[0]+"=", r[1]+"=")
	}
	return s
}

func replaceFirst(s string, pattern *regexp.Regexp, repl string) string {
	loc := pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
