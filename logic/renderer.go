package logic

import (
	"regexp"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_renderer.go -package mocks diasposter/logic IRenderer

// IRenderer expands an item's stored content into final HTML.
type IRenderer interface {
	Render(content string) string
	StripShortcodes(content string) string
}

var reShortcodeOpen = regexp.MustCompile(`\[([a-zA-Z][\w-]*)(?:\s[^\[\]]*)?/?\]`)

type renderer struct{}

// NewRenderer returns a renderer for content that arrives already rendered from the host.
func NewRenderer() IRenderer {
	return &renderer{}
}

func (r *renderer) Render(content string) string {
	return content
}

// StripShortcodes removes [name ...] tags; for [name]...[/name] pairs the enclosed text goes too.
func (r *renderer) StripShortcodes(content string) string {
	var sb strings.Builder
	rest := content
	for {
		loc := reShortcodeOpen.FindStringSubmatchIndex(rest)
		if loc == nil {
			sb.WriteString(rest)
			break
		}
		sb.WriteString(rest[:loc[0]])
		name := rest[loc[2]:loc[3]]
		rest = rest[loc[1]:]
		closing := "[/" + name + "]"
		if ix := strings.Index(rest, closing); ix != -1 {
			rest = rest[ix+len(closing):]
		}
	}
	return sb.String()
}
