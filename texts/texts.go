package texts

import (
	"embed"
	"html"
	"path"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_texts.go -package mocks diasposter/texts ITexts

//go:embed snippets
var fs embed.FS

// Snippet IDs
const (
	NoticeCrossposted     = "notice_crossposted.html"
	NoticeSyncFailed      = "notice_sync_failed.txt"
	NoticeSyncTimeout     = "notice_sync_timeout.txt"
	NoticeDeleteFailed    = "notice_delete_failed.txt"
	NoticeReconcileFailed = "notice_reconcile_failed.txt"
	NotifyModerator       = "notify_moderator.txt"
	NotifyAuthor          = "notify_author.txt"
)

type ITexts interface {
	Get(id string) string
	WithVals(id string, vals map[string]string) string
}

func NewTexts() ITexts {
	return &texts{}
}

type texts struct {
}

func (t *texts) Get(id string) string {
	bytes, err := fs.ReadFile(path.Join("snippets", id))
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(bytes), "\n")
}

// WithVals substitutes {{name}} placeholders in a single pass, so values are never expanded themselves.
// Values are HTML-escaped in .html snippets.
func (t *texts) WithVals(id string, vals map[string]string) string {
	isHtml := path.Ext(id) == ".html"
	pairs := make([]string, 0, 2*len(vals))
	for ph, val := range vals {
		if isHtml {
			val = html.EscapeString(val)
		}
		pairs = append(pairs, "{{"+ph+"}}", val)
	}
	return strings.NewReplacer(pairs...).Replace(t.Get(id))
}
