package texts

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestWithValsEscapesHtml(t *testing.T) {
	txt := NewTexts()
	res := txt.WithVals(NoticeCrossposted, map[string]string{"url": "http://pod.example/posts/1?a=1&b=2"})
	assert.Equal(t, `Post crossposted. <a href="http://pod.example/posts/1?a=1&amp;b=2">View post on Diaspora*</a>`, res)
}

func TestWithValsPlainText(t *testing.T) {
	txt := NewTexts()
	res := txt.WithVals(NoticeSyncFailed, map[string]string{"title": "A & B", "error": "boom"})
	assert.Equal(t, `Crossposting "A & B" to Diaspora* failed: boom`, res)
}

func TestWithValsDoesNotExpandValues(t *testing.T) {
	txt := NewTexts()
	vals := map[string]string{
		"title":     "Trail",
		"permalink": "https://blog.example/p/1",
		"author":    "{{email}}",
		"ip":        "192.0.2.10",
		"email":     "jane@pod.example",
		"url":       "https://pod.example/people/abc",
		"content":   "my ip is {{ip}} and mail {{email}}",
	}
	for i := 0; i < 20; i++ {
		res := txt.WithVals(NotifyModerator, vals)
		assert.Contains(t, res, "Author: {{email}} (IP address: 192.0.2.10)")
		assert.Contains(t, res, "Email: jane@pod.example")
		assert.True(t, strings.HasSuffix(res, "my ip is {{ip}} and mail {{email}}"), res)
	}
}

func TestAllSnippetsExist(t *testing.T) {
	txt := NewTexts()
	for _, id := range []string{NoticeCrossposted, NoticeSyncFailed, NoticeSyncTimeout, NoticeDeleteFailed,
		NoticeReconcileFailed, NotifyModerator, NotifyAuthor} {
		assert.NotEmpty(t, txt.Get(id), id)
	}
	assert.Empty(t, txt.Get("missing.txt"))
}
