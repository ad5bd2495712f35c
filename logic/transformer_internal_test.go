package logic

import (
	"diasposter/dal"
	"diasposter/shared"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPrepareByFormat(t *testing.T) {
	cfg := &shared.Config{}
	tr := NewTransformer(cfg, NewRenderer()).(*transformer)

	link := &dal.Item{Title: "Title", Format: dal.FormatLink, Body: `<p><a class="x" href="https://x.test">go</a></p>`}
	assert.Equal(t, "<h1><a href=\"https://x.test\">Title</a></h1>\n\n"+link.Body, tr.prepareByFormat(link))

	untitled := &dal.Item{Format: dal.FormatLink, Body: `<a href="https://x.test"><b>Go</b> there</a>`}
	assert.Equal(t, "<h1><a href=\"https://x.test\">Go there</a></h1>\n\n"+untitled.Body, tr.prepareByFormat(untitled))

	image := &dal.Item{Title: "Pic", Format: dal.FormatImage, Body: `<p><img src="a.jpg" alt="">Caption</p>`}
	assert.Equal(t, "<h1>Pic</h1>\n\n<p>Caption</p>", tr.prepareByFormat(image))

	aside := &dal.Item{Format: dal.FormatAside, Body: "<p>Just a thought</p>"}
	assert.Equal(t, "<p>Just a thought</p>", tr.prepareByFormat(aside))
}
