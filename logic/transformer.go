package logic

import (
	"diasposter/dal"
	"diasposter/shared"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
	"regexp"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_transformer.go -package mocks diasposter/logic ITransformer

// PreparedPostHook gets the last word on a transformed body.
type PreparedPostHook func(item *dal.Item, body string) string

type ITransformer interface {
	Transform(item *dal.Item, dir *dal.CrosspostDirective) (string, error)
}

var (
	reLinkHref = regexp.MustCompile(`<a\s.*?href=["'](.*?)["'].*?>`)
	reLinkText = regexp.MustCompile(`<a\s.*?>(.*?)</a>`)
	reImgTag   = regexp.MustCompile(`(?is)</?img[^>]*>`)
)

var footerPlaceholders = []string{"%permalink%", "%the_title%", "%blog_url%", "%blog_name%"}

type transformer struct {
	cfg       *shared.Config
	renderer  IRenderer
	converter *md.Converter
	strict    *bluemonday.Policy
	hook      PreparedPostHook
}

func NewTransformer(cfg *shared.Config, renderer IRenderer) ITransformer {
	return NewTransformerWithHook(cfg, renderer, nil)
}

func NewTransformerWithHook(cfg *shared.Config, renderer IRenderer, hook PreparedPostHook) ITransformer {
	if hook == nil {
		hook = func(_ *dal.Item, body string) string { return body }
	}
	return &transformer{
		cfg:       cfg,
		renderer:  renderer,
		converter: md.NewConverter("", true, nil),
		strict:    bluemonday.StrictPolicy(),
		hook:      hook,
	}
}

// Transform builds the Markdown body of the status message for an item.
func (t *transformer) Transform(item *dal.Item, dir *dal.CrosspostDirective) (string, error) {

	var src string
	if t.useExcerpt(dir) {
		src = t.excerpt(item)
	} else {
		src = t.prepareByFormat(item)
	}

	body, err := t.converter.ConvertString(src)
	if err != nil {
		return "", err
	}

	if t.cfg.Crosspost.AdditionalMarkup != "" {
		body += "\n\n" + t.replacePlaceholders(t.cfg.Crosspost.AdditionalMarkup, item)
	}

	tagsLine := ""
	if !t.cfg.Crosspost.ExcludeTags && len(item.Tags) != 0 {
		tagsLine = "#" + strings.TrimSpace(strings.Join(item.Tags, " #"))
		body += "\n\n" + tagsLine
	}

	var extraTags []string
	for _, tag := range t.cfg.Crosspost.AdditionalTags {
		if tag = shared.NormalizeTag(tag); tag != "" {
			extraTags = append(extraTags, "#"+tag)
		}
	}
	if len(extraTags) != 0 {
		if tagsLine == "" {
			body += "\n\n"
		} else {
			body += " "
		}
		body += strings.Join(extraTags, " ")
	}

	return t.hook(item, body), nil
}

func (t *transformer) useExcerpt(dir *dal.CrosspostDirective) bool {
	if dir != nil && dir.UseExcerpt != nil {
		return *dir.UseExcerpt
	}
	return t.cfg.Crosspost.UseExcerpt
}

// excerpt is the item's own excerpt, or one trimmed from the rendered body.
func (t *transformer) excerpt(item *dal.Item) string {
	if item.Excerpt != "" {
		return item.Excerpt
	}
	text := t.renderer.Render(item.Body)
	text = t.renderer.StripShortcodes(text)
	text = t.renderer.Render(text)
	text = strings.ReplaceAll(text, "]]>", "]]&gt;")
	text = t.strict.Sanitize(text)
	return shared.TrimWords(text, t.cfg.Crosspost.ExcerptWords)
}

// prepareByFormat returns the HTML to convert, with the title as a heading.
func (t *transformer) prepareByFormat(item *dal.Item) string {
	title := item.Title
	body := t.renderer.Render(item.Body)

	switch item.Format {
	case dal.FormatImage, dal.FormatGallery:
		// Images travel as photo attachments
		body = reImgTag.ReplaceAllString(body, "")
	case dal.FormatLink:
		href := firstGroup(reLinkHref, body)
		text := firstGroup(reLinkText, body)
		if title == "" {
			title = t.strict.Sanitize(text)
		}
		title = `<a href="` + href + `">` + title + `</a>`
	}

	if title != "" {
		body = "<h1>" + title + "</h1>\n\n" + body
	}
	return body
}

func firstGroup(re *regexp.Regexp, str string) string {
	groups := re.FindStringSubmatch(str)
	if groups == nil {
		return ""
	}
	return groups[1]
}

// Unknown placeholders are left as they are.
func (t *transformer) replacePlaceholders(str string, item *dal.Item) string {
	for _, ph := range footerPlaceholders {
		var val string
		switch ph {
		case "%permalink%":
			val = item.Permalink
		case "%the_title%":
			val = item.Title
		case "%blog_url%":
			val = t.cfg.Blog.Url
		case "%blog_name%":
			val = t.cfg.Blog.Name
		}
		str = strings.ReplaceAll(str, ph, val)
	}
	return str
}
