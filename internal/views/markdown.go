package views

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// newMarkdown returns the renderer for post bodies. Only paragraphs are
// recognised: blank lines split paragraphs, single newlines become line
// breaks, and every other character is shown as sent.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithParser(parser.NewParser(
			parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 100)),
			parser.WithInlineParsers(),
		)),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

// renderBody converts a post body to HTML, falling back to escaped text.
func renderBody(md goldmark.Markdown, body string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(body) + "</p>")
	}
	return template.HTML(buf.String())
}
