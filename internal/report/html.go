package report

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTML renders a Markdown report as an HTML fragment for the report viewer.
func (g *Generator) HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
