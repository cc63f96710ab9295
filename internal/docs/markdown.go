package docs

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders GitHub Flavored Markdown. Raw HTML in the source is omitted by
// goldmark's default policy, so the output is safe to inject as template.HTML.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderMarkdown converts markdown text to HTML for direct template injection.
func RenderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		// Conversion never fails for plain text input, but a document should
		// still be readable if it does.
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}
