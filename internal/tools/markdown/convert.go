// Package markdown converts markdown into a styled, printable HTML document and
// renders that document to PDF.
package markdown

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const DefaultFilename = "document"

var ErrMarkdownRequired = errors.New("markdown content is required")

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Document is a complete HTML page ready to be printed.
type Document struct {
	Name string
	HTML string
}

// Filename is the name the rendered PDF is offered under.
func (d *Document) Filename() string {
	return d.Name + ".pdf"
}

// DataURL returns the HTML page as a base64 data URL.
func (d *Document) DataURL() string {
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(d.HTML))
}

func (d *Document) Size() int {
	return len(d.HTML)
}

// Convert turns markdown into a styled Document titled name. An empty name falls back
// to DefaultFilename.
func Convert(markdown, name string) (*Document, error) {
	if strings.TrimSpace(markdown) == "" {
		return nil, ErrMarkdownRequired
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultFilename
	}

	body, err := ToHTML(markdown)
	if err != nil {
		return nil, err
	}

	page, err := wrap(name, body)
	if err != nil {
		return nil, err
	}

	return &Document{Name: name, HTML: page}, nil
}

// ToHTML renders markdown as an HTML fragment.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	return buf.String(), nil
}

func wrap(title, body string) (string, error) {
	var buf bytes.Buffer

	err := pageTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body), //nolint:gosec // markdown output is the document itself
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; max-width: 800px; margin: 0 auto; padding: 2rem; color: #333; }
h1, h2, h3, h4, h5, h6 { color: #2c3e50; margin-top: 2rem; margin-bottom: 1rem; }
h1 { font-size: 2.5em; border-bottom: 3px solid #3498db; padding-bottom: 0.5rem; }
h2 { font-size: 2em; border-bottom: 2px solid #3498db; padding-bottom: 0.3rem; }
h3 { font-size: 1.5em; color: #3498db; }
p { margin-bottom: 1rem; text-align: justify; }
code { background-color: #f8f9fa; padding: 0.2rem 0.4rem; border-radius: 3px; font-family: 'Courier New', monospace; color: #e83e8c; }
pre { background-color: #f8f9fa; padding: 1rem; border-radius: 5px; overflow-x: auto; border-left: 4px solid #3498db; }
pre code { background-color: transparent; padding: 0; color: #333; }
blockquote { border-left: 4px solid #3498db; margin: 1rem 0; padding: 0.5rem 1rem; background-color: #f8f9fa; font-style: italic; }
ul, ol { margin-bottom: 1rem; padding-left: 2rem; }
li { margin-bottom: 0.5rem; }
table { width: 100%; border-collapse: collapse; margin-bottom: 1rem; }
th, td { border: 1px solid #ddd; padding: 0.75rem; text-align: left; }
th { background-color: #3498db; color: white; font-weight: bold; }
a { color: #3498db; text-decoration: none; }
img { max-width: 100%; height: auto; border-radius: 5px; }
.page-break { page-break-before: always; }
@media print { body { margin: 0; padding: 1cm; } }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))
