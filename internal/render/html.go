// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// pageTmpl is the printed page skeleton. The stylesheet mirrors the brief's
// established look: centered bold title, grey italic date line, bold section
// headings, justified 10pt body text.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #2a2a2a; }
  .title { font-size: 18pt; font-weight: bold; text-align: center; color: #1a1a1a; margin-bottom: 6pt; }
  .date { font-size: 10pt; text-align: center; color: #666666; margin-bottom: 20pt; }
  h2.section { font-size: 14pt; font-weight: bold; color: #1a1a1a; margin-top: 12pt; margin-bottom: 8pt; }
  .content { font-size: 10pt; text-align: justify; line-height: 14pt; margin-bottom: 11pt; }
  .content p { margin: 0 0 8pt 0; }
  .error { color: #8a1f1f; font-style: italic; }
</style>
</head>
<body>
<div class="title">{{.Title}}</div>
<div class="date"><i>{{.Date}}</i></div>
{{range .Sections}}<h2 class="section">{{.Heading}}</h2>
<div class="{{.Class}}">
{{.Body}}
</div>
{{end}}</body>
</html>
`))

type pageData struct {
	Title    string
	Date     string
	Sections []sectionData
}

type sectionData struct {
	Heading string
	Class   string
	Body    template.HTML
}

// documentHTML converts the assembled document into the HTML page handed to
// the print engine. Block bodies are markdown in the retrieval service's
// convention (bold story titles, inline emphasis); goldmark converts each one.
func documentHTML(doc types.BriefDocument) (string, error) {
	data := pageData{
		Title: doc.Title,
		Date:  doc.GeneratedAt.Format("January 2, 2006"),
	}

	for _, block := range doc.Blocks {
		var body bytes.Buffer
		if err := goldmark.Convert([]byte(block.Body), &body); err != nil {
			return "", fmt.Errorf("converting section %s body: %w", block.SectionID, err)
		}
		data.Sections = append(data.Sections, sectionData{
			Heading: block.Heading,
			Class:   blockClass(block),
			Body:    template.HTML(body.String()),
		})
	}

	var page bytes.Buffer
	if err := pageTmpl.Execute(&page, data); err != nil {
		return "", fmt.Errorf("rendering page template: %w", err)
	}
	return page.String(), nil
}

// blockClass maps a block's style tag to its CSS class; error-notice blocks
// get the error style stacked on top.
func blockClass(block types.FormattedBlock) string {
	class := string(types.StyleContent)
	if block.StyleTag != "" {
		class = string(block.StyleTag)
	}
	if !block.OK {
		class += " error"
	}
	return class
}
