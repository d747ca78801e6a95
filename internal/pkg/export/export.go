// Package export wraps pre-rendered report content in the parish letterhead
// and produces a Word-compatible HTML document. It carries no business
// logic: callers format money and dates before handing content over.
package export

import (
	"bytes"
	"html/template"
	"strings"
)

const ContentType = "application/msword"

var docTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>{{.Title}}</title>
    <style>
      body { font-family: 'Times New Roman', Times, serif; margin: 40px; }
      h1 { font-size: 24px; text-align: center; }
      h2 { font-size: 20px; border-bottom: 1px solid #000; padding-bottom: 5px; margin-top: 20px; }
      table { width: 100%; border-collapse: collapse; margin-top: 15px; }
      th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
      th { background-color: #f2f2f2; }
      p { margin: 5px 0; }
      .header { text-align: center; margin-bottom: 20px; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>Parroquia San Isidro Labrador</h1>
      <h2>{{.Title}}</h2>
    </div>
    {{.Body}}
  </body>
</html>
`))

// Render produces the downloadable document. Body must already be trusted,
// fully rendered HTML.
func Render(title string, body template.HTML) ([]byte, error) {
	var buf bytes.Buffer
	err := docTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: body})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName derives the attachment name the browser saves the document under.
func FileName(title string) string {
	return strings.ReplaceAll(title, " ", "_") + ".doc"
}
