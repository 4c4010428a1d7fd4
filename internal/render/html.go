package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/mrsinham/physioreport/internal/document"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html.tmpl"))

func writeHTML(w io.Writer, doc document.Document) error {
	if err := reportTemplate.ExecuteTemplate(w, "report.html.tmpl", doc); err != nil {
		return fmt.Errorf("executing html template: %w", err)
	}
	return nil
}
