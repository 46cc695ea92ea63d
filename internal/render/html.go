package render

import (
	"bytes"
	"embed"
	"html/template"

	"resume-builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Document
	// Print switches on the fixed-page A4 stylesheet for PDF output.
	Print bool
}

// RenderHTML renders a Document through its template's visual grammar.
// The same markup serves the live preview and, with print enabled, the
// exporter's input.
func RenderHTML(doc Document, print bool) (string, error) {
	name := string(doc.Template.OrClassic()) + ".html"
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, pageData{Document: doc, Print: print}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPlaceholder renders the localized "fill in name and job title"
// page shown while the aggregate is too empty for a meaningful preview.
func RenderPlaceholder(title, message string, rtl bool) string {
	dir := "ltr"
	if rtl {
		dir = "rtl"
	}
	var buf bytes.Buffer
	data := struct {
		Dir, Title, Message string
	}{dir, title, message}
	if err := pageTemplates.ExecuteTemplate(&buf, "placeholder.html", data); err != nil {
		// the placeholder template is embedded; a failure here is a bug
		return "<html><body>" + template.HTMLEscapeString(message) + "</body></html>"
	}
	return buf.String()
}

// TemplateNames lists the known template identifiers in display order.
func TemplateNames() []model.Template {
	return []model.Template{model.TemplateClassic, model.TemplateModern, model.TemplateCreative}
}
