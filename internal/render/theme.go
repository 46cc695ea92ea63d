package render

import "resume-builder/internal/model"

// Palette carries the per-template accent colors. The exporter and the
// live templates read the same lookup so the two paths cannot drift.
type Palette struct {
	Primary   string
	Secondary string
}

var palettes = map[model.Template]Palette{
	model.TemplateClassic:  {Primary: "#000000", Secondary: "#555555"},
	model.TemplateModern:   {Primary: "#2563eb", Secondary: "#3b82f6"},
	model.TemplateCreative: {Primary: "#7c3aed", Secondary: "#8b5cf6"},
}

// PaletteFor maps a template to its accent colors, falling back to the
// classic neutral palette for unrecognized values.
func PaletteFor(t model.Template) Palette {
	return palettes[t.OrClassic()]
}
