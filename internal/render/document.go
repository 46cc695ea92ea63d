// Package render is the single content-selection layer behind the three
// visual templates and the PDF exporter. Both paths consume the
// Document built here, so section presence, date formatting, labels and
// the scannable code are decided exactly once.
package render

import (
	"html/template"
	"strings"
	"time"
	"unicode/utf8"

	"resume-builder/internal/model"
	"resume-builder/pkg/i18n"
	"resume-builder/pkg/qrcode"
)

// qrImageSize is the pixel size of the embedded scannable code.
const qrImageSize = 96

type Field struct {
	Label string
	Value string
}

type Link struct {
	Platform string
	URL      string
}

type Entry struct {
	Title    string
	Subtitle string
	Dates    string
	Body     string
}

// Meter is a skill rendered as a proportional fill: Percent for bar
// widths, Stars for textual templates.
type Meter struct {
	Name    string
	Level   int
	Percent int
	Stars   string
}

type QRBlock struct {
	Title string
	// ImageURI is a data: URI; typed so html/template does not strip it
	// from src attributes.
	ImageURI template.URL
}

// Labels holds the localized section headings.
type Labels struct {
	Summary       string
	Experience    string
	Education     string
	Skills        string
	Languages     string
	SocialMedia   string
	ContactInfo   string
	GeneratedWith string
}

// Document is the template-independent view of a resume. Empty slices
// and strings mean the section is omitted from output entirely.
type Document struct {
	Lang     string
	RTL      bool
	Template model.Template
	Palette  Palette

	Name     string
	JobTitle string
	Initials string
	Summary  string

	Contact    []Field
	Social     []Link
	Experience []Entry
	Education  []Entry
	Skills     []Meter
	Languages  []Field

	Labels      Labels
	QR          QRBlock
	GeneratedAt string
}

// BuildDocument resolves a resume snapshot into renderable content for
// the given locale. The template value is normalized here, so every
// consumer sees the classic fallback applied.
func BuildDocument(r model.Resume, tr *i18n.Translator) (Document, error) {
	r = r.Normalize()
	info := r.PersonalInfo

	doc := Document{
		Lang:     tr.Lang(),
		RTL:      tr.RTL(),
		Template: r.Template,
		Palette:  PaletteFor(r.Template),
		Name:     info.Name,
		JobTitle: info.JobTitle,
		Initials: initials(info.Name),
		Summary:  info.Summary,
		Labels: Labels{
			Summary:       tr.T("form.summary"),
			Experience:    tr.T("form.experience"),
			Education:     tr.T("form.education"),
			Skills:        tr.T("form.skills"),
			Languages:     tr.T("form.languages"),
			SocialMedia:   tr.T("form.socialMedia"),
			ContactInfo:   tr.T("form.contactInfo"),
			GeneratedWith: tr.T("pdf.generatedWith"),
		},
		GeneratedAt: time.Now().Format("2006-01-02"),
	}

	if info.Email != "" {
		doc.Contact = append(doc.Contact, Field{Label: tr.T("form.email"), Value: info.Email})
	}
	if info.Phone != "" {
		doc.Contact = append(doc.Contact, Field{Label: tr.T("form.phone"), Value: info.Phone})
	}
	if info.Address != "" {
		doc.Contact = append(doc.Contact, Field{Label: tr.T("form.address"), Value: info.Address})
	}

	for _, s := range r.SocialMedia {
		doc.Social = append(doc.Social, Link{Platform: s.Platform, URL: s.URL})
	}

	present := tr.T("form.present")
	for _, exp := range r.Experience {
		doc.Experience = append(doc.Experience, Entry{
			Title:    exp.Position,
			Subtitle: exp.Company,
			Dates:    DateRange(exp.StartDate, exp.EndDate, exp.IsPresent, present),
			Body:     exp.Description,
		})
	}
	for _, edu := range r.Education {
		title := edu.Degree
		if edu.Field != "" {
			if title != "" {
				title += " - "
			}
			title += edu.Field
		}
		doc.Education = append(doc.Education, Entry{
			Title:    title,
			Subtitle: edu.Institution,
			Dates:    DateRange(edu.StartDate, edu.EndDate, edu.IsPresent, present),
			Body:     edu.Description,
		})
	}

	for _, sk := range r.Skills {
		level := model.ClampLevel(sk.Level)
		doc.Skills = append(doc.Skills, Meter{
			Name:    sk.Name,
			Level:   level,
			Percent: level * 100 / 5,
			Stars:   strings.Repeat("★", level) + strings.Repeat("☆", 5-level),
		})
	}
	for _, lang := range r.Languages {
		doc.Languages = append(doc.Languages, Field{
			Label: lang.Name,
			Value: tr.T("proficiencyLevels." + string(lang.Proficiency.OrIntermediate())),
		})
	}

	qrBlock, err := buildQR(info, tr)
	if err != nil {
		return Document{}, err
	}
	doc.QR = qrBlock

	return doc, nil
}

// buildQR encodes the custom link when one is set, otherwise a contact
// card synthesized from the personal info.
func buildQR(info model.PersonalInfo, tr *i18n.Translator) (QRBlock, error) {
	payload := info.QRLink
	title := info.QRTitle
	if payload != "" {
		if title == "" {
			title = tr.T("qrCode.defaultTitle")
		}
	} else {
		payload = qrcode.ContactCard(info.Name, info.Phone, info.Email, info.Address)
		title = tr.T("pdf.scanForContact")
	}

	png, err := qrcode.EncodeDefault(payload, qrImageSize)
	if err != nil {
		return QRBlock{}, err
	}
	return QRBlock{Title: title, ImageURI: template.URL(qrcode.DataURI(png))}, nil
}

// VisibleSections lists the localized headings of the sections that
// will appear in output. All three templates and the exporter share
// this selection, which is the consistency contract the tests check.
func (d Document) VisibleSections() []string {
	var out []string
	if d.Summary != "" {
		out = append(out, d.Labels.Summary)
	}
	if len(d.Experience) > 0 {
		out = append(out, d.Labels.Experience)
	}
	if len(d.Education) > 0 {
		out = append(out, d.Labels.Education)
	}
	if len(d.Skills) > 0 {
		out = append(out, d.Labels.Skills)
	}
	if len(d.Languages) > 0 {
		out = append(out, d.Labels.Languages)
	}
	if len(d.Social) > 0 {
		out = append(out, d.Labels.SocialMedia)
	}
	return out
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}
