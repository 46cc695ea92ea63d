package model

// Go models for the resume aggregate. The JSON shape matches the
// snapshot format validated by resume.schema.json.

// Template names a visual grammar. Renderers treat anything outside the
// three known values as classic.
type Template string

const (
	TemplateClassic  Template = "classic"
	TemplateModern   Template = "modern"
	TemplateCreative Template = "creative"
)

func (t Template) Known() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateCreative:
		return true
	}
	return false
}

// OrClassic resolves the render-time fallback for unrecognized values.
func (t Template) OrClassic() Template {
	if t.Known() {
		return t
	}
	return TemplateClassic
}

// Proficiency is a closed enumeration; raw tokens are never shown to the
// user, only their localized labels.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyElementary   Proficiency = "elementary"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyFluent       Proficiency = "fluent"
	ProficiencyNative       Proficiency = "native"
)

func (p Proficiency) Known() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyElementary, ProficiencyIntermediate,
		ProficiencyAdvanced, ProficiencyFluent, ProficiencyNative:
		return true
	}
	return false
}

// OrIntermediate degrades hand-edited snapshot values to a displayable
// label instead of leaking the raw token.
func (p Proficiency) OrIntermediate() Proficiency {
	if p.Known() {
		return p
	}
	return ProficiencyIntermediate
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	JobTitle string `json:"jobTitle"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
	QRLink   string `json:"qrLink"`
	QRTitle  string `json:"qrTitle"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsPresent   bool   `json:"isPresent"`
	Description string `json:"description"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsPresent   bool   `json:"isPresent"`
	Description string `json:"description"`
}

// Skill level is an integer in [1,5], rendered as a proportional fill.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type LanguageSkill struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Resume is the aggregate root. It is always fully defined: absent data
// is an empty string or empty list, never a nil sub-object.
type Resume struct {
	PersonalInfo PersonalInfo    `json:"personalInfo"`
	Experience   []Experience    `json:"experience"`
	Education    []Education     `json:"education"`
	Skills       []Skill         `json:"skills"`
	Languages    []LanguageSkill `json:"languages"`
	SocialMedia  []SocialLink    `json:"socialMedia"`
	Template     Template        `json:"template"`
}

// DefaultResume returns the empty aggregate used at first start and
// after a reset.
func DefaultResume() Resume {
	return Resume{
		PersonalInfo: PersonalInfo{},
		Experience:   []Experience{},
		Education:    []Education{},
		Skills:       []Skill{},
		Languages:    []LanguageSkill{},
		SocialMedia:  []SocialLink{},
		Template:     TemplateClassic,
	}
}

// Clone returns a deep copy; snapshots handed out by the store must not
// alias its internal state.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]Experience{}, r.Experience...)
	out.Education = append([]Education{}, r.Education...)
	out.Skills = append([]Skill{}, r.Skills...)
	out.Languages = append([]LanguageSkill{}, r.Languages...)
	out.SocialMedia = append([]SocialLink{}, r.SocialMedia...)
	return out
}

// Normalize repairs a snapshot loaded from storage so the aggregate
// invariants hold: nil lists become empty and enum values degrade to
// their defined fallbacks.
func (r Resume) Normalize() Resume {
	out := r.Clone()
	if out.Experience == nil {
		out.Experience = []Experience{}
	}
	if out.Education == nil {
		out.Education = []Education{}
	}
	if out.Skills == nil {
		out.Skills = []Skill{}
	}
	if out.Languages == nil {
		out.Languages = []LanguageSkill{}
	}
	if out.SocialMedia == nil {
		out.SocialMedia = []SocialLink{}
	}
	out.Template = out.Template.OrClassic()
	return out
}

// ClampLevel bounds a skill level into [1,5].
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}
