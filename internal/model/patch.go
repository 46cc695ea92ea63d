package model

// Typed partial-update structs. A nil field means "leave unchanged";
// merges are field-by-field, never through untyped maps.

type PersonalInfoPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	JobTitle *string `json:"jobTitle,omitempty"`
	Address  *string `json:"address,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	QRLink   *string `json:"qrLink,omitempty"`
	QRTitle  *string `json:"qrTitle,omitempty"`
}

func (p PersonalInfoPatch) ApplyTo(info *PersonalInfo) {
	setString(&info.Name, p.Name)
	setString(&info.Email, p.Email)
	setString(&info.Phone, p.Phone)
	setString(&info.JobTitle, p.JobTitle)
	setString(&info.Address, p.Address)
	setString(&info.Summary, p.Summary)
	setString(&info.QRLink, p.QRLink)
	setString(&info.QRTitle, p.QRTitle)
}

type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	IsPresent   *bool   `json:"isPresent,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p ExperiencePatch) ApplyTo(exp *Experience) {
	setString(&exp.Company, p.Company)
	setString(&exp.Position, p.Position)
	setString(&exp.StartDate, p.StartDate)
	setString(&exp.EndDate, p.EndDate)
	setBool(&exp.IsPresent, p.IsPresent)
	setString(&exp.Description, p.Description)
}

type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Field       *string `json:"field,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	IsPresent   *bool   `json:"isPresent,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (p EducationPatch) ApplyTo(edu *Education) {
	setString(&edu.Institution, p.Institution)
	setString(&edu.Degree, p.Degree)
	setString(&edu.Field, p.Field)
	setString(&edu.StartDate, p.StartDate)
	setString(&edu.EndDate, p.EndDate)
	setBool(&edu.IsPresent, p.IsPresent)
	setString(&edu.Description, p.Description)
}

type SkillPatch struct {
	Name  *string `json:"name,omitempty"`
	Level *int    `json:"level,omitempty"`
}

func (p SkillPatch) ApplyTo(s *Skill) {
	setString(&s.Name, p.Name)
	if p.Level != nil {
		s.Level = ClampLevel(*p.Level)
	}
}

type LanguageSkillPatch struct {
	Name        *string      `json:"name,omitempty"`
	Proficiency *Proficiency `json:"proficiency,omitempty"`
}

func (p LanguageSkillPatch) ApplyTo(l *LanguageSkill) {
	setString(&l.Name, p.Name)
	if p.Proficiency != nil {
		l.Proficiency = *p.Proficiency
	}
}

type SocialLinkPatch struct {
	Platform *string `json:"platform,omitempty"`
	URL      *string `json:"url,omitempty"`
}

func (p SocialLinkPatch) ApplyTo(s *SocialLink) {
	setString(&s.Platform, p.Platform)
	setString(&s.URL, p.URL)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
