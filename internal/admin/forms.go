package admin

import (
	"strings"

	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

// Form view-models hold list-valued fields as delimited text the way an
// editor presents them. The text<->list conversions live here as pure
// functions: technologies are comma-delimited, responsibilities and
// highlights are one per line. Both directions trim whitespace and drop
// empty entries while preserving order.

func SplitComma(s string) []string {
	return splitClean(s, ",")
}

func JoinComma(items []string) string {
	return strings.Join(items, ", ")
}

func SplitLines(s string) []string {
	return splitClean(s, "\n")
}

func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

func splitClean(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// optional maps an empty text field to an absent JSON value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func fromOptional(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

type ProfileForm struct {
	Name         string
	Title        string
	Headline     string
	About        string
	Email        string
	Phone        string
	Location     string
	LinkedIn     string
	GitHub       string
	ProfilePhoto string
	ResumeURL    string
}

func ProfileFormFrom(p portfolio.Profile) ProfileForm {
	return ProfileForm{
		Name:         p.Name,
		Title:        p.Title,
		Headline:     p.Headline,
		About:        p.About,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		LinkedIn:     p.LinkedIn,
		GitHub:       p.GitHub,
		ProfilePhoto: fromOptional(p.ProfilePhoto),
		ResumeURL:    fromOptional(p.ResumeURL),
	}
}

func (f ProfileForm) Payload() portfolio.ProfilePayload {
	return portfolio.ProfilePayload{
		Name:         f.Name,
		Title:        f.Title,
		Headline:     f.Headline,
		About:        f.About,
		Email:        f.Email,
		Phone:        f.Phone,
		Location:     f.Location,
		LinkedIn:     f.LinkedIn,
		GitHub:       f.GitHub,
		ProfilePhoto: optional(f.ProfilePhoto),
		ResumeURL:    optional(f.ResumeURL),
	}
}

type SkillForm struct {
	Name     string
	Category string
	Order    int
}

func SkillFormFrom(s portfolio.Skill) SkillForm {
	return SkillForm{Name: s.Name, Category: s.Category, Order: s.Order}
}

func (f SkillForm) Payload() portfolio.SkillPayload {
	return portfolio.SkillPayload{Name: f.Name, Category: f.Category, Order: f.Order}
}

type ProjectForm struct {
	Title            string
	ProblemStatement string
	Description      string
	Technologies     string // comma-delimited
	Role             string
	Outcome          string
	Status           string
	Visible          bool
	Order            int
	ImageURL         string
	ProjectURL       string
	GitHubURL        string
}

// NewProjectForm carries the create defaults: status Completed, visible.
func NewProjectForm() ProjectForm {
	return ProjectForm{Status: "Completed", Visible: true}
}

func ProjectFormFrom(p portfolio.Project) ProjectForm {
	return ProjectForm{
		Title:            p.Title,
		ProblemStatement: p.ProblemStatement,
		Description:      p.Description,
		Technologies:     JoinComma(p.Technologies),
		Role:             p.Role,
		Outcome:          p.Outcome,
		Status:           p.Status,
		Visible:          p.Visible,
		Order:            p.Order,
		ImageURL:         fromOptional(p.ImageURL),
		ProjectURL:       fromOptional(p.ProjectURL),
		GitHubURL:        fromOptional(p.GitHubURL),
	}
}

func (f ProjectForm) Payload() portfolio.ProjectPayload {
	return portfolio.ProjectPayload{
		Title:            f.Title,
		ProblemStatement: f.ProblemStatement,
		Description:      f.Description,
		Technologies:     SplitComma(f.Technologies),
		Role:             f.Role,
		Outcome:          f.Outcome,
		Status:           f.Status,
		Visible:          f.Visible,
		Order:            f.Order,
		ImageURL:         optional(f.ImageURL),
		ProjectURL:       optional(f.ProjectURL),
		GitHubURL:        optional(f.GitHubURL),
	}
}

type ExperienceForm struct {
	Title            string
	Company          string
	Location         string
	Period           string
	Responsibilities string // one per line
	Order            int
}

func ExperienceFormFrom(e portfolio.Experience) ExperienceForm {
	return ExperienceForm{
		Title:            e.Title,
		Company:          e.Company,
		Location:         e.Location,
		Period:           e.Period,
		Responsibilities: JoinLines(e.Responsibilities),
		Order:            e.Order,
	}
}

func (f ExperienceForm) Payload() portfolio.ExperiencePayload {
	return portfolio.ExperiencePayload{
		Title:            f.Title,
		Company:          f.Company,
		Location:         f.Location,
		Period:           f.Period,
		Responsibilities: SplitLines(f.Responsibilities),
		Order:            f.Order,
	}
}

type EducationForm struct {
	Degree       string
	Institution  string
	FieldOfStudy string
	Location     string
	Period       string
	Description  string
	Highlights   string // one per line
	Order        int
}

func EducationFormFrom(e portfolio.Education) EducationForm {
	return EducationForm{
		Degree:       e.Degree,
		Institution:  e.Institution,
		FieldOfStudy: e.FieldOfStudy,
		Location:     e.Location,
		Period:       e.Period,
		Description:  e.Description,
		Highlights:   JoinLines(e.Highlights),
		Order:        e.Order,
	}
}

func (f EducationForm) Payload() portfolio.EducationPayload {
	return portfolio.EducationPayload{
		Degree:       f.Degree,
		Institution:  f.Institution,
		FieldOfStudy: f.FieldOfStudy,
		Location:     f.Location,
		Period:       f.Period,
		Description:  f.Description,
		Highlights:   SplitLines(f.Highlights),
		Order:        f.Order,
	}
}

type CertificationForm struct {
	Name                string
	IssuingOrganization string
	Year                string
	CertificateURL      string
	Order               int
}

func CertificationFormFrom(c portfolio.Certification) CertificationForm {
	return CertificationForm{
		Name:                c.Name,
		IssuingOrganization: c.IssuingOrganization,
		Year:                c.Year,
		CertificateURL:      fromOptional(c.CertificateURL),
		Order:               c.Order,
	}
}

func (f CertificationForm) Payload() portfolio.CertificationPayload {
	return portfolio.CertificationPayload{
		Name:                f.Name,
		IssuingOrganization: f.IssuingOrganization,
		Year:                f.Year,
		CertificateURL:      optional(f.CertificateURL),
		Order:               f.Order,
	}
}
