package http

import (
	certificationUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/certification"
	educationUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/education"
	experienceUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/experience"
	profileUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/skill"
	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

// Auth DTOs

type AdminDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToAdminDTO(a *admin.Admin) AdminDTO {
	return AdminDTO{
		ID:       a.ID.String(),
		Username: a.Username,
		Email:    a.Email,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type ChangeUsernameRequest struct {
	NewUsername     string `json:"new_username" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
}

type ChangeEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Profile DTOs

type UpdateProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Headline     string  `json:"headline"`
	About        string  `json:"about" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	LinkedIn     string  `json:"linkedin"`
	GitHub       string  `json:"github"`
	ProfilePhoto *string `json:"profile_photo"`
	ResumeURL    *string `json:"resume_url"`
}

func (r *UpdateProfileRequest) ToInput() profileUC.UpdateProfileInput {
	return profileUC.UpdateProfileInput{
		Name:         r.Name,
		Title:        r.Title,
		Headline:     r.Headline,
		About:        r.About,
		Email:        r.Email,
		Phone:        r.Phone,
		Location:     r.Location,
		LinkedIn:     r.LinkedIn,
		GitHub:       r.GitHub,
		ProfilePhoto: r.ProfilePhoto,
		ResumeURL:    r.ResumeURL,
	}
}

// Skill DTOs

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Order    int    `json:"order"`
}

func (r *SkillRequest) ToInput() skillUC.SkillInput {
	return skillUC.SkillInput{Name: r.Name, Category: r.Category, Order: r.Order}
}

// Project DTOs

type ProjectRequest struct {
	Title            string   `json:"title" binding:"required"`
	ProblemStatement string   `json:"problem_statement"`
	Description      string   `json:"description" binding:"required"`
	Technologies     []string `json:"technologies"`
	Role             string   `json:"role"`
	Outcome          string   `json:"outcome"`
	Status           string   `json:"status"`
	Visible          *bool    `json:"visible"`
	Order            int      `json:"order"`
	ImageURL         *string  `json:"image_url"`
	ProjectURL       *string  `json:"project_url"`
	GitHubURL        *string  `json:"github_url"`
}

// visibleOrDefault keeps new projects public unless the admin opts out.
func (r *ProjectRequest) visibleOrDefault() bool {
	if r.Visible == nil {
		return true
	}
	return *r.Visible
}

func (r *ProjectRequest) ToCreateInput() projectUC.CreateProjectInput {
	return projectUC.CreateProjectInput{
		Title:            r.Title,
		ProblemStatement: r.ProblemStatement,
		Description:      r.Description,
		Technologies:     r.Technologies,
		Role:             r.Role,
		Outcome:          r.Outcome,
		Status:           project.Status(r.Status),
		Visible:          r.visibleOrDefault(),
		Order:            r.Order,
		ImageURL:         r.ImageURL,
		ProjectURL:       r.ProjectURL,
		GitHubURL:        r.GitHubURL,
	}
}

type VisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// Experience DTOs

type ExperienceRequest struct {
	Title            string   `json:"title" binding:"required"`
	Company          string   `json:"company" binding:"required"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
	Order            int      `json:"order"`
}

func (r *ExperienceRequest) ToInput() experienceUC.ExperienceInput {
	return experienceUC.ExperienceInput{
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Period:           r.Period,
		Responsibilities: r.Responsibilities,
		Order:            r.Order,
	}
}

// Education DTOs

type EducationRequest struct {
	Degree       string   `json:"degree" binding:"required"`
	Institution  string   `json:"institution" binding:"required"`
	FieldOfStudy string   `json:"field_of_study"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Order        int      `json:"order"`
}

func (r *EducationRequest) ToInput() educationUC.EducationInput {
	return educationUC.EducationInput{
		Degree:       r.Degree,
		Institution:  r.Institution,
		FieldOfStudy: r.FieldOfStudy,
		Location:     r.Location,
		Period:       r.Period,
		Description:  r.Description,
		Highlights:   r.Highlights,
		Order:        r.Order,
	}
}

// Certification DTOs

type CertificationRequest struct {
	Name                string  `json:"name" binding:"required"`
	IssuingOrganization string  `json:"issuing_organization"`
	Year                string  `json:"year" binding:"required"`
	CertificateURL      *string `json:"certificate_url"`
	Order               int     `json:"order"`
}

func (r *CertificationRequest) ToInput() certificationUC.CertificationInput {
	return certificationUC.CertificationInput{
		Name:                r.Name,
		IssuingOrganization: r.IssuingOrganization,
		Year:                r.Year,
		CertificateURL:      r.CertificateURL,
		Order:               r.Order,
	}
}

// Message DTOs

type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
