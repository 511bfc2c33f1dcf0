package portfolio

import "time"

// Wire types mirror the server's JSON. IDs are opaque server-assigned
// strings, the client never generates them.

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Profile struct {
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Headline     string    `json:"headline"`
	About        string    `json:"about"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	LinkedIn     string    `json:"linkedin"`
	GitHub       string    `json:"github"`
	ProfilePhoto *string   `json:"profile_photo"`
	ResumeURL    *string   `json:"resume_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ProblemStatement string   `json:"problem_statement"`
	Description      string   `json:"description"`
	Technologies     []string `json:"technologies"`
	Role             string   `json:"role"`
	Outcome          string   `json:"outcome"`
	Status           string   `json:"status"`
	Visible          bool     `json:"visible"`
	Order            int      `json:"order"`
	ImageURL         *string  `json:"image_url"`
	ProjectURL       *string  `json:"project_url"`
	GitHubURL        *string  `json:"github_url"`
}

type Experience struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
	Order            int      `json:"order"`
}

type Education struct {
	ID           string   `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	FieldOfStudy string   `json:"field_of_study"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Order        int      `json:"order"`
}

type Certification struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	IssuingOrganization string  `json:"issuing_organization"`
	Year                string  `json:"year"`
	CertificateURL      *string `json:"certificate_url"`
	Order               int     `json:"order"`
}

type Message struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Body      string     `json:"message"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at"`
}

const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

// Mutation payloads. Server-owned fields (id, timestamps) are absent.

type ProfilePayload struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Headline     string  `json:"headline"`
	About        string  `json:"about"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	LinkedIn     string  `json:"linkedin"`
	GitHub       string  `json:"github"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
	ResumeURL    *string `json:"resume_url,omitempty"`
}

type SkillPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

type ProjectPayload struct {
	Title            string   `json:"title"`
	ProblemStatement string   `json:"problem_statement"`
	Description      string   `json:"description"`
	Technologies     []string `json:"technologies"`
	Role             string   `json:"role"`
	Outcome          string   `json:"outcome"`
	Status           string   `json:"status"`
	Visible          bool     `json:"visible"`
	Order            int      `json:"order"`
	ImageURL         *string  `json:"image_url,omitempty"`
	ProjectURL       *string  `json:"project_url,omitempty"`
	GitHubURL        *string  `json:"github_url,omitempty"`
}

type ExperiencePayload struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
	Order            int      `json:"order"`
}

type EducationPayload struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	FieldOfStudy string   `json:"field_of_study"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Order        int      `json:"order"`
}

type CertificationPayload struct {
	Name                string  `json:"name"`
	IssuingOrganization string  `json:"issuing_organization"`
	Year                string  `json:"year"`
	CertificateURL      *string `json:"certificate_url,omitempty"`
	Order               int     `json:"order"`
}
