package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

// fakeAPI is an in-memory stand-in for the portfolio server, close
// enough to the real contract for session and controller tests.
type fakeAPI struct {
	mu sync.Mutex

	username string
	password string
	token    string // current valid token, "" means none issued
	tokenSeq int

	profile        portfolio.Profile
	skills         []portfolio.Skill
	projects       []portfolio.Project
	experience     []portfolio.Experience
	education      []portfolio.Education
	certifications []portfolio.Certification
	messages       []portfolio.Message

	nextID int

	failMessages bool      // GET /api/messages returns 500
	saveGate     chan bool // when set, project create/update blocks until a value is received
	saveEntered  chan bool // signals a blocked save has reached the handler
}

func newFakeAPI() *fakeAPI {
	readAt := time.Now().UTC().Add(-time.Hour)
	return &fakeAPI{
		username: "admin",
		password: "Admin@2025",
		profile: portfolio.Profile{
			Name:  "Pushpa Koirala",
			Title: "Automation & Electrical Engineer",
			Email: "thepushpaco@outlook.com",
		},
		skills: []portfolio.Skill{
			{ID: "skill-1", Name: "PLC Programming", Category: "Automation", Order: 1},
			{ID: "skill-2", Name: "Python", Category: "Programming", Order: 1},
		},
		projects: []portfolio.Project{
			{ID: "proj-1", Title: "Industrial Automation System", Status: "Completed", Visible: true, Technologies: []string{"PLC", "HMI"}},
			{ID: "proj-2", Title: "Secret Prototype", Status: "Planned", Visible: false, Technologies: []string{}},
		},
		experience: []portfolio.Experience{
			{ID: "exp-1", Title: "Technical Support", Company: "A3Z Electronic Store", Responsibilities: []string{"Repairs"}},
		},
		education: []portfolio.Education{
			{ID: "edu-1", Degree: "Automation & Electrical Engineering", Institution: "JAMK", Highlights: []string{}},
		},
		certifications: []portfolio.Certification{
			{ID: "cert-1", Name: "Occupational Safety Card", Order: 1},
		},
		messages: []portfolio.Message{
			{ID: "msg-1", Name: "Visitor", Email: "v@example.com", Body: "Hi!", Status: "unread", CreatedAt: time.Now().UTC()},
			{ID: "msg-2", Name: "Recruiter", Email: "r@example.com", Body: "Role open", Status: "read", CreatedAt: time.Now().UTC(), ReadAt: &readAt},
		},
	}
}

func (f *fakeAPI) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-n%d", prefix, f.nextID)
}

func (f *fakeAPI) issueToken() string {
	f.tokenSeq++
	f.token = fmt.Sprintf("tok-%d", f.tokenSeq)
	return f.token
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	return f.token != "" && r.Header.Get("Authorization") == "Bearer "+f.token
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, base, msg string) {
	writeJSON(w, code, map[string]string{"error": base, "message": msg})
}

func (f *fakeAPI) user() portfolio.User {
	return portfolio.User{ID: "admin-1", Username: f.username, Email: "thepushpaco@outlook.com"}
}

func (f *fakeAPI) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		defer f.mu.Unlock()
		if body["username"] != f.username || body["password"] != f.password {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"token": f.issueToken(), "user": f.user()})
	})

	mux.HandleFunc("POST /api/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["current_password"] != f.password {
			writeErr(w, http.StatusBadRequest, "invalid_input", "Current password is incorrect")
			return
		}
		f.password = body["new_password"]
		writeJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
	})

	mux.HandleFunc("PUT /api/auth/username", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["current_password"] != f.password {
			writeErr(w, http.StatusBadRequest, "invalid_input", "Current password is incorrect")
			return
		}
		f.username = body["new_username"]
		writeJSON(w, http.StatusOK, map[string]any{"token": f.issueToken(), "user": f.user()})
	})

	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	})

	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.profile)
	})

	mux.HandleFunc("GET /api/skills", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.skills)
	})

	mux.HandleFunc("POST /api/skills", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		var payload portfolio.SkillPayload
		json.NewDecoder(r.Body).Decode(&payload)
		s := portfolio.Skill{ID: f.newID("skill"), Name: payload.Name, Category: payload.Category, Order: payload.Order}
		f.skills = append(f.skills, s)
		writeJSON(w, http.StatusCreated, s)
	})

	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := f.projects
		if r.URL.Query().Get("visible") == "true" {
			out = nil
			for _, p := range f.projects {
				if p.Visible {
					out = append(out, p)
				}
			}
		}
		writeJSON(w, http.StatusOK, out)
	})

	mux.HandleFunc("POST /api/projects", func(w http.ResponseWriter, r *http.Request) {
		f.handleProjectSave(w, r, "")
	})

	mux.HandleFunc("PUT /api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.handleProjectSave(w, r, r.PathValue("id"))
	})

	mux.HandleFunc("PATCH /api/projects/{id}/visibility", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		var body map[string]bool
		json.NewDecoder(r.Body).Decode(&body)
		for i := range f.projects {
			if f.projects[i].ID == r.PathValue("id") {
				f.projects[i].Visible = body["visible"]
				writeJSON(w, http.StatusOK, map[string]string{"message": "Visibility updated"})
				return
			}
		}
		writeErr(w, http.StatusNotFound, "not_found", "project not found")
	})

	mux.HandleFunc("DELETE /api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		for i := range f.projects {
			if f.projects[i].ID == r.PathValue("id") {
				f.projects = append(f.projects[:i], f.projects[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
				return
			}
		}
		writeErr(w, http.StatusNotFound, "not_found", "project not found")
	})

	mux.HandleFunc("GET /api/experience", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.experience)
	})

	mux.HandleFunc("GET /api/education", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.education)
	})

	mux.HandleFunc("GET /api/certifications", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.certifications)
	})

	mux.HandleFunc("GET /api/messages", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		if f.failMessages {
			writeErr(w, http.StatusInternalServerError, "internal", "boom")
			return
		}
		writeJSON(w, http.StatusOK, f.messages)
	})

	mux.HandleFunc("PATCH /api/messages/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		f.setMessageStatus(w, r, "read")
	})

	mux.HandleFunc("PATCH /api/messages/{id}/unread", func(w http.ResponseWriter, r *http.Request) {
		f.setMessageStatus(w, r, "unread")
	})

	mux.HandleFunc("DELETE /api/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if !f.authorized(r) {
			writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		for i := range f.messages {
			if f.messages[i].ID == r.PathValue("id") {
				f.messages = append(f.messages[:i], f.messages[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
				return
			}
		}
		writeErr(w, http.StatusNotFound, "not_found", "message not found")
	})

	return httptest.NewServer(mux)
}

func (f *fakeAPI) handleProjectSave(w http.ResponseWriter, r *http.Request, id string) {
	f.mu.Lock()
	gate := f.saveGate
	entered := f.saveEntered
	f.mu.Unlock()

	if gate != nil {
		if entered != nil {
			entered <- true
		}
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.authorized(r) {
		writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}

	var payload portfolio.ProjectPayload
	json.NewDecoder(r.Body).Decode(&payload)
	if payload.Status != "Completed" && payload.Status != "In Progress" && payload.Status != "Planned" {
		writeErr(w, http.StatusBadRequest, "invalid_input", "status must be Completed, In Progress or Planned")
		return
	}

	p := portfolio.Project{
		Title:            payload.Title,
		ProblemStatement: payload.ProblemStatement,
		Description:      payload.Description,
		Technologies:     payload.Technologies,
		Role:             payload.Role,
		Outcome:          payload.Outcome,
		Status:           payload.Status,
		Visible:          payload.Visible,
		Order:            payload.Order,
		ImageURL:         payload.ImageURL,
		ProjectURL:       payload.ProjectURL,
		GitHubURL:        payload.GitHubURL,
	}

	if id == "" {
		p.ID = f.newID("proj")
		f.projects = append(f.projects, p)
		writeJSON(w, http.StatusCreated, p)
		return
	}

	for i := range f.projects {
		if f.projects[i].ID == id {
			p.ID = id
			f.projects[i] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeErr(w, http.StatusNotFound, "not_found", "project not found")
}

func (f *fakeAPI) setMessageStatus(w http.ResponseWriter, r *http.Request, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.authorized(r) {
		writeErr(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}
	for i := range f.messages {
		if f.messages[i].ID == r.PathValue("id") {
			f.messages[i].Status = status
			if status == "read" {
				now := time.Now().UTC()
				f.messages[i].ReadAt = &now
			} else {
				f.messages[i].ReadAt = nil
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
			return
		}
	}
	writeErr(w, http.StatusNotFound, "not_found", "message not found")
}

// newTestStack wires a fake server, a file-backed session store in a
// temp dir and a client, already logged in as admin.
func newTestStack(t *testing.T) (*fakeAPI, *httptest.Server, *SessionStore, *portfolio.Client) {
	t.Helper()

	fake := newFakeAPI()
	srv := fake.server()
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewSessionStore(path, logger.NewNop())
	require.NoError(t, err)

	client := portfolio.New(srv.URL, store)
	_, err = store.Login(t.Context(), client.Auth(), "admin", "Admin@2025")
	require.NoError(t, err)

	return fake, srv, store, client
}
