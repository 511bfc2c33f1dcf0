package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

func TestSplitComma(t *testing.T) {
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, SplitComma("React, Node.js, MongoDB"))
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, SplitComma("  React ,Node.js ,  MongoDB  "))
	assert.Equal(t, []string{"React"}, SplitComma("React,,,"))
	assert.Equal(t, []string{}, SplitComma(""))
	assert.Equal(t, []string{}, SplitComma(" , , "))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, SplitLines("A\nB\n\nC"))
	assert.Equal(t, []string{"A", "B"}, SplitLines("  A  \n\n  B\n"))
	assert.Equal(t, []string{}, SplitLines("\n\n"))
}

func TestJoinRoundTrips(t *testing.T) {
	techs := []string{"Siemens TIA Portal", "PLC", "HMI"}
	assert.Equal(t, techs, SplitComma(JoinComma(techs)))

	duties := []string{"PCB Design", "Firmware Development", "Testing"}
	assert.Equal(t, duties, SplitLines(JoinLines(duties)))
}

func TestProjectFormDefaults(t *testing.T) {
	form := NewProjectForm()
	assert.Equal(t, "Completed", form.Status)
	assert.True(t, form.Visible)
	assert.Empty(t, form.Title)
}

func TestProjectFormRoundTrip(t *testing.T) {
	image := "https://example.com/shot.png"
	p := portfolio.Project{
		ID:           "p1",
		Title:        "Industrial Automation System",
		Technologies: []string{"Siemens TIA Portal", "PLC", "HMI", "Profibus"},
		Status:       "In Progress",
		Visible:      false,
		Order:        3,
		ImageURL:     &image,
	}

	form := ProjectFormFrom(p)
	assert.Equal(t, "Siemens TIA Portal, PLC, HMI, Profibus", form.Technologies)
	assert.Equal(t, image, form.ImageURL)

	payload := form.Payload()
	assert.Equal(t, p.Technologies, payload.Technologies)
	assert.Equal(t, "In Progress", payload.Status)
	assert.False(t, payload.Visible)
	assert.Equal(t, 3, payload.Order)
	if assert.NotNil(t, payload.ImageURL) {
		assert.Equal(t, image, *payload.ImageURL)
	}
}

func TestProjectFormDropsEmptyOptionals(t *testing.T) {
	form := NewProjectForm()
	form.Title = "Untitled"
	form.ImageURL = "   "

	payload := form.Payload()
	assert.Nil(t, payload.ImageURL)
	assert.Nil(t, payload.ProjectURL)
	assert.Nil(t, payload.GitHubURL)
	assert.Equal(t, []string{}, payload.Technologies)
}

func TestExperienceFormRoundTrip(t *testing.T) {
	e := portfolio.Experience{
		Title:            "Technical Support",
		Company:          "A3Z Electronic Store",
		Responsibilities: []string{"Diagnostic Testing", "Data Recovery"},
	}

	form := ExperienceFormFrom(e)
	assert.Equal(t, "Diagnostic Testing\nData Recovery", form.Responsibilities)

	// Blank lines typed into the editor are dropped on submit.
	form.Responsibilities = "A\nB\n\nC"
	assert.Equal(t, []string{"A", "B", "C"}, form.Payload().Responsibilities)
}

func TestEducationFormHighlights(t *testing.T) {
	form := EducationForm{
		Degree:     "Automation & Electrical Engineering",
		Highlights: "  Siemens TIA Portal Programming \n\n MATLAB/SIMULINK ",
	}
	assert.Equal(t,
		[]string{"Siemens TIA Portal Programming", "MATLAB/SIMULINK"},
		form.Payload().Highlights,
	)
}

func TestProfileFormOptionalFields(t *testing.T) {
	photo := "https://cdn.example.com/me.jpg"
	p := portfolio.Profile{Name: "Pushpa Koirala", ProfilePhoto: &photo}

	form := ProfileFormFrom(p)
	assert.Equal(t, photo, form.ProfilePhoto)
	assert.Empty(t, form.ResumeURL)

	payload := form.Payload()
	if assert.NotNil(t, payload.ProfilePhoto) {
		assert.Equal(t, photo, *payload.ProfilePhoto)
	}
	assert.Nil(t, payload.ResumeURL)
}
