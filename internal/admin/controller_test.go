package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

func newTestController(t *testing.T) (*fakeAPI, *Controller, *portfolio.Client) {
	t.Helper()
	fake, _, _, client := newTestStack(t)
	ctrl := NewController(client, logger.NewNop())
	ctrl.RefreshAll(t.Context())
	return fake, ctrl, client
}

func TestRefreshAllPopulatesAllCollections(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	snap := ctrl.Snapshot()
	require.NotNil(t, snap.Profile)
	assert.Equal(t, "Pushpa Koirala", snap.Profile.Name)
	assert.Len(t, snap.Skills, 2)
	assert.Len(t, snap.Projects, 2)
	assert.Len(t, snap.Experience, 1)
	assert.Len(t, snap.Education, 1)
	assert.Len(t, snap.Certifications, 1)
	assert.Len(t, snap.Messages, 2)
	assert.Equal(t, 1, snap.UnreadCount())
}

func TestRefreshAllKeepsPreviousDataOnPartialFailure(t *testing.T) {
	fake, ctrl, _ := newTestController(t)

	fake.mu.Lock()
	fake.failMessages = true
	fake.skills = append(fake.skills, portfolio.Skill{ID: "skill-3", Name: "MATLAB", Category: "Programming", Order: 2})
	fake.mu.Unlock()

	snap := ctrl.RefreshAll(t.Context())

	// Skills refreshed, messages kept from the last good fetch.
	assert.Len(t, snap.Skills, 3)
	assert.Len(t, snap.Messages, 2)
}

func TestCreateProjectRefetchesAndReturnsToBrowsing(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	require.NoError(t, ctrl.OpenCreate(ResourceProjects))
	state, resource, id := ctrl.State()
	assert.Equal(t, StateFormOpen, state)
	assert.Equal(t, ResourceProjects, resource)
	assert.Empty(t, id)

	form := NewProjectForm()
	form.Title = "New Dashboard"
	form.Technologies = "React, Node.js, MongoDB"
	require.NoError(t, ctrl.SaveProject(t.Context(), form))

	state, _, _ = ctrl.State()
	assert.Equal(t, StateBrowsing, state)

	snap := ctrl.Snapshot()
	require.Len(t, snap.Projects, 3)
	created := snap.Projects[2]
	assert.Equal(t, "New Dashboard", created.Title)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, created.Technologies)
	assert.True(t, created.Visible)
	assert.Equal(t, "Completed", created.Status)
}

func TestEditProjectUpdatesInPlace(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	require.NoError(t, ctrl.OpenEdit(ResourceProjects, "proj-1"))

	form := ProjectFormFrom(ctrl.Snapshot().Projects[0])
	form.Outcome = "Improved efficiency by 35%"
	require.NoError(t, ctrl.SaveProject(t.Context(), form))

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Projects, 2)
	assert.Equal(t, "Improved efficiency by 35%", snap.Projects[0].Outcome)
}

func TestSaveFailureKeepsFormOpenForRetry(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	require.NoError(t, ctrl.OpenEdit(ResourceProjects, "proj-1"))

	form := ProjectFormFrom(ctrl.Snapshot().Projects[0])
	form.Status = "Abandoned" // rejected server-side
	err := ctrl.SaveProject(t.Context(), form)
	require.Error(t, err)

	state, resource, id := ctrl.State()
	assert.Equal(t, StateFormOpen, state)
	assert.Equal(t, ResourceProjects, resource)
	assert.Equal(t, "proj-1", id)

	// Retry with the fixed buffer succeeds.
	form.Status = "Planned"
	require.NoError(t, ctrl.SaveProject(t.Context(), form))
	state, _, _ = ctrl.State()
	assert.Equal(t, StateBrowsing, state)
}

func TestDoubleSubmitIsRejectedWhileSaving(t *testing.T) {
	fake, ctrl, _ := newTestController(t)

	fake.mu.Lock()
	fake.saveGate = make(chan bool)
	fake.saveEntered = make(chan bool, 1)
	fake.mu.Unlock()

	require.NoError(t, ctrl.OpenCreate(ResourceProjects))

	form := NewProjectForm()
	form.Title = "Slow Save"

	done := make(chan error, 1)
	go func() { done <- ctrl.SaveProject(t.Context(), form) }()

	select {
	case <-fake.saveEntered:
	case <-time.After(5 * time.Second):
		t.Fatal("first save never reached the server")
	}

	err := ctrl.SaveProject(t.Context(), form)
	assert.ErrorIs(t, err, ErrSaveInFlight)

	fake.mu.Lock()
	gate := fake.saveGate
	fake.saveGate = nil
	fake.mu.Unlock()
	close(gate)

	require.NoError(t, <-done)
	state, _, _ := ctrl.State()
	assert.Equal(t, StateBrowsing, state)
}

func TestSaveWithoutOpenFormIsRejected(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	err := ctrl.SaveProject(t.Context(), NewProjectForm())
	assert.ErrorIs(t, err, ErrNoFormOpen)

	// A skill form open does not authorize a project save.
	require.NoError(t, ctrl.OpenCreate(ResourceSkills))
	err = ctrl.SaveProject(t.Context(), NewProjectForm())
	assert.ErrorIs(t, err, ErrNoFormOpen)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	err := ctrl.DeleteProject(t.Context(), "proj-1", false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, ctrl.Snapshot().Projects, 2)
}

func TestDeleteRecordOpenInEditorIsRefused(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	require.NoError(t, ctrl.OpenEdit(ResourceProjects, "proj-1"))

	err := ctrl.DeleteProject(t.Context(), "proj-1", true)
	assert.ErrorIs(t, err, ErrOpenInEditor)
	assert.Len(t, ctrl.Snapshot().Projects, 2)

	// A different record may still be deleted while the form is open.
	require.NoError(t, ctrl.DeleteProject(t.Context(), "proj-2", true))
	assert.Len(t, ctrl.Snapshot().Projects, 1)

	ctrl.CloseForm()
	require.NoError(t, ctrl.DeleteProject(t.Context(), "proj-1", true))
	assert.Empty(t, ctrl.Snapshot().Projects)
}

func TestVisibilityToggleIsIdempotentPair(t *testing.T) {
	_, ctrl, client := newTestController(t)

	visible := true
	public, err := client.Projects().List(t.Context(), &visible)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "proj-1", public[0].ID)

	require.NoError(t, ctrl.ToggleProjectVisibility(t.Context(), "proj-1"))
	public, err = client.Projects().List(t.Context(), &visible)
	require.NoError(t, err)
	assert.Empty(t, public)

	require.NoError(t, ctrl.ToggleProjectVisibility(t.Context(), "proj-1"))
	public, err = client.Projects().List(t.Context(), &visible)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "proj-1", public[0].ID)
}

func TestToggleVisibilityBypassesOpenForm(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	require.NoError(t, ctrl.OpenEdit(ResourceProjects, "proj-2"))
	require.NoError(t, ctrl.ToggleProjectVisibility(t.Context(), "proj-1"))

	// The form stays open; the toggle never touches it.
	state, _, id := ctrl.State()
	assert.Equal(t, StateFormOpen, state)
	assert.Equal(t, "proj-2", id)
	assert.False(t, ctrl.Snapshot().Projects[0].Visible)
}

func TestMessageReadToggleAndBadge(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	assert.Equal(t, 1, ctrl.Snapshot().UnreadCount())

	require.NoError(t, ctrl.ToggleMessageRead(t.Context(), "msg-1"))
	snap := ctrl.Snapshot()
	assert.Equal(t, 0, snap.UnreadCount())
	assert.Equal(t, "read", snap.Messages[0].Status)
	assert.NotNil(t, snap.Messages[0].ReadAt)

	require.NoError(t, ctrl.ToggleMessageRead(t.Context(), "msg-1"))
	snap = ctrl.Snapshot()
	assert.Equal(t, 1, snap.UnreadCount())
	assert.Nil(t, snap.Messages[0].ReadAt)
}

func TestDeleteUnreadMessageDecrementsBadge(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	require.Equal(t, 1, ctrl.Snapshot().UnreadCount())
	require.NoError(t, ctrl.DeleteMessage(t.Context(), "msg-1", true))

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Messages, 1)
	assert.Equal(t, 0, snap.UnreadCount())
}

func TestOpenCreateRejectsSingletonsAndMessages(t *testing.T) {
	_, ctrl, _ := newTestController(t)

	assert.Error(t, ctrl.OpenCreate(ResourceProfile))
	assert.Error(t, ctrl.OpenCreate(ResourceMessages))
	assert.Error(t, ctrl.OpenEdit(ResourceMessages, "msg-1"))
}
