package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

// State of the editing workflow. One form is open at a time, matching
// how the dashboard presents a single modal editor.
type State int

const (
	StateBrowsing State = iota
	StateFormOpen
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateFormOpen:
		return "form-open"
	case StateSaving:
		return "saving"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Resource identifies one of the managed collections.
type Resource string

const (
	ResourceProfile        Resource = "profile"
	ResourceSkills         Resource = "skills"
	ResourceProjects       Resource = "projects"
	ResourceExperience     Resource = "experience"
	ResourceEducation      Resource = "education"
	ResourceCertifications Resource = "certifications"
	ResourceMessages       Resource = "messages"
)

var (
	// ErrSaveInFlight guards against a double submit while a mutation
	// is pending.
	ErrSaveInFlight = errors.New("a save is already in progress")
	// ErrOpenInEditor refuses to delete a record whose form is open.
	ErrOpenInEditor = errors.New("close the form before deleting this record")
	// ErrNotConfirmed means the caller skipped the confirmation step.
	ErrNotConfirmed = errors.New("delete requires confirmation")
	// ErrNoFormOpen means save was called for a resource whose form is
	// not the one open.
	ErrNoFormOpen = errors.New("no matching form is open")
)

// Snapshot is the controller's local copy of all seven collections.
type Snapshot struct {
	Profile        *portfolio.Profile
	Skills         []portfolio.Skill
	Projects       []portfolio.Project
	Experience     []portfolio.Experience
	Education      []portfolio.Education
	Certifications []portfolio.Certification
	Messages       []portfolio.Message
}

// UnreadCount is the badge number next to the messages section.
func (s Snapshot) UnreadCount() int {
	n := 0
	for _, m := range s.Messages {
		if m.Status == portfolio.MessageStatusUnread {
			n++
		}
	}
	return n
}

// Controller drives list/create/edit/delete against the API. There are
// no optimistic updates: every successful mutation triggers a full
// re-fetch of all collections, so local state never diverges from the
// server for long.
type Controller struct {
	client *portfolio.Client
	log    logger.Logger

	mu           sync.Mutex
	state        State
	formResource Resource
	editingID    string // "" while creating
	data         Snapshot
}

func NewController(client *portfolio.Client, log logger.Logger) *Controller {
	return &Controller{client: client, log: log, state: StateBrowsing}
}

// RefreshAll fetches the seven collections in parallel. A failed fetch
// is logged and that collection keeps its previous value; the snapshot
// is usable regardless of partial failure.
func (c *Controller) RefreshAll(ctx context.Context) Snapshot {
	var (
		wg   sync.WaitGroup
		next Snapshot
		errs = make([]error, 7)
	)

	fetch := func(i int, name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	fetch(0, "profile", func() error {
		p, err := c.client.Profile().Get(ctx)
		next.Profile = p
		return err
	})
	fetch(1, "skills", func() error {
		items, err := c.client.Skills().List(ctx)
		next.Skills = items
		return err
	})
	fetch(2, "projects", func() error {
		items, err := c.client.Projects().List(ctx, nil)
		next.Projects = items
		return err
	})
	fetch(3, "experience", func() error {
		items, err := c.client.Experience().List(ctx)
		next.Experience = items
		return err
	})
	fetch(4, "education", func() error {
		items, err := c.client.Education().List(ctx)
		next.Education = items
		return err
	})
	fetch(5, "certifications", func() error {
		items, err := c.client.Certifications().List(ctx)
		next.Certifications = items
		return err
	})
	fetch(6, "messages", func() error {
		items, err := c.client.Messages().List(ctx, "")
		next.Messages = items
		return err
	})

	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.data
	for _, err := range errs {
		if err != nil {
			c.log.Warn("collection fetch failed, keeping previous data", zap.Error(err))
		}
	}
	if errs[0] != nil {
		next.Profile = prev.Profile
	}
	if errs[1] != nil {
		next.Skills = prev.Skills
	}
	if errs[2] != nil {
		next.Projects = prev.Projects
	}
	if errs[3] != nil {
		next.Experience = prev.Experience
	}
	if errs[4] != nil {
		next.Education = prev.Education
	}
	if errs[5] != nil {
		next.Certifications = prev.Certifications
	}
	if errs[6] != nil {
		next.Messages = prev.Messages
	}

	c.data = next
	return next
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// State reports the workflow state plus, when a form is open, which
// resource it belongs to and the id being edited ("" for create).
func (c *Controller) State() (State, Resource, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.formResource, c.editingID
}

// OpenCreate resets the form buffer to create mode for the resource.
// Profile and messages have no create workflow.
func (c *Controller) OpenCreate(r Resource) error {
	if r == ResourceProfile || r == ResourceMessages {
		return fmt.Errorf("%s records cannot be created from the dashboard", r)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSaving {
		return ErrSaveInFlight
	}
	c.state = StateFormOpen
	c.formResource = r
	c.editingID = ""
	return nil
}

// OpenEdit opens the form over an existing record. For profile the id
// is ignored, it is a singleton.
func (c *Controller) OpenEdit(r Resource, id string) error {
	if r == ResourceMessages {
		return errors.New("messages are not editable")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSaving {
		return ErrSaveInFlight
	}
	if r == ResourceProfile {
		id = ""
	}
	c.state = StateFormOpen
	c.formResource = r
	c.editingID = id
	return nil
}

// CloseForm abandons the buffer and returns to browsing. No-op while a
// save is in flight.
func (c *Controller) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateFormOpen {
		c.state = StateBrowsing
		c.formResource = ""
		c.editingID = ""
	}
}

// beginSave transitions FormOpen -> Saving for the given resource and
// returns the id being edited.
func (c *Controller) beginSave(r Resource) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSaving {
		return "", ErrSaveInFlight
	}
	if c.state != StateFormOpen || c.formResource != r {
		return "", ErrNoFormOpen
	}
	c.state = StateSaving
	return c.editingID, nil
}

// endSave returns to Browsing on success, or back to the originating
// FormOpen on failure so the user's edits stay intact for retry.
func (c *Controller) endSave(ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ok {
		c.state = StateBrowsing
		c.formResource = ""
		c.editingID = ""
	} else {
		c.state = StateFormOpen
	}
}

func (c *Controller) finishMutation(ctx context.Context, err error) error {
	if err != nil {
		c.endSave(false)
		return err
	}
	c.endSave(true)
	c.RefreshAll(ctx)
	return nil
}

func (c *Controller) SaveProfile(ctx context.Context, form ProfileForm) error {
	if _, err := c.beginSave(ResourceProfile); err != nil {
		return err
	}
	_, err := c.client.Profile().Update(ctx, form.Payload())
	return c.finishMutation(ctx, err)
}

func (c *Controller) SaveSkill(ctx context.Context, form SkillForm) error {
	id, err := c.beginSave(ResourceSkills)
	if err != nil {
		return err
	}
	if id == "" {
		_, err = c.client.Skills().Create(ctx, form.Payload())
	} else {
		_, err = c.client.Skills().Update(ctx, id, form.Payload())
	}
	return c.finishMutation(ctx, err)
}

func (c *Controller) SaveProject(ctx context.Context, form ProjectForm) error {
	id, err := c.beginSave(ResourceProjects)
	if err != nil {
		return err
	}
	if id == "" {
		_, err = c.client.Projects().Create(ctx, form.Payload())
	} else {
		_, err = c.client.Projects().Update(ctx, id, form.Payload())
	}
	return c.finishMutation(ctx, err)
}

func (c *Controller) SaveExperience(ctx context.Context, form ExperienceForm) error {
	id, err := c.beginSave(ResourceExperience)
	if err != nil {
		return err
	}
	if id == "" {
		_, err = c.client.Experience().Create(ctx, form.Payload())
	} else {
		_, err = c.client.Experience().Update(ctx, id, form.Payload())
	}
	return c.finishMutation(ctx, err)
}

func (c *Controller) SaveEducation(ctx context.Context, form EducationForm) error {
	id, err := c.beginSave(ResourceEducation)
	if err != nil {
		return err
	}
	if id == "" {
		_, err = c.client.Education().Create(ctx, form.Payload())
	} else {
		_, err = c.client.Education().Update(ctx, id, form.Payload())
	}
	return c.finishMutation(ctx, err)
}

func (c *Controller) SaveCertification(ctx context.Context, form CertificationForm) error {
	id, err := c.beginSave(ResourceCertifications)
	if err != nil {
		return err
	}
	if id == "" {
		_, err = c.client.Certifications().Create(ctx, form.Payload())
	} else {
		_, err = c.client.Certifications().Update(ctx, id, form.Payload())
	}
	return c.finishMutation(ctx, err)
}

// beginDelete enforces confirmation and refuses to touch a record that
// is open in the editor.
func (c *Controller) beginDelete(r Resource, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSaving {
		return ErrSaveInFlight
	}
	if c.state == StateFormOpen && c.formResource == r && c.editingID == id {
		return ErrOpenInEditor
	}
	return nil
}

func (c *Controller) deleteAndRefresh(ctx context.Context, del func() error) error {
	if err := del(); err != nil {
		return err
	}
	c.RefreshAll(ctx)
	return nil
}

func (c *Controller) DeleteSkill(ctx context.Context, id string, confirmed bool) error {
	if err := c.beginDelete(ResourceSkills, id, confirmed); err != nil {
		return err
	}
	return c.deleteAndRefresh(ctx, func() error { return c.client.Skills().Delete(ctx, id) })
}

func (c *Controller) DeleteProject(ctx context.Context, id string, confirmed bool) error {
	if err := c.beginDelete(ResourceProjects, id, confirmed); err != nil {
		return err
	}
	return c.deleteAndRefresh(ctx, func() error { return c.client.Projects().Delete(ctx, id) })
}

func (c *Controller) DeleteExperience(ctx context.Context, id string, confirmed bool) error {
	if err := c.beginDelete(ResourceExperience, id, confirmed); err != nil {
		return err
	}
	return c.deleteAndRefresh(ctx, func() error { return c.client.Experience().Delete(ctx, id) })
}

func (c *Controller) DeleteEducation(ctx context.Context, id string, confirmed bool) error {
	if err := c.beginDelete(ResourceEducation, id, confirmed); err != nil {
		return err
	}
	return c.deleteAndRefresh(ctx, func() error { return c.client.Education().Delete(ctx, id) })
}

func (c *Controller) DeleteCertification(ctx context.Context, id string, confirmed bool) error {
	if err := c.beginDelete(ResourceCertifications, id, confirmed); err != nil {
		return err
	}
	return c.deleteAndRefresh(ctx, func() error { return c.client.Certifications().Delete(ctx, id) })
}

func (c *Controller) DeleteMessage(ctx context.Context, id string, confirmed bool) error {
	if err := c.beginDelete(ResourceMessages, id, confirmed); err != nil {
		return err
	}
	return c.deleteAndRefresh(ctx, func() error { return c.client.Messages().Delete(ctx, id) })
}

// ToggleProjectVisibility flips the flag based on the local snapshot.
// It bypasses the form buffer entirely and may run while a form is
// open over a different record.
func (c *Controller) ToggleProjectVisibility(ctx context.Context, id string) error {
	c.mu.Lock()
	var current *portfolio.Project
	for i := range c.data.Projects {
		if c.data.Projects[i].ID == id {
			current = &c.data.Projects[i]
			break
		}
	}
	if current == nil {
		c.mu.Unlock()
		return fmt.Errorf("unknown project %q", id)
	}
	target := !current.Visible
	c.mu.Unlock()

	if err := c.client.Projects().SetVisibility(ctx, id, target); err != nil {
		return err
	}
	c.RefreshAll(ctx)
	return nil
}

// ToggleMessageRead flips between the two allowed statuses.
func (c *Controller) ToggleMessageRead(ctx context.Context, id string) error {
	c.mu.Lock()
	var current *portfolio.Message
	for i := range c.data.Messages {
		if c.data.Messages[i].ID == id {
			current = &c.data.Messages[i]
			break
		}
	}
	if current == nil {
		c.mu.Unlock()
		return fmt.Errorf("unknown message %q", id)
	}
	markRead := current.Status == portfolio.MessageStatusUnread
	c.mu.Unlock()

	var err error
	if markRead {
		err = c.client.Messages().MarkRead(ctx, id)
	} else {
		err = c.client.Messages().MarkUnread(ctx, id)
	}
	if err != nil {
		return err
	}
	c.RefreshAll(ctx)
	return nil
}
