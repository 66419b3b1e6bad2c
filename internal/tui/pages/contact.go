package pages

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gx1727/mi7site/internal/contact"
	"github.com/gx1727/mi7site/internal/logger"
	"github.com/gx1727/mi7site/internal/route"
)

// SubmitResultMsg carries the outcome of submission Seq.
type SubmitResultMsg struct {
	Seq int
	Err error
}

// BannerExpiredMsg asks to clear the banner of submission Seq.
type BannerExpiredMsg struct {
	Seq int
}

// Focus positions, in tab order. The submit button follows the fields.
const (
	focusNone = iota - 1
	focusName
	focusEmail
	focusSubject
	focusMessage
	focusSubmit
	focusCount
)

type contactKeys struct {
	Edit        key.Binding
	Leave       key.Binding
	Next        key.Binding
	Prev        key.Binding
	Confirm     key.Binding
	Submit      key.Binding
	Dismiss     key.Binding
	SubjectPrev key.Binding
	SubjectNext key.Binding
}

func defaultContactKeys() contactKeys {
	return contactKeys{
		Edit:        key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "fill in form")),
		Leave:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
		Next:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Confirm:     key.NewBinding(key.WithKeys("enter")),
		Submit:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Dismiss:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		SubjectPrev: key.NewBinding(key.WithKeys("left", "h")),
		SubjectNext: key.NewBinding(key.WithKeys("right", "l")),
	}
}

// Contact lists the ways to reach the maintainers and hosts the contact form.
type Contact struct {
	name    textinput.Model
	email   textinput.Model
	subject int
	message textarea.Model
	focus   int

	errs    contact.ValidationErrors
	machine contact.Machine
	spinner spinner.Model

	submitter     contact.Submitter
	ctx           context.Context
	bannerTimeout time.Duration
	log           *logger.Logger
	keys          contactKeys
}

// NewContact builds the contact page with an empty form.
func NewContact(opts Options) Contact {
	opts = opts.withDefaults()

	name := textinput.New()
	name.Prompt = ""
	name.CharLimit = 120

	email := textinput.New()
	email.Prompt = ""
	email.CharLimit = 254

	message := textarea.New()
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetHeight(4)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	c := Contact{
		name:          name,
		email:         email,
		subject:       -1,
		message:       message,
		focus:         focusNone,
		spinner:       sp,
		submitter:     opts.Submitter,
		ctx:           opts.Context,
		bannerTimeout: opts.BannerTimeout,
		log:           opts.Logger.With("component", "contact"),
		keys:          defaultContactKeys(),
	}
	return c.resize(contentWidth(0))
}

func (c Contact) Route() route.Route { return route.Contact }

func (c Contact) TitleKey() string { return "contact.title" }

// Capturing reports whether a field has focus and keys belong to the form.
func (c Contact) Capturing() bool { return c.focus != focusNone }

// Status is the submission state.
func (c Contact) Status() contact.Status { return c.machine.Status() }

// Errors returns the validation errors currently shown.
func (c Contact) Errors() contact.ValidationErrors { return c.errs }

// Form returns the values typed so far.
func (c Contact) Form() contact.Form {
	f := contact.Form{
		Name:    c.name.Value(),
		Email:   c.email.Value(),
		Message: c.message.Value(),
	}
	if c.subject >= 0 {
		f.Subject = string(contact.Subjects()[c.subject])
	}
	return f
}

// SetForm replaces the field values.
func (c Contact) SetForm(f contact.Form) Contact {
	c.name.SetValue(f.Name)
	c.email.SetValue(f.Email)
	c.message.SetValue(f.Message)
	c.subject = -1
	for i, s := range contact.Subjects() {
		if string(s) == f.Subject {
			c.subject = i
		}
	}
	return c
}

// ShortHelp lists the form's key bindings for the help line.
func (c Contact) ShortHelp() []key.Binding {
	if c.Capturing() {
		return []key.Binding{c.keys.Next, c.keys.Submit, c.keys.Leave}
	}
	bindings := []key.Binding{c.keys.Edit}
	if c.bannerVisible() {
		bindings = append(bindings, c.keys.Dismiss)
	}
	return bindings
}

func (c Contact) Mount() (Page, tea.Cmd) { return c, nil }

// Unmount leaves the form. A submission in flight still completes.
func (c Contact) Unmount() Page {
	return c.setFocus(focusNone)
}

func (c Contact) Reveal() Page { return c }

func (c Contact) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return c.resize(contentWidth(msg.Width)), nil

	case SubmitResultMsg:
		return c.resolve(msg)

	case BannerExpiredMsg:
		if c.machine.Revert(msg.Seq) {
			c.log.With("seq", msg.Seq).Debug("banner expired")
		}
		return c, nil

	case spinner.TickMsg:
		if c.machine.Status() != contact.StatusSubmitting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.KeyMsg:
		if c.Capturing() {
			return c.handleEditingKey(msg)
		}
		return c.handleBrowsingKey(msg)
	}

	// cursor blink and other input internals
	return c.forward(msg)
}

func (c Contact) handleBrowsingKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Edit):
		c = c.setFocus(focusName)
		return c, textinput.Blink
	case key.Matches(msg, c.keys.Dismiss):
		if c.machine.Dismiss() {
			c.log.Debug("banner dismissed")
		}
	}
	return c, nil
}

func (c Contact) handleEditingKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Leave):
		return c.setFocus(focusNone), nil
	case key.Matches(msg, c.keys.Submit):
		return c.submitCmd()
	case key.Matches(msg, c.keys.Next):
		return c.moveFocus(1), nil
	case key.Matches(msg, c.keys.Prev):
		return c.moveFocus(-1), nil
	}

	switch c.focus {
	case focusSubject:
		switch {
		case key.Matches(msg, c.keys.SubjectNext):
			c = c.cycleSubject(1)
		case key.Matches(msg, c.keys.SubjectPrev):
			c = c.cycleSubject(-1)
		case key.Matches(msg, c.keys.Confirm):
			c = c.moveFocus(1)
		}
		return c, nil
	case focusSubmit:
		if key.Matches(msg, c.keys.Confirm) {
			return c.submitCmd()
		}
		return c, nil
	case focusName, focusEmail:
		if key.Matches(msg, c.keys.Confirm) {
			return c.moveFocus(1), nil
		}
	}

	page, cmd := c.forward(msg)
	c = page.(Contact)
	return c.revalidate(c.focusedField()), cmd
}

// Submit validates the form and starts a submission. It returns
// contact.ErrSubmissionInFlight while one is pending and
// contact.ValidationErrors when the form is rejected.
func (c Contact) Submit() (Contact, tea.Cmd, error) {
	if !c.machine.CanSubmit() {
		c.log.Debug("submit ignored: submission in flight")
		return c, nil, contact.ErrSubmissionInFlight
	}

	form := c.Form().Normalized()
	if err := contact.Validate(form); err != nil {
		var verrs contact.ValidationErrors
		if errors.As(err, &verrs) {
			c.errs = verrs
			if len(verrs) > 0 && c.Capturing() {
				c = c.setFocus(fieldFocus(verrs[0].Field))
			}
		}
		c.log.With("error", err.Error()).Debug("contact form rejected")
		return c, nil, err
	}

	seq, err := c.machine.Begin()
	if err != nil {
		return c, nil, err
	}
	c.errs = nil
	c.log.WithFields(map[string]any{"seq": seq, "subject": form.Subject}).Info("submitting contact form")

	submitter, ctx := c.submitter, c.ctx
	send := func() tea.Msg {
		return SubmitResultMsg{Seq: seq, Err: submitter.Submit(ctx, form)}
	}
	return c, tea.Batch(send, c.spinner.Tick), nil
}

func (c Contact) submitCmd() (Page, tea.Cmd) {
	c, cmd, _ := c.Submit()
	return c, cmd
}

func (c Contact) resolve(msg SubmitResultMsg) (Page, tea.Cmd) {
	if !c.machine.Resolve(msg.Seq, msg.Err) {
		c.log.With("seq", msg.Seq).Debug("stale submission result dropped")
		return c, nil
	}

	if msg.Err != nil {
		c.log.With("seq", msg.Seq).Error(msg.Err, "contact form submission failed")
	} else {
		c.log.With("seq", msg.Seq).Info("contact form sent")
		c = c.clear()
	}

	seq := msg.Seq
	return c, tea.Tick(c.bannerTimeout, func(time.Time) tea.Msg {
		return BannerExpiredMsg{Seq: seq}
	})
}

func (c Contact) clear() Contact {
	c.name.Reset()
	c.email.Reset()
	c.message.Reset()
	c.subject = -1
	c.errs = nil
	return c.setFocus(focusNone)
}

func (c Contact) forward(msg tea.Msg) (Page, tea.Cmd) {
	var cmd tea.Cmd
	switch c.focus {
	case focusName:
		c.name, cmd = c.name.Update(msg)
	case focusEmail:
		c.email, cmd = c.email.Update(msg)
	case focusMessage:
		c.message, cmd = c.message.Update(msg)
	}
	return c, cmd
}

func (c Contact) moveFocus(delta int) Contact {
	leaving := c.focusedField()
	next := (c.focus + delta + focusCount) % focusCount
	c = c.setFocus(next)
	return c.revalidate(leaving)
}

func (c Contact) setFocus(focus int) Contact {
	c.focus = focus
	c.name.Blur()
	c.email.Blur()
	c.message.Blur()
	switch focus {
	case focusName:
		c.name.Focus()
	case focusEmail:
		c.email.Focus()
	case focusMessage:
		c.message.Focus()
	}
	return c
}

func (c Contact) cycleSubject(delta int) Contact {
	n := len(contact.Subjects())
	switch {
	case c.subject < 0 && delta > 0:
		c.subject = 0
	case c.subject < 0:
		c.subject = n - 1
	default:
		c.subject = (c.subject + delta + n) % n
	}
	return c.revalidate(contact.FieldSubject)
}

// revalidate refreshes the error of a field that is already flagged, so a
// message disappears as soon as the value is fixed.
func (c Contact) revalidate(field contact.Field) Contact {
	if field == "" {
		return c
	}
	if _, flagged := c.errs.For(field); !flagged {
		return c
	}

	fe, stillBad := contact.ValidateField(c.Form(), field)
	out := make(contact.ValidationErrors, 0, len(c.errs))
	for _, existing := range c.errs {
		if existing.Field != field {
			out = append(out, existing)
			continue
		}
		if stillBad {
			out = append(out, fe)
		}
	}
	c.errs = out
	return c
}

func (c Contact) focusedField() contact.Field {
	if c.focus >= focusName && c.focus <= focusMessage {
		return contact.Fields()[c.focus]
	}
	return ""
}

func fieldFocus(field contact.Field) int {
	for i, f := range contact.Fields() {
		if f == field {
			return i
		}
	}
	return focusNone
}

func (c Contact) bannerVisible() bool {
	s := c.machine.Status()
	return s == contact.StatusSuccess || s == contact.StatusError
}

func (c Contact) resize(width int) Contact {
	inner := max(formWidth(width)-12, 10)
	c.name.Width = inner
	c.email.Width = inner
	c.message.SetWidth(inner)
	return c
}

func formWidth(width int) int {
	return min(width, 72)
}
