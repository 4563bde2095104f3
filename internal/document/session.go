package document

import (
	"time"

	"github.com/rs/zerolog"
	"intury/internal/logger"
	"intury/pkg/models"
)

// Options configure a document session.
type Options struct {
	// DueDays is the default distance of the due date from the issue date.
	DueDays int

	// AdvancePercent is the initial advance percentage of advance invoices.
	AdvancePercent int

	// PaymentMethod is printed in the payment note.
	PaymentMethod string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the session defaults.
func DefaultOptions() Options {
	return Options{
		DueDays:        14,
		AdvancePercent: defaultAdvancePct,
		PaymentMethod:  "Bankovní převod",
		Now:            time.Now,
	}
}

// Session owns the single live draft of one user. It replaces screen-level
// state: selecting a type starts a fresh draft, going home discards it.
type Session struct {
	opts         Options
	configurator *FormConfigurator
	draft        *Draft
	log          zerolog.Logger
}

// NewSession creates a session without a draft.
func NewSession(opts Options) *Session {
	def := DefaultOptions()
	if opts.Now == nil {
		opts.Now = def.Now
	}
	if opts.PaymentMethod == "" {
		opts.PaymentMethod = def.PaymentMethod
	}
	if opts.DueDays < 0 {
		opts.DueDays = def.DueDays
	}
	configurator := NewFormConfigurator(opts.AdvancePercent)
	opts.AdvancePercent = configurator.advanceDefault

	return &Session{
		opts:         opts,
		configurator: configurator,
		log:          logger.WithComponent("document-session"),
	}
}

// Select discards any current draft and starts a fresh one for t.
func (s *Session) Select(t Type) (*Draft, error) {
	cfg, ok := Lookup(t)
	if !ok {
		s.log.Error().Str("type", string(t)).Msg("No config for document type")
		return nil, WrapDocumentError("Select", t, ErrUnknownDocumentType)
	}

	s.draft = newDraft(t, cfg, s.opts, s.opts.Now())

	log := logger.WithDraft("document-session", s.draft.ID.String(), string(t))
	log.Info().
		Str("title", DisplayName(t)).
		Msg("Started new document draft")

	return s.draft, nil
}

// Home discards the current draft.
func (s *Session) Home() {
	if s.draft != nil {
		s.log.Debug().Str("draft_id", s.draft.ID.String()).Msg("Discarding document draft")
	}
	s.draft = nil
}

// Draft returns the live draft, if any.
func (s *Session) Draft() (*Draft, bool) {
	return s.draft, s.draft != nil
}

// Layout returns the form layout of the current draft's type.
func (s *Session) Layout() (FormLayout, error) {
	if s.draft == nil {
		return FormLayout{}, WrapDocumentError("Layout", "", ErrNoDraft)
	}
	return s.configurator.Configure(s.draft.Type)
}

// Totals recomputes the live totals of the current draft.
func (s *Session) Totals() (Totals, bool) {
	if s.draft == nil {
		return Totals{}, false
	}
	return s.draft.Items.Totals()
}

// Submit validates a completed form, loads it into the current draft and
// renders the document. Generation is all-or-nothing: on error the draft is
// left untouched.
func (s *Session) Submit(in FormInput) (*models.Document, error) {
	const op = "Submit"

	if s.draft == nil {
		return nil, WrapDocumentError(op, "", ErrNoDraft)
	}
	t := s.draft.Type

	cfg, ok := Lookup(t)
	if !ok {
		s.log.Error().Str("type", string(t)).Msg("No config for document type")
		return nil, WrapDocumentError(op, t, ErrUnknownDocumentType)
	}

	layout, err := s.configurator.Configure(t)
	if err != nil {
		return nil, err
	}
	if err := s.configurator.Validate(layout, in); err != nil {
		return nil, WrapDocumentError(op, t, err)
	}

	s.draft.apply(in, cfg)

	doc := Render(s.draft, cfg)
	doc.GeneratedAt = s.opts.Now()

	log := logger.WithDraft("document-session", s.draft.ID.String(), string(t))
	event := log.Info().
		Str("doc_number", s.draft.Number).
		Int("items", s.draft.Items.Len())
	if doc.Totals != nil {
		event = event.Str("total", doc.Totals.Total)
	}
	event.Msg("Document generated successfully")

	return doc, nil
}
