package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/wizard"
)

// DefaultTTL is the idle lifetime of a session.
const DefaultTTL = 2 * time.Hour

// Service owns session lifecycles and applies builder operations to them.
// Every mutation loads the session, derives a new wizard.Builder and saves it
// back; operations on one session are serialized.
type Service struct {
	Repo    Repo
	TTL     time.Duration
	Now     func() time.Time
	NewID   func() string
	Metrics metrics.Recorder

	locks [lockStripes]sync.Mutex
}

const lockStripes = 64

// NewService constructs a Service with defaults applied.
func NewService(repo Repo, ttl time.Duration, rec metrics.Recorder) *Service {
	return &Service{Repo: repo, TTL: ttl, Metrics: rec}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTTL
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) recorder() metrics.Recorder {
	if s.Metrics == nil {
		return metrics.NoopRecorder{}
	}
	return s.Metrics
}

func (s *Service) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// ValidID reports whether id is a well-formed session identifier.
func ValidID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// Start creates a fresh session on the first step with a blank resume.
func (s *Service) Start(ctx context.Context) (Session, error) {
	if s.Repo == nil {
		return Session{}, errors.New("missing dependencies")
	}
	now := s.now()
	b := wizard.New()
	sess := Session{
		ID:        s.newID(),
		Step:      b.Step,
		Data:      b.Data,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Repo.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	s.recorder().IncSessionsCreated()
	telemetry.Info("session.created", map[string]any{"expires_at": sess.ExpiresAt})
	return sess, nil
}

// Get returns a live session. Expired sessions are removed and reported as ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	if s.Repo == nil {
		return Session{}, errors.New("missing dependencies")
	}
	if !ValidID(id) {
		return Session{}, ErrInvalidID
	}
	sess, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.Expired(s.now()) {
		if err := s.Repo.Delete(ctx, id); err != nil {
			telemetry.Error("session.delete_expired_failed", map[string]any{"error": err.Error()})
		}
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Exists reports whether id names a live session.
func (s *Service) Exists(ctx context.Context, id string) bool {
	if s == nil || !ValidID(id) {
		return false
	}
	_, err := s.Get(ctx, id)
	return err == nil
}

// Resolve returns the session for id, starting a new one when id is unknown,
// malformed or expired. created reports whether a new session was started.
func (s *Service) Resolve(ctx context.Context, id string) (sess Session, created bool, err error) {
	if strings.TrimSpace(id) != "" {
		sess, err = s.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidID) {
			return Session{}, false, err
		}
	}
	sess, err = s.Start(ctx)
	if err != nil {
		return Session{}, false, err
	}
	return sess, true, nil
}

// Mutate loads the session, applies fn to it and saves the result. When fn
// fails nothing is saved.
func (s *Service) Mutate(ctx context.Context, id string, fn func(Session) (Session, error)) (Session, error) {
	unlock := s.lock(id)
	defer unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	next, err := fn(sess.clone())
	if err != nil {
		return sess, err
	}
	now := s.now()
	next.ID = sess.ID
	next.CreatedAt = sess.CreatedAt
	next.UpdatedAt = now
	next.ExpiresAt = now.Add(s.ttl())
	if err := s.Repo.Save(ctx, next); err != nil {
		return sess, err
	}
	return next, nil
}

// apply runs a builder transition and stores the resulting step and data.
func (s *Service) apply(ctx context.Context, id, kind string, fn func(wizard.Builder) (wizard.Builder, error)) (Session, error) {
	var from wizard.Step
	out, err := s.Mutate(ctx, id, func(sess Session) (Session, error) {
		from = sess.Step
		b, err := fn(sess.Builder())
		if err != nil {
			return sess, err
		}
		sess.Step = b.Step
		sess.Data = b.Data
		return sess, nil
	})
	if err != nil {
		return out, err
	}
	switch {
	case out.Step > from:
		s.recorder().IncStepTransition("next", int(out.Step))
	case out.Step < from:
		s.recorder().IncStepTransition("prev", int(out.Step))
	}
	if kind != "" {
		s.recorder().IncEdit(kind)
	}
	return out, nil
}

// Next advances the step cursor.
func (s *Service) Next(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, "", func(b wizard.Builder) (wizard.Builder, error) { return b.Next(), nil })
}

// Prev moves the step cursor back.
func (s *Service) Prev(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, "", func(b wizard.Builder) (wizard.Builder, error) { return b.Prev(), nil })
}

// Edit returns from the preview to the first step, keeping the data.
func (s *Service) Edit(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, "", func(b wizard.Builder) (wizard.Builder, error) { return b.SetStep(wizard.FirstStep), nil })
}

// Reset discards the resume and returns to the first step.
func (s *Service) Reset(ctx context.Context, id string) (Session, error) {
	return s.Mutate(ctx, id, func(sess Session) (Session, error) {
		b := wizard.New()
		sess.Step = b.Step
		sess.Data = b.Data
		sess.Notice = nil
		sess.CopiedUntil = time.Time{}
		return sess, nil
	})
}

// Replace swaps the resume wholesale.
func (s *Service) Replace(ctx context.Context, id string, data model.ResumeData) (Session, error) {
	return s.apply(ctx, id, "data", func(b wizard.Builder) (wizard.Builder, error) { return b.Update(data), nil })
}

// SetFields updates scalar fields by name.
func (s *Service) SetFields(ctx context.Context, id string, fields map[string]string) (Session, error) {
	return s.apply(ctx, id, "field", func(b wizard.Builder) (wizard.Builder, error) {
		data := b.Data
		for name, value := range fields {
			next, err := data.WithField(model.Field(name), value)
			if err != nil {
				return b, err
			}
			data = next
		}
		return b.Update(data), nil
	})
}

// AddEducation appends a blank education entry.
func (s *Service) AddEducation(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, "education_add", func(b wizard.Builder) (wizard.Builder, error) {
		return b.Update(b.Data.AddEducation()), nil
	})
}

// RemoveEducation drops education entry i.
func (s *Service) RemoveEducation(ctx context.Context, id string, i int) (Session, error) {
	return s.apply(ctx, id, "education_remove", func(b wizard.Builder) (wizard.Builder, error) {
		data, err := b.Data.RemoveEducation(i)
		if err != nil {
			return b, err
		}
		return b.Update(data), nil
	})
}

// UpdateEducation sets fields on education entry i.
func (s *Service) UpdateEducation(ctx context.Context, id string, i int, fields map[string]string) (Session, error) {
	return s.apply(ctx, id, "education_update", func(b wizard.Builder) (wizard.Builder, error) {
		data := b.Data
		for name, value := range fields {
			next, err := data.UpdateEducation(i, model.EducationField(name), value)
			if err != nil {
				return b, err
			}
			data = next
		}
		return b.Update(data), nil
	})
}

// AddExperience appends a blank experience entry.
func (s *Service) AddExperience(ctx context.Context, id string) (Session, error) {
	return s.apply(ctx, id, "experience_add", func(b wizard.Builder) (wizard.Builder, error) {
		return b.Update(b.Data.AddExperience()), nil
	})
}

// RemoveExperience drops experience entry i.
func (s *Service) RemoveExperience(ctx context.Context, id string, i int) (Session, error) {
	return s.apply(ctx, id, "experience_remove", func(b wizard.Builder) (wizard.Builder, error) {
		data, err := b.Data.RemoveExperience(i)
		if err != nil {
			return b, err
		}
		return b.Update(data), nil
	})
}

// UpdateExperience sets fields on experience entry i.
func (s *Service) UpdateExperience(ctx context.Context, id string, i int, fields map[string]string) (Session, error) {
	return s.apply(ctx, id, "experience_update", func(b wizard.Builder) (wizard.Builder, error) {
		data := b.Data
		for name, value := range fields {
			next, err := data.UpdateExperience(i, model.ExperienceField(name), value)
			if err != nil {
				return b, err
			}
			data = next
		}
		return b.Update(data), nil
	})
}

// Submit applies a step form and its action, as posted by the builder page.
// The submitted field values are saved even when the action itself fails; the
// action error is returned alongside the saved session.
func (s *Service) Submit(ctx context.Context, id string, form url.Values, action wizard.Action) (Session, error) {
	var actionErr error
	out, err := s.apply(ctx, id, "form_"+string(action.Kind), func(b wizard.Builder) (wizard.Builder, error) {
		next, err := b.Submit(form, action)
		if err != nil {
			actionErr = fmt.Errorf("submit %s: %w", action, err)
		}
		return next, nil
	})
	if err != nil {
		return out, err
	}
	return out, actionErr
}

// SetNotice stores a one-shot notice for the next page render.
func (s *Service) SetNotice(ctx context.Context, id string, n Notice) error {
	_, err := s.Mutate(ctx, id, func(sess Session) (Session, error) {
		sess.Notice = &n
		return sess, nil
	})
	return err
}

// TakeNotice returns and clears the pending notice.
func (s *Service) TakeNotice(ctx context.Context, id string) (*Notice, error) {
	var taken *Notice
	_, err := s.Mutate(ctx, id, func(sess Session) (Session, error) {
		taken = sess.Notice
		sess.Notice = nil
		return sess, nil
	})
	return taken, err
}

// MarkCopied shows the "Copied" state for d. A non-nil n becomes the pending notice.
func (s *Service) MarkCopied(ctx context.Context, id string, d time.Duration, n *Notice) (Session, error) {
	return s.Mutate(ctx, id, func(sess Session) (Session, error) {
		sess.CopiedUntil = s.now().Add(d)
		if n != nil {
			sess.Notice = n
		}
		return sess, nil
	})
}

// Copied reports whether the session's "Copied" state is showing now.
func (s *Service) Copied(sess Session) bool {
	return sess.Copied(s.now())
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	if s.Repo == nil {
		return 0, errors.New("missing dependencies")
	}
	removed, err := s.Repo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	s.recorder().AddSessionsExpired(removed)
	return removed, nil
}
