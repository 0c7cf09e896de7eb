package session

import (
	"time"

	"resume-builder/resume/model"
	"resume-builder/resume/wizard"
)

// Notice is a one-shot message shown on the next page render.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Failed      bool   `json:"failed,omitempty"`
}

// Session is the server-side state of one browser's builder.
type Session struct {
	ID          string
	Step        wizard.Step
	Data        model.ResumeData
	Notice      *Notice
	CopiedUntil time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ExpiresAt   time.Time
}

// Builder returns the wizard state held by the session.
func (s Session) Builder() wizard.Builder {
	return wizard.Builder{Step: s.Step.Clamp(), Data: s.Data.Normalize()}
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Copied reports whether the "Copied" state is still showing at now.
func (s Session) Copied(now time.Time) bool {
	return now.Before(s.CopiedUntil)
}

func (s Session) clone() Session {
	out := s
	out.Data = s.Data.Clone()
	if s.Notice != nil {
		n := *s.Notice
		out.Notice = &n
	}
	return out
}
