package builder

import (
	"time"

	"resume-builder/internal/session"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/wizard"
)

// StepMarker is one entry of the progress indicator.
type StepMarker struct {
	Number          int    `json:"number"`
	Label           string `json:"label"`
	Reached         bool   `json:"reached"`
	Current         bool   `json:"current"`
	ConnectorFilled bool   `json:"connectorFilled,omitempty"`
}

// StateResponse is the outward-facing representation of a builder session.
type StateResponse struct {
	SessionID      string           `json:"sessionId"`
	Step           int              `json:"step"`
	StepLabel      string           `json:"stepLabel"`
	Steps          []StepMarker     `json:"steps"`
	ShowNavigation bool             `json:"showNavigation"`
	CanGoBack      bool             `json:"canGoBack"`
	NextLabel      string           `json:"nextLabel,omitempty"`
	Data           model.ResumeData `json:"data"`
	ExpiresAt      time.Time        `json:"expiresAt"`
}

// CopyResponse carries the clipboard text for the client to write.
type CopyResponse struct {
	Text         string          `json:"text"`
	ResetAfterMs int64           `json:"resetAfterMs"`
	Feedback     render.Feedback `json:"feedback"`
}

// CopiedResponse acknowledges a clipboard write the client completed.
type CopiedResponse struct {
	Copied       bool  `json:"copied"`
	ResetAfterMs int64 `json:"resetAfterMs"`
}

func toState(sess session.Session) StateResponse {
	b := sess.Builder()
	markers := wizard.Indicator(b.Step)
	steps := make([]StepMarker, 0, len(markers))
	for _, m := range markers {
		steps = append(steps, StepMarker{
			Number:          m.Number,
			Label:           m.Label,
			Reached:         m.Reached,
			Current:         m.Current,
			ConnectorFilled: m.ConnectorFilled,
		})
	}
	resp := StateResponse{
		SessionID:      sess.ID,
		Step:           int(b.Step),
		StepLabel:      b.Step.Label(),
		Steps:          steps,
		ShowNavigation: b.ShowNavigation(),
		CanGoBack:      b.CanGoBack(),
		Data:           b.Data,
		ExpiresAt:      sess.ExpiresAt,
	}
	if b.ShowNavigation() {
		resp.NextLabel = b.NextLabel()
	}
	return resp
}
