// Package wizard holds the step cursor and the form step components of the
// resume builder.
package wizard

import "resume-builder/resume/model"

// Builder is the orchestrator state: the step cursor plus the resume being built.
// Methods return a new Builder; the receiver is left untouched.
type Builder struct {
	Step Step             `json:"step"`
	Data model.ResumeData `json:"data"`
}

// New returns a builder on the first step with an all-blank resume.
func New() Builder {
	return Builder{Step: FirstStep, Data: model.Empty()}
}

// Next advances the cursor, stopping at the preview.
func (b Builder) Next() Builder {
	b.Step = (b.Step + 1).Clamp()
	return b
}

// Prev moves the cursor back, stopping at the first step.
func (b Builder) Prev() Builder {
	b.Step = (b.Step - 1).Clamp()
	return b
}

// SetStep jumps to the given step, clamped to the valid range.
func (b Builder) SetStep(s Step) Builder {
	b.Step = s.Clamp()
	return b
}

// Update replaces the resume wholesale.
func (b Builder) Update(data model.ResumeData) Builder {
	b.Data = data.Normalize()
	return b
}

// Component returns the form component for the current step, or nil on the preview.
func (b Builder) Component() *Component {
	return ComponentFor(b.Step)
}

// ShowNavigation reports whether Previous/Next controls are rendered.
func (b Builder) ShowNavigation() bool {
	return b.Step.Editable()
}

// CanGoBack reports whether the Previous control is enabled.
func (b Builder) CanGoBack() bool {
	return b.Step > FirstStep && b.Step.Editable()
}

// NextLabel is the caption of the forward control.
func (b Builder) NextLabel() string {
	if b.Step == StepSkills {
		return "Preview Resume"
	}
	return "Next"
}
