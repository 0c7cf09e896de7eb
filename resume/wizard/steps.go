package wizard

// Step identifies one screen of the wizard.
type Step int

const (
	StepPersonal Step = iota
	StepEducation
	StepExperience
	StepSkills
	StepPreview
)

// FirstStep and LastStep bound the step cursor.
const (
	FirstStep = StepPersonal
	LastStep  = StepPreview
)

var stepLabels = [...]string{"Personal", "Education", "Experience", "Skills", "Review"}

// Label returns the short name shown under the step marker.
func (s Step) Label() string {
	if !s.Valid() {
		return ""
	}
	return stepLabels[s]
}

// Valid reports whether s lies within [FirstStep, LastStep].
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Editable reports whether s is one of the form steps.
func (s Step) Editable() bool {
	return s >= FirstStep && s < StepPreview
}

// Clamp forces s into [FirstStep, LastStep].
func (s Step) Clamp() Step {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}

// Marker is one entry of the progress indicator.
type Marker struct {
	Number int
	Label  string
	// Reached is true for the current step and all steps before it.
	Reached bool
	// Current is true only for the active step.
	Current bool
	// HasConnector is false for the final marker.
	HasConnector    bool
	ConnectorFilled bool
}

// Indicator maps the current step to the progress markers.
func Indicator(current Step) []Marker {
	current = current.Clamp()
	out := make([]Marker, 0, len(stepLabels))
	for i, label := range stepLabels {
		s := Step(i)
		out = append(out, Marker{
			Number:          i + 1,
			Label:           label,
			Reached:         s <= current,
			Current:         s == current,
			HasConnector:    i < len(stepLabels)-1,
			ConnectorFilled: s < current,
		})
	}
	return out
}
