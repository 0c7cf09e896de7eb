package wizard

import (
	"fmt"
	"net/url"

	"resume-builder/resume/model"
)

// ListKind identifies the repeated section a component edits, if any.
type ListKind string

const (
	ListNone       ListKind = ""
	ListEducation  ListKind = "education"
	ListExperience ListKind = "experience"
)

// FieldSpec describes one input of a step form.
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	InputType   string
	Rows        int
	// Half renders the input in a two-column row.
	Half bool
}

// Multiline reports whether the field renders as a textarea.
func (f FieldSpec) Multiline() bool {
	return f.Rows > 0
}

// BoundField is a FieldSpec paired with its form key and current value.
type BoundField struct {
	FieldSpec
	Key   string
	Value string
}

// Entry is one repeated block of a list step.
type Entry struct {
	Index     int
	Removable bool
	Fields    []BoundField
}

// Component is a stateless form step: a pure view over ResumeData plus the
// function that folds a submitted form back into a new ResumeData.
type Component struct {
	Step        Step
	Title       string
	Description string
	Fields      []FieldSpec
	List        ListKind
	EntryFields []FieldSpec
	AddLabel    string
}

var components = map[Step]*Component{
	StepPersonal: {
		Step:        StepPersonal,
		Title:       "Personal Information",
		Description: "Let's start with your basic details.",
		Fields: []FieldSpec{
			{Name: string(model.FieldFullName), Label: "Full Name", Placeholder: "John Doe"},
			{Name: string(model.FieldEmail), Label: "Email", Placeholder: "john@example.com", InputType: "email", Half: true},
			{Name: string(model.FieldPhone), Label: "Phone", Placeholder: "+1 (555) 000-0000", Half: true},
			{Name: string(model.FieldAddress), Label: "Address", Placeholder: "City, State"},
			{Name: string(model.FieldSummary), Label: "Career Objective / Summary", Placeholder: "A brief summary of your professional goals...", Rows: 3},
		},
	},
	StepEducation: {
		Step:        StepEducation,
		Title:       "Education",
		Description: "Add your educational background.",
		List:        ListEducation,
		EntryFields: []FieldSpec{
			{Name: string(model.EducationDegree), Label: "Degree", Placeholder: "B.Sc. Computer Science"},
			{Name: string(model.EducationInstitution), Label: "Institution", Placeholder: "MIT"},
			{Name: string(model.EducationGraduationDate), Label: "Graduation Date", Placeholder: "May 2023"},
		},
		AddLabel: "Add Education",
	},
	StepExperience: {
		Step:        StepExperience,
		Title:       "Work Experience",
		Description: "Detail your professional experience.",
		List:        ListExperience,
		EntryFields: []FieldSpec{
			{Name: string(model.ExperienceJobTitle), Label: "Job Title", Placeholder: "Software Engineer", Half: true},
			{Name: string(model.ExperienceCompany), Label: "Company", Placeholder: "Google", Half: true},
			{Name: string(model.ExperienceStartDate), Label: "Start Date", Placeholder: "Jan 2021", Half: true},
			{Name: string(model.ExperienceEndDate), Label: "End Date", Placeholder: "Present", Half: true},
			{Name: string(model.ExperienceResponsibilities), Label: "Responsibilities", Placeholder: "Led development of...", Rows: 3},
		},
		AddLabel: "Add Experience",
	},
	StepSkills: {
		Step:        StepSkills,
		Title:       "Skills & Certifications",
		Description: "Highlight your key skills and achievements.",
		Fields: []FieldSpec{
			{Name: string(model.FieldSkills), Label: "Skills (comma-separated)", Placeholder: "React, TypeScript, Project Management, Communication...", Rows: 3},
			{Name: string(model.FieldCertifications), Label: "Certifications & Achievements", Placeholder: "AWS Certified, PMP, Dean's List...", Rows: 3},
		},
	},
}

// ComponentFor returns the form component of an editable step, or nil.
func ComponentFor(s Step) *Component {
	return components[s]
}

// EntryKey is the form key of field name on entry i of a list step.
func EntryKey(list ListKind, i int, name string) string {
	return fmt.Sprintf("%s.%d.%s", list, i, name)
}

// Bound pairs the scalar fields with their current values.
func (c *Component) Bound(data model.ResumeData) []BoundField {
	out := make([]BoundField, 0, len(c.Fields))
	for _, f := range c.Fields {
		out = append(out, BoundField{FieldSpec: f, Key: f.Name, Value: data.Value(model.Field(f.Name))})
	}
	return out
}

// Entries returns the repeated blocks of a list step in display order.
func (c *Component) Entries(data model.ResumeData) []Entry {
	switch c.List {
	case ListEducation:
		out := make([]Entry, 0, len(data.Education))
		for i, e := range data.Education {
			values := map[string]string{
				string(model.EducationDegree):         e.Degree,
				string(model.EducationInstitution):    e.Institution,
				string(model.EducationGraduationDate): e.GraduationDate,
			}
			out = append(out, c.entry(i, len(data.Education) > 1, values))
		}
		return out
	case ListExperience:
		out := make([]Entry, 0, len(data.Experience))
		for i, e := range data.Experience {
			values := map[string]string{
				string(model.ExperienceJobTitle):         e.JobTitle,
				string(model.ExperienceCompany):          e.Company,
				string(model.ExperienceStartDate):        e.StartDate,
				string(model.ExperienceEndDate):          e.EndDate,
				string(model.ExperienceResponsibilities): e.Responsibilities,
			}
			out = append(out, c.entry(i, len(data.Experience) > 1, values))
		}
		return out
	default:
		return nil
	}
}

func (c *Component) entry(i int, removable bool, values map[string]string) Entry {
	fields := make([]BoundField, 0, len(c.EntryFields))
	for _, f := range c.EntryFields {
		fields = append(fields, BoundField{FieldSpec: f, Key: EntryKey(c.List, i, f.Name), Value: values[f.Name]})
	}
	return Entry{Index: i, Removable: removable, Fields: fields}
}

// Apply folds the submitted form into a new ResumeData. Keys absent from the
// form leave the corresponding value unchanged.
func (c *Component) Apply(data model.ResumeData, form url.Values) model.ResumeData {
	out := data.Clone()
	for _, f := range c.Fields {
		if _, ok := form[f.Name]; !ok {
			continue
		}
		if next, err := out.WithField(model.Field(f.Name), form.Get(f.Name)); err == nil {
			out = next
		}
	}
	switch c.List {
	case ListEducation:
		for i := range out.Education {
			for _, f := range c.EntryFields {
				key := EntryKey(c.List, i, f.Name)
				if _, ok := form[key]; !ok {
					continue
				}
				if next, err := out.UpdateEducation(i, model.EducationField(f.Name), form.Get(key)); err == nil {
					out = next
				}
			}
		}
	case ListExperience:
		for i := range out.Experience {
			for _, f := range c.EntryFields {
				key := EntryKey(c.List, i, f.Name)
				if _, ok := form[key]; !ok {
					continue
				}
				if next, err := out.UpdateExperience(i, model.ExperienceField(f.Name), form.Get(key)); err == nil {
					out = next
				}
			}
		}
	}
	return out
}

// AddEntry appends a blank entry to the component's list.
func (c *Component) AddEntry(data model.ResumeData) (model.ResumeData, error) {
	switch c.List {
	case ListEducation:
		return data.AddEducation(), nil
	case ListExperience:
		return data.AddExperience(), nil
	default:
		return data, ErrNoList
	}
}

// RemoveEntry drops entry i of the component's list.
func (c *Component) RemoveEntry(data model.ResumeData, i int) (model.ResumeData, error) {
	switch c.List {
	case ListEducation:
		return data.RemoveEducation(i)
	case ListExperience:
		return data.RemoveExperience(i)
	default:
		return data, ErrNoList
	}
}
