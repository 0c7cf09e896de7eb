package model

import "fmt"

// Field names a top-level scalar field of ResumeData.
type Field string

const (
	FieldFullName       Field = "fullName"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldAddress        Field = "address"
	FieldSummary        Field = "summary"
	FieldSkills         Field = "skills"
	FieldCertifications Field = "certifications"
)

// EducationField names a field of an Education entry.
type EducationField string

const (
	EducationDegree         EducationField = "degree"
	EducationInstitution    EducationField = "institution"
	EducationGraduationDate EducationField = "graduationDate"
)

// ExperienceField names a field of a WorkExperience entry.
type ExperienceField string

const (
	ExperienceJobTitle         ExperienceField = "jobTitle"
	ExperienceCompany          ExperienceField = "company"
	ExperienceStartDate        ExperienceField = "startDate"
	ExperienceEndDate          ExperienceField = "endDate"
	ExperienceResponsibilities ExperienceField = "responsibilities"
)

// WithField returns a copy of d with a single scalar field replaced.
func (d ResumeData) WithField(field Field, value string) (ResumeData, error) {
	out := d.Clone()
	switch field {
	case FieldFullName:
		out.FullName = value
	case FieldEmail:
		out.Email = value
	case FieldPhone:
		out.Phone = value
	case FieldAddress:
		out.Address = value
	case FieldSummary:
		out.Summary = value
	case FieldSkills:
		out.Skills = value
	case FieldCertifications:
		out.Certifications = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}

// Value returns the current value of a scalar field.
func (d ResumeData) Value(field Field) string {
	switch field {
	case FieldFullName:
		return d.FullName
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldAddress:
		return d.Address
	case FieldSummary:
		return d.Summary
	case FieldSkills:
		return d.Skills
	case FieldCertifications:
		return d.Certifications
	default:
		return ""
	}
}

// AddEducation appends a blank education entry.
func (d ResumeData) AddEducation() ResumeData {
	out := d.Clone()
	out.Education = append(out.Education, Education{})
	return out
}

// RemoveEducation drops the entry at index i. The last remaining entry
// cannot be removed.
func (d ResumeData) RemoveEducation(i int) (ResumeData, error) {
	if err := checkRemove(i, len(d.Education)); err != nil {
		return d, err
	}
	out := d.Clone()
	out.Education = append(out.Education[:i:i], out.Education[i+1:]...)
	return out, nil
}

// UpdateEducation replaces one field of the entry at index i.
func (d ResumeData) UpdateEducation(i int, field EducationField, value string) (ResumeData, error) {
	if i < 0 || i >= len(d.Education) {
		return d, fmt.Errorf("%w: education[%d]", ErrIndexOutOfRange, i)
	}
	out := d.Clone()
	entry := out.Education[i]
	switch field {
	case EducationDegree:
		entry.Degree = value
	case EducationInstitution:
		entry.Institution = value
	case EducationGraduationDate:
		entry.GraduationDate = value
	default:
		return d, fmt.Errorf("%w: education.%s", ErrUnknownField, field)
	}
	out.Education[i] = entry
	return out, nil
}

// AddExperience appends a blank experience entry.
func (d ResumeData) AddExperience() ResumeData {
	out := d.Clone()
	out.Experience = append(out.Experience, WorkExperience{})
	return out
}

// RemoveExperience drops the entry at index i. The last remaining entry
// cannot be removed.
func (d ResumeData) RemoveExperience(i int) (ResumeData, error) {
	if err := checkRemove(i, len(d.Experience)); err != nil {
		return d, err
	}
	out := d.Clone()
	out.Experience = append(out.Experience[:i:i], out.Experience[i+1:]...)
	return out, nil
}

// UpdateExperience replaces one field of the entry at index i.
func (d ResumeData) UpdateExperience(i int, field ExperienceField, value string) (ResumeData, error) {
	if i < 0 || i >= len(d.Experience) {
		return d, fmt.Errorf("%w: experience[%d]", ErrIndexOutOfRange, i)
	}
	out := d.Clone()
	entry := out.Experience[i]
	switch field {
	case ExperienceJobTitle:
		entry.JobTitle = value
	case ExperienceCompany:
		entry.Company = value
	case ExperienceStartDate:
		entry.StartDate = value
	case ExperienceEndDate:
		entry.EndDate = value
	case ExperienceResponsibilities:
		entry.Responsibilities = value
	default:
		return d, fmt.Errorf("%w: experience.%s", ErrUnknownField, field)
	}
	out.Experience[i] = entry
	return out, nil
}

func checkRemove(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}
	if n <= 1 {
		return ErrLastEntry
	}
	return nil
}
