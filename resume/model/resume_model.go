package model

import "strings"

// Education represents a single education entry.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduationDate"`
}

// WorkExperience represents a single work history entry.
type WorkExperience struct {
	JobTitle         string `json:"jobTitle"`
	Company          string `json:"company"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Responsibilities string `json:"responsibilities"`
}

// ResumeData is the aggregate record collected by the builder.
//
// Values are replaced, never mutated in place: every edit helper returns a
// new ResumeData whose slices do not alias the receiver's.
type ResumeData struct {
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	Summary        string           `json:"summary"`
	Education      []Education      `json:"education"`
	Experience     []WorkExperience `json:"experience"`
	Skills         string           `json:"skills"`
	Certifications string           `json:"certifications"`
}

// Empty returns an all-blank resume seeded with one education and one experience entry.
func Empty() ResumeData {
	return ResumeData{
		Education:  []Education{{}},
		Experience: []WorkExperience{{}},
	}
}

// Clone returns a deep copy of the resume.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Education = append([]Education(nil), d.Education...)
	out.Experience = append([]WorkExperience(nil), d.Experience...)
	return out
}

// Normalize returns a copy in which empty entry lists are reseeded with a
// single blank entry.
func (d ResumeData) Normalize() ResumeData {
	out := d.Clone()
	if len(out.Education) == 0 {
		out.Education = []Education{{}}
	}
	if len(out.Experience) == 0 {
		out.Experience = []WorkExperience{{}}
	}
	return out
}

// Present reports whether the entry has a non-blank degree.
func (e Education) Present() bool {
	return strings.TrimSpace(e.Degree) != ""
}

// Present reports whether the entry has a non-blank job title.
func (e WorkExperience) Present() bool {
	return strings.TrimSpace(e.JobTitle) != ""
}

// PresentEducation returns the education entries with a degree, in order.
func (d ResumeData) PresentEducation() []Education {
	var out []Education
	for _, e := range d.Education {
		if e.Present() {
			out = append(out, e)
		}
	}
	return out
}

// PresentExperience returns the experience entries with a job title, in order.
func (d ResumeData) PresentExperience() []WorkExperience {
	var out []WorkExperience
	for _, e := range d.Experience {
		if e.Present() {
			out = append(out, e)
		}
	}
	return out
}
