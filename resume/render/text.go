package render

import (
	"strings"

	"resume-builder/resume/model"
)

// Section headings used by the plain-text export.
const (
	HeadingSummary        = "PROFESSIONAL SUMMARY"
	HeadingExperience     = "WORK EXPERIENCE"
	HeadingEducation      = "EDUCATION"
	HeadingSkills         = "SKILLS"
	HeadingCertifications = "CERTIFICATIONS"
)

// DateSeparator joins start and end dates of an experience entry.
const DateSeparator = " – "

// PlainText renders the resume as clipboard-friendly text. Sections without
// qualifying content are omitted entirely.
func PlainText(d model.ResumeData) string {
	var b strings.Builder
	b.WriteString(d.FullName + "\n")
	b.WriteString(d.Email + " | " + d.Phone + " | " + d.Address + "\n\n")

	if !blank(d.Summary) {
		b.WriteString(HeadingSummary + "\n" + d.Summary + "\n\n")
	}

	if exp := d.PresentExperience(); len(exp) > 0 {
		b.WriteString(HeadingExperience + "\n")
		for _, e := range exp {
			b.WriteString(e.JobTitle + " at " + e.Company + " (" + e.StartDate + DateSeparator + e.EndDate + ")\n")
			b.WriteString(e.Responsibilities + "\n\n")
		}
	}

	if edu := d.PresentEducation(); len(edu) > 0 {
		b.WriteString(HeadingEducation + "\n")
		for _, e := range edu {
			b.WriteString(e.Degree + ", " + e.Institution + " (" + e.GraduationDate + ")\n")
		}
		b.WriteString("\n")
	}

	if !blank(d.Skills) {
		b.WriteString(HeadingSkills + "\n" + d.Skills + "\n\n")
	}
	if !blank(d.Certifications) {
		b.WriteString(HeadingCertifications + "\n" + d.Certifications + "\n")
	}
	return b.String()
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
