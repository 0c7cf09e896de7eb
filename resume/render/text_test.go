package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func janeDoe() model.ResumeData {
	return model.ResumeData{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "555",
		Address:  "NYC",
		Education: []model.Education{
			{Degree: "BSc", Institution: "MIT", GraduationDate: "2020"},
		},
		Experience: []model.WorkExperience{
			{JobTitle: "Engineer", Company: "Acme", StartDate: "2021", EndDate: "Present", Responsibilities: "Built things"},
		},
		Skills: "Go",
	}
}

func TestPlainTextEmptyResume(t *testing.T) {
	assert.Equal(t, "\n |  | \n\n", PlainText(model.Empty()))
}

func TestPlainTextJaneDoe(t *testing.T) {
	got := PlainText(janeDoe())
	want := "Jane Doe\n" +
		"jane@x.com | 555 | NYC\n\n" +
		"WORK EXPERIENCE\n" +
		"Engineer at Acme (2021 – Present)\n" +
		"Built things\n\n" +
		"EDUCATION\n" +
		"BSc, MIT (2020)\n\n" +
		"SKILLS\n" +
		"Go\n\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, HeadingSummary)
	assert.NotContains(t, got, HeadingCertifications)
}

func TestPlainTextAllSections(t *testing.T) {
	d := janeDoe()
	d.Summary = "Builder of systems"
	d.Certifications = "CKA"
	got := PlainText(d)

	order := []string{HeadingSummary, HeadingExperience, HeadingEducation, HeadingSkills, HeadingCertifications}
	last := -1
	for _, heading := range order {
		idx := strings.Index(got, heading)
		require.Greater(t, idx, last, heading)
		last = idx
	}
	assert.True(t, strings.HasSuffix(got, "CERTIFICATIONS\nCKA\n"))
}

func TestPlainTextOmitsSectionsWithoutPresentEntries(t *testing.T) {
	d := janeDoe()
	d.Experience = []model.WorkExperience{{Company: "Acme", StartDate: "2021"}, {}}
	d.Education = []model.Education{{Institution: "MIT"}}
	got := PlainText(d)
	assert.NotContains(t, got, HeadingExperience)
	assert.NotContains(t, got, HeadingEducation)
	assert.NotContains(t, got, "Acme")
}

func TestPlainTextSkipsBlankEntriesInOrder(t *testing.T) {
	d := janeDoe()
	d.Experience = []model.WorkExperience{
		{},
		{JobTitle: "Lead", Company: "Beta"},
		{Company: "skipped"},
		{JobTitle: "Intern", Company: "Gamma"},
	}
	got := PlainText(d)
	assert.Less(t, strings.Index(got, "Lead at Beta"), strings.Index(got, "Intern at Gamma"))
	assert.NotContains(t, got, "skipped")
}
