package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() ResumeData {
	return ResumeData{
		FullName: "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "555",
		Address:  "NYC",
		Education: []Education{
			{Degree: "BSc", Institution: "MIT", GraduationDate: "2020"},
			{Degree: "MSc", Institution: "CMU", GraduationDate: "2022"},
		},
		Experience: []WorkExperience{
			{JobTitle: "Engineer", Company: "Acme", StartDate: "2021", EndDate: "Present", Responsibilities: "Built things"},
		},
		Skills: "Go",
	}
}

func TestEmptySeedsOneEntryPerList(t *testing.T) {
	d := Empty()
	require.Len(t, d.Education, 1)
	require.Len(t, d.Experience, 1)
	assert.Equal(t, Education{}, d.Education[0])
	assert.Equal(t, WorkExperience{}, d.Experience[0])
	assert.Empty(t, d.FullName)
}

func TestJSONUsesOriginalFieldNames(t *testing.T) {
	payload, err := json.Marshal(Empty())
	require.NoError(t, err)
	for _, key := range []string{"fullName", "graduationDate", "jobTitle", "responsibilities", "certifications"} {
		assert.Contains(t, string(payload), `"`+key+`"`)
	}
}

func TestWithFieldReplacesOnlyThatField(t *testing.T) {
	orig := sampleResume()
	updated, err := orig.WithField(FieldSummary, "Seasoned engineer")
	require.NoError(t, err)

	assert.Equal(t, "Seasoned engineer", updated.Summary)
	assert.Empty(t, orig.Summary, "original must not be mutated")

	updated.Summary = ""
	assert.Equal(t, orig, updated)
}

func TestWithFieldDoesNotAliasLists(t *testing.T) {
	orig := sampleResume()
	updated, err := orig.WithField(FieldFullName, "John")
	require.NoError(t, err)
	updated.Education[0].Degree = "changed"
	assert.Equal(t, "BSc", orig.Education[0].Degree)
}

func TestWithFieldUnknown(t *testing.T) {
	_, err := Empty().WithField(Field("nickname"), "x")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestAddEducationAppendsBlank(t *testing.T) {
	orig := sampleResume()
	updated := orig.AddEducation()
	require.Len(t, updated.Education, len(orig.Education)+1)
	assert.Equal(t, Education{}, updated.Education[len(updated.Education)-1])
	assert.Len(t, orig.Education, 2)
}

func TestAddExperienceAppendsBlank(t *testing.T) {
	orig := sampleResume()
	updated := orig.AddExperience()
	require.Len(t, updated.Experience, 2)
	assert.Equal(t, WorkExperience{}, updated.Experience[1])
	assert.Len(t, orig.Experience, 1)
}

func TestRemoveEducationPreservesOrder(t *testing.T) {
	orig := sampleResume().AddEducation()
	orig.Education[2].Degree = "PhD"

	updated, err := orig.RemoveEducation(1)
	require.NoError(t, err)
	require.Len(t, updated.Education, 2)
	assert.Equal(t, "BSc", updated.Education[0].Degree)
	assert.Equal(t, "PhD", updated.Education[1].Degree)
	assert.Equal(t, "MSc", orig.Education[1].Degree, "original must not be mutated")
}

func TestRemoveLastEntryRejected(t *testing.T) {
	d := Empty()
	_, err := d.RemoveEducation(0)
	require.ErrorIs(t, err, ErrLastEntry)
	_, err = d.RemoveExperience(0)
	require.ErrorIs(t, err, ErrLastEntry)
}

func TestRemoveOutOfRange(t *testing.T) {
	d := sampleResume()
	_, err := d.RemoveEducation(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = d.RemoveExperience(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestUpdateEducationReplacesEntry(t *testing.T) {
	orig := sampleResume()
	updated, err := orig.UpdateEducation(1, EducationInstitution, "Stanford")
	require.NoError(t, err)
	assert.Equal(t, "Stanford", updated.Education[1].Institution)
	assert.Equal(t, "MSc", updated.Education[1].Degree)
	assert.Equal(t, "CMU", orig.Education[1].Institution)
}

func TestUpdateExperienceReplacesEntry(t *testing.T) {
	orig := sampleResume()
	updated, err := orig.UpdateExperience(0, ExperienceEndDate, "2024")
	require.NoError(t, err)
	assert.Equal(t, "2024", updated.Experience[0].EndDate)
	assert.Equal(t, "Present", orig.Experience[0].EndDate)

	_, err = orig.UpdateExperience(0, ExperienceField("salary"), "1")
	require.ErrorIs(t, err, ErrUnknownField)
	_, err = orig.UpdateExperience(3, ExperienceCompany, "x")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNormalizeReseedsEmptyLists(t *testing.T) {
	d := ResumeData{FullName: "A"}
	n := d.Normalize()
	assert.Len(t, n.Education, 1)
	assert.Len(t, n.Experience, 1)
	assert.Nil(t, d.Education)
}

func TestPresentFilters(t *testing.T) {
	d := sampleResume().AddExperience().AddEducation()
	d.Education[1].Degree = "  "
	assert.Len(t, d.PresentEducation(), 1)
	assert.Len(t, d.PresentExperience(), 1)
	assert.Equal(t, "Engineer", d.PresentExperience()[0].JobTitle)
}
