package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func parseDocument(t *testing.T, d model.ResumeData) *goquery.Document {
	t.Helper()
	html, err := Document(d)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	require.NoError(t, err)
	return doc
}

func sections(doc *goquery.Document) []string {
	var out []string
	doc.Find("section[data-section]").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("data-section")
		out = append(out, name)
	})
	return out
}

func TestDocumentEmptyResumeShowsPlaceholder(t *testing.T) {
	doc := parseDocument(t, model.Empty())
	assert.Equal(t, PlaceholderName, doc.Find("#resume-document h1").Text())
	assert.Empty(t, sections(doc))
	assert.Equal(t, 0, doc.Find(".resume-contact span").Length())
}

func TestDocumentJaneDoeSections(t *testing.T) {
	doc := parseDocument(t, janeDoe())
	assert.Equal(t, "Jane Doe", doc.Find("h1").Text())
	assert.Equal(t, []string{"experience", "education", "skills"}, sections(doc))

	contact := doc.Find(".resume-contact span")
	require.Equal(t, 3, contact.Length())
	assert.Equal(t, "jane@x.com", contact.Eq(0).Text())
	assert.Equal(t, "• 555", contact.Eq(1).Text())
	assert.Equal(t, "• NYC", contact.Eq(2).Text())

	exp := doc.Find(`section[data-section="experience"] .resume-entry`)
	require.Equal(t, 1, exp.Length())
	assert.Contains(t, exp.Text(), "2021 – Present")
	assert.Contains(t, exp.Text(), "Built things")
}

func TestDocumentDateRangeWithoutEnd(t *testing.T) {
	d := janeDoe()
	d.Experience[0].EndDate = ""
	doc := parseDocument(t, d)
	dates := doc.Find(`section[data-section="experience"] .resume-entry span`).Eq(1).Text()
	assert.Equal(t, "2021", dates)
}

func TestDocumentEscapesUserInput(t *testing.T) {
	d := model.Empty()
	d.FullName = `<script>alert("x")</script>`
	html, err := Document(d)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "&lt;script&gt;")
}

func TestDocumentCertificationsHeading(t *testing.T) {
	d := janeDoe()
	d.Certifications = "PMP"
	doc := parseDocument(t, d)
	heading := doc.Find(`section[data-section="certifications"] h2`).Text()
	assert.Equal(t, "Certifications & Achievements", heading)
}

func TestPageIsStandaloneWithWhiteBackground(t *testing.T) {
	page, err := Page(janeDoe())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(page, []byte("<!DOCTYPE html>")))
	assert.Contains(t, string(page), "background: #ffffff")
	assert.Contains(t, string(page), `id="resume-document"`)
}
