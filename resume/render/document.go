// Package render turns ResumeData into its derived artifacts: the styled
// document, the plain-text export and the rasterized image.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/resume/model"
)

// PlaceholderName is shown in the document header while the name is blank.
const PlaceholderName = "Your Name"

//go:embed templates/*.html
var templateFiles embed.FS

var documentTemplates = template.Must(
	template.New("document").Funcs(template.FuncMap{"style": styleFor}).ParseFS(templateFiles, "templates/*.html"),
)

type entryView struct {
	Title        string
	Dates        string
	Organization string
	Body         string
}

type documentView struct {
	Name           string
	Contact        []string
	Summary        string
	Experience     []entryView
	Education      []entryView
	Skills         string
	Certifications string

	Width        int
	PageColor    template.CSS
	HeadingColor template.CSS
	TextColor    template.CSS
	BodyFont     template.CSS
}

func newDocumentView(d model.ResumeData) documentView {
	v := documentView{
		Name:         d.FullName,
		Width:        DocumentWidth,
		PageColor:    template.CSS(PageColor),
		HeadingColor: template.CSS(HeadingColor),
		TextColor:    template.CSS(TextColor),
		BodyFont:     template.CSS(BodyFont),
	}
	if blank(v.Name) {
		v.Name = PlaceholderName
	}
	if !blank(d.Email) {
		v.Contact = append(v.Contact, d.Email)
	}
	if !blank(d.Phone) {
		v.Contact = append(v.Contact, "• "+d.Phone)
	}
	if !blank(d.Address) {
		v.Contact = append(v.Contact, "• "+d.Address)
	}
	if !blank(d.Summary) {
		v.Summary = d.Summary
	}
	for _, e := range d.PresentExperience() {
		dates := e.StartDate
		if !blank(e.EndDate) {
			dates += DateSeparator + e.EndDate
		}
		v.Experience = append(v.Experience, entryView{
			Title:        e.JobTitle,
			Dates:        dates,
			Organization: e.Company,
			Body:         e.Responsibilities,
		})
	}
	for _, e := range d.PresentEducation() {
		v.Education = append(v.Education, entryView{
			Title:        e.Degree,
			Dates:        e.GraduationDate,
			Organization: e.Institution,
		})
	}
	if !blank(d.Skills) {
		v.Skills = d.Skills
	}
	if !blank(d.Certifications) {
		v.Certifications = d.Certifications
	}
	return v
}

// Document renders the resume as an HTML fragment rooted at #resume-document.
func Document(d model.ResumeData) (template.HTML, error) {
	var buf bytes.Buffer
	if err := documentTemplates.ExecuteTemplate(&buf, "document", newDocumentView(d)); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Page renders the document as a standalone HTML page with an opaque white body.
func Page(d model.ResumeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTemplates.ExecuteTemplate(&buf, "page", newDocumentView(d)); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}
