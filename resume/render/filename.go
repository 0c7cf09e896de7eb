package render

import "strings"

// DefaultBaseName is used for download names when the resume has no name.
const DefaultBaseName = "resume"

// BaseName returns the full name, or "resume" when it is blank. Path
// separators are replaced so the name is always a single path element.
func BaseName(fullName string) string {
	if blank(fullName) {
		return DefaultBaseName
	}
	return strings.NewReplacer("/", "_", "\\", "_").Replace(fullName)
}

// DownloadName is the file name offered for the image export.
func DownloadName(fullName string) string {
	return BaseName(fullName) + ".png"
}

// TextDownloadName is the file name offered for the plain-text export.
func TextDownloadName(fullName string) string {
	return BaseName(fullName) + ".txt"
}
