package render

import (
	"fmt"
	"html/template"
	"strings"
)

// ElementStyle captures the inline formatting of one document element.
type ElementStyle struct {
	Bold      bool
	Italic    bool
	Uppercase bool
	SizePx    int
	Color     string
	Font      string
}

const (
	NameColor    = "#1e3a5f"
	HeadingColor = "#1e3a5f"
	TextColor    = "#1a2332"
	BodyColor    = "#333333"
	MetaColor    = "#5a6b7d"
	PageColor    = "#ffffff"

	BodyFont    = "'Source Sans 3', sans-serif"
	DisplayFont = "'Playfair Display', serif"

	NameSize    = 30
	HeadingSize = 14
	BodySize    = 14
	MetaSize    = 12

	// DocumentWidth is the maximum width of the rendered document in CSS pixels.
	DocumentWidth = 800
)

// StyleMap centralizes the formatting of key resume elements.
var StyleMap = map[string]ElementStyle{
	"name": {
		Bold:   true,
		SizePx: NameSize,
		Color:  NameColor,
		Font:   DisplayFont,
	},
	"contact": {
		SizePx: BodySize,
		Color:  MetaColor,
	},
	"sectionHeading": {
		Bold:      true,
		Uppercase: true,
		SizePx:    HeadingSize,
		Color:     HeadingColor,
	},
	"roleLine": {
		Bold:   true,
		SizePx: BodySize,
	},
	"dates": {
		SizePx: MetaSize,
		Color:  MetaColor,
	},
	"meta": {
		Italic: true,
		SizePx: BodySize,
		Color:  MetaColor,
	},
	"body": {
		SizePx: BodySize,
		Color:  BodyColor,
	},
}

// CSS renders the style as an inline style attribute value.
func (s ElementStyle) CSS() template.CSS {
	var parts []string
	if s.Font != "" {
		parts = append(parts, "font-family: "+s.Font)
	}
	if s.SizePx > 0 {
		parts = append(parts, fmt.Sprintf("font-size: %dpx", s.SizePx))
	}
	if s.Bold {
		parts = append(parts, "font-weight: 700")
	}
	if s.Italic {
		parts = append(parts, "font-style: italic")
	}
	if s.Uppercase {
		parts = append(parts, "text-transform: uppercase", "letter-spacing: 0.05em")
	}
	if s.Color != "" {
		parts = append(parts, "color: "+s.Color)
	}
	return template.CSS(strings.Join(parts, "; "))
}

func styleFor(name string) template.CSS {
	return StyleMap[name].CSS()
}
