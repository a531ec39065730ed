package domain

import "fmt"

type Category string

const (
	CategoryAll               Category = "all"
	CategoryProject           Category = "project"
	CategoryNotes             Category = "notes"
	CategoryMisc              Category = "misc"
	CategoryPresentation      Category = "presentation"
	CategoryReferenceMaterial Category = "reference-material"
)

var Categories = []Category{
	CategoryProject,
	CategoryNotes,
	CategoryMisc,
	CategoryPresentation,
	CategoryReferenceMaterial,
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if c == CategoryAll || c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) Valid() bool {
	switch c {
	case CategoryProject, CategoryNotes, CategoryMisc, CategoryPresentation, CategoryReferenceMaterial:
		return true
	}
	return false
}

// Matches reports whether a resource of category other passes a filter on c.
func (c Category) Matches(other Category) bool {
	return c == "" || c == CategoryAll || c == other
}

func (c Category) Label() string {
	switch c {
	case CategoryProject:
		return "PROJECT"
	case CategoryNotes:
		return "NOTES"
	case CategoryMisc:
		return "MISC"
	case CategoryPresentation:
		return "PRESENTATION"
	case CategoryReferenceMaterial:
		return "REFERENCE MATERIAL"
	}
	return ""
}

func (c Category) Icon() string {
	switch c {
	case CategoryProject:
		return "code"
	case CategoryNotes:
		return "book-open"
	case CategoryMisc:
		return "file-text"
	case CategoryPresentation:
		return "star"
	case CategoryReferenceMaterial:
		return "heart"
	}
	return ""
}

func (c Category) Color() string {
	switch c {
	case CategoryProject:
		return "primary"
	case CategoryNotes:
		return "accent"
	case CategoryMisc:
		return "success"
	case CategoryPresentation:
		return "warning"
	case CategoryReferenceMaterial:
		return "destructive"
	}
	return ""
}
