package domain

import "strings"

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

var Sexes = []string{string(SexMale), string(SexFemale)}

// SexLabel returns the label shown in forms and lists.
func SexLabel(s string) string {
	switch Sex(s) {
	case SexFemale:
		return "Mujer"
	case SexMale:
		return "Hombre"
	}
	return s
}

// ParseSex accepts either the stored value or the form label ("Hombre", "Mujer").
func ParseSex(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == string(SexMale) || v == "hombre":
		return string(SexMale)
	case v == string(SexFemale) || strings.HasPrefix(v, "muj"):
		return string(SexFemale)
	}
	return v
}

const (
	MinAge = 0
	MaxAge = 120
)

// Order keys accepted by the repositories' List operations.
const (
	OrderByName      = "name"
	OrderByID        = "id"
	OrderByCreatedAt = "created_at"
	OrderByUpdatedAt = "updated_at"
)

// ListItem is a rendered row of a list view: identity plus its display label.
type ListItem struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
