// Package query derives the visible rows of a list page from a
// collection: case-insensitive search, status filter and a stable sort.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Valid reports whether d is Asc or Desc
func (d Direction) Valid() bool {
	return d == Asc || d == Desc
}

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// StatusAll disables the status filter
const StatusAll = "all"

// EmptyReason explains an empty result
type EmptyReason string

const (
	NotEmpty  EmptyReason = ""
	NoRecords EmptyReason = "no_records"
	NoMatches EmptyReason = "no_matches"
)

// SortField orders records by a text key (collated) or a numeric key.
// Exactly one of Text and Number is set.
type SortField[T any] struct {
	Text    func(T) string
	Number  func(T) float64
	Default Direction
}

func (f SortField[T]) compare(c *collate.Collator, a, b T) int {
	if f.Text != nil {
		return c.CompareString(f.Text(a), f.Text(b))
	}
	return cmp.Compare(f.Number(a), f.Number(b))
}

// SortState is the active sort of a list page
type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Spec describes one list page
type Spec[T any] struct {
	// Noun is the plural record name used in empty-state copy
	Noun         string
	SearchFields []func(T) string
	Status       func(T) string
	Sorts        map[string]SortField[T]
	DefaultSort  SortState
}

// Params are the user's current list controls
type Params struct {
	Search    string    `json:"search"`
	Status    string    `json:"status"`
	Sort      string    `json:"sort"`
	Direction Direction `json:"direction"`
	Page      int       `json:"page"`
}

// Result is the derived list
type Result[T any] struct {
	Items   []T         `json:"items"`
	Total   int         `json:"total"`
	Count   int         `json:"count"`
	Sort    SortState   `json:"sort"`
	Empty   EmptyReason `json:"empty,omitempty"`
	Message string      `json:"message,omitempty"`
	Page    int         `json:"page"`
}

// Toggle returns the sort after the user picks field: the same field
// flips direction, a new field starts at its default direction. Unknown
// fields leave the sort unchanged.
func (s Spec[T]) Toggle(current SortState, field string) SortState {
	sf, ok := s.Sorts[field]
	if !ok {
		return current
	}
	if current.Field == field {
		return SortState{Field: field, Direction: current.Direction.Flip()}
	}
	return SortState{Field: field, Direction: sf.Default}
}

// resolveSort picks the sort for params, falling back to the spec's
// default for unknown fields and to the field's default for a missing
// direction
func (s Spec[T]) resolveSort(p Params) SortState {
	sf, ok := s.Sorts[p.Sort]
	if !ok {
		return s.DefaultSort
	}
	if !p.Direction.Valid() {
		return SortState{Field: p.Sort, Direction: sf.Default}
	}
	return SortState{Field: p.Sort, Direction: p.Direction}
}

func (s Spec[T]) matches(item T, needle, status string) bool {
	if status != "" && status != StatusAll && s.Status(item) != status {
		return false
	}
	if needle == "" {
		return true
	}
	for _, field := range s.SearchFields {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

// Apply filters then sorts items. items is not modified.
func Apply[T any](spec Spec[T], items []T, p Params) Result[T] {
	needle := strings.ToLower(p.Search)
	sort := spec.resolveSort(p)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if spec.matches(item, needle, p.Status) {
			filtered = append(filtered, item)
		}
	}

	if sf, ok := spec.Sorts[sort.Field]; ok {
		// a Collator is not safe for concurrent use
		collator := collate.New(language.English)
		slices.SortStableFunc(filtered, func(a, b T) int {
			if sort.Direction == Desc {
				return sf.compare(collator, b, a)
			}
			return sf.compare(collator, a, b)
		})
	}

	result := Result[T]{
		Items: filtered,
		Total: len(items),
		Count: len(filtered),
		Sort:  sort,
		Page:  max(p.Page, 1),
	}

	switch {
	case len(items) == 0:
		result.Empty = NoRecords
		result.Message = fmt.Sprintf("There are no %s yet.", spec.Noun)
	case len(filtered) == 0 && needle != "":
		result.Empty = NoMatches
		result.Message = fmt.Sprintf("No %s matching %q with the selected filters.", spec.Noun, p.Search)
	case len(filtered) == 0:
		result.Empty = NoMatches
		result.Message = fmt.Sprintf("No %s match the selected filters.", spec.Noun)
	}
	return result
}
