// Package cursor implements keyset pagination over ascending numeric ids.
package cursor

import (
	"errors"
	"strconv"
	"strings"
)

const (
	DefaultTake = 10
	MaxTake     = 50
)

var (
	ErrInvalidCursor = errors.New("cursorId must be a positive integer")
	ErrInvalidTake   = errors.New("take must be a positive integer")
)

// Params selects the rows with id > After, at most Take of them.
type Params struct {
	After uint64
	Take  int
}

// Limit is the row count to fetch: one extra row tells whether a next page exists.
func (p Params) Limit() int { return p.Take + 1 }

// New clamps take into [1, MaxTake], using DefaultTake for non-positive values.
func New(after uint64, take int) Params {
	switch {
	case take <= 0:
		take = DefaultTake
	case take > MaxTake:
		take = MaxTake
	}
	return Params{After: after, Take: take}
}

// Parse reads the raw query values. Empty strings fall back to defaults and
// take is clamped to MaxTake.
func Parse(cursorRaw, takeRaw string) (Params, error) {
	var after uint64
	if s := strings.TrimSpace(cursorRaw); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || v == 0 {
			return Params{}, ErrInvalidCursor
		}
		after = v
	}
	take := 0
	if s := strings.TrimSpace(takeRaw); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return Params{}, ErrInvalidTake
		}
		take = v
	}
	return New(after, take), nil
}

// Page is the paginated envelope payload.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *uint64 `json:"nextCursor"`
}

// Build trims rows fetched with Params.Limit down to take and sets NextCursor
// to the id of the last kept row when more rows exist.
func Build[T any](rows []T, take int, idOf func(T) uint64) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	if take <= 0 || len(rows) <= take {
		return Page[T]{Items: rows}
	}
	items := rows[:take]
	next := idOf(items[len(items)-1])
	return Page[T]{Items: items, NextCursor: &next}
}

// Map converts the items of a page, keeping its cursor.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, f(it))
	}
	return Page[U]{Items: out, NextCursor: p.NextCursor}
}
