package query

import (
	"fmt"
	"sort"
	"strings"

	"interview-admin-backend/internal/features/user/models"
)

// SortKey selects the comparator for the listing.
type SortKey string

const (
	SortCreatedAt  SortKey = "created_at"
	SortName       SortKey = "name"
	SortEmail      SortKey = "email"
	SortInterviews SortKey = "interviews"
)

// State is the full query state of the user listing: search term, sort
// key and direction, and whether banned accounts are shown.
type State struct {
	Search        string
	Sort          SortKey
	Desc          bool
	IncludeBanned bool
}

// Default returns the initial listing state: newest first, banned hidden.
func Default() State {
	return State{Sort: SortCreatedAt, Desc: true}
}

// ParseSortKey validates an externally supplied sort key. An empty
// string falls back to the default key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortCreatedAt, SortName, SortEmail, SortInterviews:
		return SortKey(s), nil
	case "":
		return SortCreatedAt, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// Apply filters then sorts the aggregated views. The input slice is
// left untouched; a fresh slice comes back. Records comparing equal
// keep their input order.
func Apply(views []models.Overview, state State) []models.Overview {
	out := make([]models.Overview, 0, len(views))
	for _, v := range views {
		if Matches(v, state) {
			out = append(out, v)
		}
	}

	key := state.Sort
	if key == "" {
		key = SortCreatedAt
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(out[i], out[j], key)
		if state.Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Matches reports whether a view passes the filter. The search term
// must occur in the name or the email, case-insensitively; an empty
// term matches everything. Banned accounts only pass when
// IncludeBanned is set.
func Matches(v models.Overview, state State) bool {
	if v.Banned && !state.IncludeBanned {
		return false
	}
	if state.Search == "" {
		return true
	}
	term := strings.ToLower(state.Search)
	return strings.Contains(strings.ToLower(v.Name), term) ||
		strings.Contains(strings.ToLower(v.Email), term)
}

// Compare orders two views under the given key, returning -1, 0 or 1.
// Descending callers flip the sign.
func Compare(a, b models.Overview, key SortKey) int {
	switch key {
	case SortName:
		return strings.Compare(a.Name, b.Name)
	case SortEmail:
		return strings.Compare(a.Email, b.Email)
	case SortInterviews:
		switch {
		case a.InterviewCount < b.InterviewCount:
			return -1
		case a.InterviewCount > b.InterviewCount:
			return 1
		}
		return 0
	default:
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			return -1
		case a.CreatedAt.After(b.CreatedAt):
			return 1
		}
		return 0
	}
}
