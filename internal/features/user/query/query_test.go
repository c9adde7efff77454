package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-admin-backend/internal/features/user/models"
)

func sampleViews() []models.Overview {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Overview{
		{
			User:           models.User{ID: "u1", Name: "Alice", Email: "alice@x.com", CreatedAt: base.AddDate(0, 0, -3), Credits: 5},
			InterviewCount: 2,
			Status:         models.StatusActive,
		},
		{
			User:           models.User{ID: "u2", Name: "Bob", Email: "bob@x.com", CreatedAt: base.AddDate(0, 0, -1), Banned: true},
			InterviewCount: 0,
			Status:         models.StatusBanned,
		},
		{
			User:           models.User{ID: "u3", Name: "Carol", Email: "carol@y.org", CreatedAt: base, Credits: 1},
			InterviewCount: 5,
			Status:         models.StatusActive,
		},
		{
			User:           models.User{ID: "u4", Email: "ALICE@corp.io", CreatedAt: base.AddDate(0, 0, -2)},
			InterviewCount: 0,
			Status:         models.StatusRegistered,
		},
	}
}

func TestApply_Defaults(t *testing.T) {
	views := sampleViews()
	got := Apply(views, Default())

	// banned hidden, newest first
	require.Len(t, got, 3)
	assert.Equal(t, "u3", got[0].ID)
	assert.Equal(t, "u4", got[1].ID)
	assert.Equal(t, "u1", got[2].ID)
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	views := sampleViews()
	_ = Apply(views, State{Sort: SortName, Desc: true})

	assert.Equal(t, "u1", views[0].ID)
	assert.Equal(t, "u2", views[1].ID)
	assert.Equal(t, "u3", views[2].ID)
	assert.Equal(t, "u4", views[3].ID)
}

func TestMatches_SearchNameOrEmail(t *testing.T) {
	views := sampleViews()

	state := State{Search: "alice"}
	got := Apply(views, state)

	// matches Alice by name and ALICE@corp.io by email, case-insensitive
	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.Contains(t, ids, "u1")
	assert.Contains(t, ids, "u4")
}

func TestMatches_IncludeBannedNeverShrinks(t *testing.T) {
	views := sampleViews()

	for _, term := range []string{"", "a", "bob", "x.com", "zzz"} {
		without := Apply(views, State{Search: term})
		with := Apply(views, State{Search: term, IncludeBanned: true})
		assert.GreaterOrEqual(t, len(with), len(without), "term %q", term)
	}
}

func TestMatches_NarrowerTermNeverGrows(t *testing.T) {
	views := sampleViews()

	broad := Apply(views, State{Search: "a", IncludeBanned: true})
	narrow := Apply(views, State{Search: "ali", IncludeBanned: true})
	narrower := Apply(views, State{Search: "alice@x", IncludeBanned: true})

	assert.GreaterOrEqual(t, len(broad), len(narrow))
	assert.GreaterOrEqual(t, len(narrow), len(narrower))
}

func TestApply_SortTotalOrder(t *testing.T) {
	views := sampleViews()

	for _, key := range []SortKey{SortCreatedAt, SortName, SortEmail, SortInterviews} {
		asc := Apply(views, State{Sort: key, IncludeBanned: true})
		for i := 1; i < len(asc); i++ {
			assert.LessOrEqual(t, Compare(asc[i-1], asc[i], key), 0, "asc %s at %d", key, i)
		}

		desc := Apply(views, State{Sort: key, Desc: true, IncludeBanned: true})
		for i := 1; i < len(desc); i++ {
			assert.GreaterOrEqual(t, Compare(desc[i-1], desc[i], key), 0, "desc %s at %d", key, i)
		}
	}
}

func TestApply_StableOnTies(t *testing.T) {
	ts := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	views := []models.Overview{
		{User: models.User{ID: "first", CreatedAt: ts}},
		{User: models.User{ID: "second", CreatedAt: ts}},
		{User: models.User{ID: "third", CreatedAt: ts}},
	}

	got := Apply(views, State{Sort: SortCreatedAt})
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
	assert.Equal(t, "third", got[2].ID)

	// ties keep input order in descending runs too
	got = Apply(views, State{Sort: SortCreatedAt, Desc: true})
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
	assert.Equal(t, "third", got[2].ID)
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortCreatedAt, key)

	key, err = ParseSortKey("interviews")
	require.NoError(t, err)
	assert.Equal(t, SortInterviews, key)

	_, err = ParseSortKey("credits")
	assert.Error(t, err)
}

func TestMatches_MissingNameNeverMatches(t *testing.T) {
	v := models.Overview{User: models.User{ID: "u9", Email: "niche@z.dev"}}

	assert.False(t, Matches(v, State{Search: "bob"}))
	assert.True(t, Matches(v, State{Search: "niche"}))
	assert.True(t, Matches(v, State{}))
}
