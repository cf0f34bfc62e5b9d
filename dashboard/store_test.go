package dashboard

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string
	Name string
	Rank int
	Done bool
}

func (t testItem) ItemID() string { return t.ID }

func newTestStore() *Store[testItem] {
	return NewStore(Config[testItem]{
		Kind: "things",
		Validate: func(t testItem) error {
			if t.Name == "" {
				return Required("name")
			}
			return nil
		},
		View: func(items []testItem) []testItem {
			sort.SliceStable(items, func(i, j int) bool {
				return items[i].Rank < items[j].Rank
			})
			return items
		},
		Policy: PatientMay(OpToggle),
	})
}

func seed(t *testing.T, s *Store[testItem], items ...testItem) {
	t.Helper()
	for _, it := range items {
		_, err := s.Create(Family, it)
		require.NoError(t, err)
	}
}

func TestCreateAppendsAndKeepsPriorOrder(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "first", Rank: 2}, testItem{ID: "b", Name: "second", Rank: 1})

	created, err := s.Create(Family, testItem{ID: "c", Name: "third", Rank: 3})
	require.NoError(t, err)
	assert.Equal(t, "c", created.ID)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
}

func TestCreateValidates(t *testing.T) {
	s := newTestStore()

	_, err := s.Create(Family, testItem{ID: "a"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, ReasonRequired, verr.Reason)
	assert.Zero(t, s.Len())
}

func TestCreateGatedByMode(t *testing.T) {
	s := newTestStore()

	_, err := s.Create(Patient, testItem{ID: "a", Name: "x"})
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Zero(t, s.Len())
}

func TestUpdateReplacesOnlyTarget(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "left"}, testItem{ID: "b", Name: "mid"}, testItem{ID: "c", Name: "right"})

	updated, err := s.Update(Family, "b", func(it testItem) testItem {
		it.Name = "middle"
		return it
	})
	require.NoError(t, err)
	assert.Equal(t, "middle", updated.Name)

	items := s.Items()
	assert.Equal(t, testItem{ID: "a", Name: "left"}, items[0])
	assert.Equal(t, "middle", items[1].Name)
	assert.Equal(t, testItem{ID: "c", Name: "right"}, items[2])
}

func TestUpdateValidatesReplacement(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "keep"})

	_, err := s.Update(Family, "a", func(it testItem) testItem {
		it.Name = ""
		return it
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "keep", got.Name)
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "x"})

	_, err := s.Update(Family, "missing", func(it testItem) testItem { return it })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "x"}, testItem{ID: "b", Name: "y"})

	require.NoError(t, s.Delete(Family, "a"))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	err := s.Delete(Family, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteRefusedInPatientMode(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "x"})

	err := s.Delete(Patient, "a")
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(Family, "a"))
	assert.Zero(t, s.Len())
}

func TestToggleAllowedInPatientMode(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "x"})

	toggled, err := s.Toggle(Patient, "a", func(it testItem) testItem {
		it.Done = !it.Done
		return it
	})
	require.NoError(t, err)
	assert.True(t, toggled.Done)
}

func TestMutationsDoNotChangeSnapshots(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "x"}, testItem{ID: "b", Name: "y"})

	before := s.Items()
	_, err := s.Update(Family, "a", func(it testItem) testItem {
		it.Name = "changed"
		return it
	})
	require.NoError(t, err)
	require.NoError(t, s.Delete(Family, "b"))

	// the snapshot taken before the mutations still shows the old state
	assert.Equal(t, "x", before[0].Name)
	require.Len(t, before, 2)
}

func TestViewIsRecomputedPerCall(t *testing.T) {
	s := newTestStore()
	seed(t, s, testItem{ID: "a", Name: "x", Rank: 2}, testItem{ID: "b", Name: "y", Rank: 1})

	view := s.View()
	assert.Equal(t, "b", view[0].ID)

	_, err := s.Create(Family, testItem{ID: "c", Name: "z", Rank: 0})
	require.NoError(t, err)

	view = s.View()
	require.Len(t, view, 3)
	assert.Equal(t, "c", view[0].ID)

	// the view never reorders the underlying store
	assert.Equal(t, "a", s.Items()[0].ID)
}

func TestReplaceInstallsLoadedRecords(t *testing.T) {
	s := newTestStore()
	s.Replace([]testItem{{ID: "a", Name: "loaded"}})

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "loaded", got.Name)
}
