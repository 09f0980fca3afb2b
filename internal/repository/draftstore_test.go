package repository

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/draft"
)

func tempStore(t *testing.T) *DraftStore {
	t.Helper()
	store, err := OpenDraftStore(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDraftStoreRoundTrip(t *testing.T) {
	store := tempStore(t)

	d := &draft.Draft{
		ID:               uuid.New(),
		ImagePath:        "r1.jpg",
		StoreName:        "스타벅스",
		Items:            []draft.Item{{Name: "아메리카노", Quantity: 2, Price: 4500}},
		TotalCandidates:  []draft.TotalCandidate{{Label: "합계", Value: 9000, Score: 5, Source: "heuristic_line"}},
		ValidationStatus: constants.StatusOK,
		Events:           []draft.Event{{Stage: "VALIDATION", Message: "Validation successful"}},
	}
	require.NoError(t, store.Put(d))

	got, err := store.Get(d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, d.StoreName, got.StoreName)
	assert.Equal(t, d.Items, got.Items)
	assert.Equal(t, d.ValidationStatus, got.ValidationStatus)
}

func TestDraftStoreGetMissing(t *testing.T) {
	store := tempStore(t)
	got, err := store.Get(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftStoreList(t *testing.T) {
	store := tempStore(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Put(&draft.Draft{ID: uuid.New(), ImagePath: "r.jpg"}))
	}
	drafts, err := store.List()
	require.NoError(t, err)
	assert.Len(t, drafts, 3)
}
