package cache

import (
	"testing"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	saved := []model.ChatMessage{
		{ID: "1", Role: model.ChatRoleUser, Content: "hello"},
		{ID: "2", Role: model.ChatRoleBot, Content: "hi there"},
	}
	require.NoError(t, store.Save(KindChatHistory, "user-1", saved))

	var loaded []model.ChatMessage
	store.Load(KindChatHistory, "user-1", &loaded)
	assert.Equal(t, saved, loaded)
}

func TestLoad_AbsentKeyLeavesDefault(t *testing.T) {
	store := openTestStore(t)

	var loaded []model.Goal
	store.Load(KindGoals, "nobody", &loaded)
	assert.Nil(t, loaded)
}

func TestLoad_CorruptEntryLeavesDefault(t *testing.T) {
	store := openTestStore(t)

	err := store.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(KindProgress, "user-1"), []byte("{not json"))
	})
	require.NoError(t, err)

	var loaded []model.ProgressEntry
	store.Load(KindProgress, "user-1", &loaded)
	assert.Nil(t, loaded)
}

func TestKeysAreScopedByUser(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(KindGoals, "user-1", []string{"a"}))
	require.NoError(t, store.Save(KindGoals, "user-2", []string{"b"}))

	var first, second []string
	store.Load(KindGoals, "user-1", &first)
	store.Load(KindGoals, "user-2", &second)
	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"b"}, second)
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(KindChatHistory, "user-1", []string{"msg"}))
	require.NoError(t, store.Clear(KindChatHistory, "user-1"))

	var loaded []string
	store.Load(KindChatHistory, "user-1", &loaded)
	assert.Nil(t, loaded)

	// clear d'une clé absente ne remonte pas d'erreur
	assert.NoError(t, store.Clear(KindChatHistory, "user-1"))
}
