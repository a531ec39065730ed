package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.True(t, Valid(id))
		require.Regexp(t, `^user_[0-9a-f]{20}$`, id)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("user_abc123"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("has space"))
	assert.False(t, Valid("tab\t"))
	assert.False(t, Valid("ünïcode"))
	assert.False(t, Valid(string(make([]byte, 65))))
}

func TestProvider_GetOrCreate(t *testing.T) {
	tests := []struct {
		name      string
		prepare   func(store *MockStore)
		expected  string
		generated bool
	}{
		{
			name: "Existing session is returned",
			prepare: func(store *MockStore) {
				store.EXPECT().Get().Return("user_existing", nil)
			},
			expected: "user_existing",
		},
		{
			name: "New session is persisted",
			prepare: func(store *MockStore) {
				store.EXPECT().Get().Return("", nil)
				store.EXPECT().Set("user_generated").Return(nil)
			},
			expected:  "user_generated",
			generated: true,
		},
		{
			name: "Unreadable store falls back to ephemeral id",
			prepare: func(store *MockStore) {
				store.EXPECT().Get().Return("", errors.New("storage disabled"))
			},
			expected:  "user_generated",
			generated: true,
		},
		{
			name: "Unwritable store still returns the new id",
			prepare: func(store *MockStore) {
				store.EXPECT().Get().Return("", nil)
				store.EXPECT().Set("user_generated").Return(errors.New("quota exceeded"))
			},
			expected:  "user_generated",
			generated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockStore(ctrl)
			tt.prepare(store)

			generated := false
			p := NewProvider(store)
			p.newID = func() string {
				generated = true
				return "user_generated"
			}

			assert.Equal(t, tt.expected, p.GetOrCreate())
			assert.Equal(t, tt.generated, generated)
		})
	}
}

func TestProvider_StableAcrossCalls(t *testing.T) {
	p := NewProvider(&MemoryStore{})

	first := p.GetOrCreate()
	assert.Equal(t, first, p.GetOrCreate())
	assert.Equal(t, first, p.GetOrCreate())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	store := NewFileStore(path)

	id, err := store.Get()
	require.NoError(t, err)
	assert.Empty(t, id)

	first := NewProvider(store).GetOrCreate()
	second := NewProvider(NewFileStore(path)).GetOrCreate()
	assert.Equal(t, first, second)
}
