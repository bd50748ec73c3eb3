package settings

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func createTestStore(items *memStore) *Store {
	return NewStore(items, log.New(io.Discard, "", 0))
}

func TestStore_Load(t *testing.T) {
	defaults := Settings{Camera: "follow"}

	tests := []struct {
		name  string
		items *memStore
		want  Settings
	}{
		{"nothing saved", &memStore{}, defaults},
		{"load error", &memStore{loadErr: errors.New("disk gone")}, defaults},
		{"corrupt", &memStore{items: map[string][]byte{"settings": []byte("{")}}, defaults},
		{"partial keeps defaults", &memStore{items: map[string][]byte{"settings": []byte(`{"showAreas":true}`)}},
			Settings{ShowAreas: true, Camera: "follow"}},
		{"full", &memStore{items: map[string][]byte{"settings": []byte(`{"showAreas":true,"camera":"none","fullscreen":true}`)}},
			Settings{ShowAreas: true, Camera: "none", Fullscreen: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, createTestStore(tt.items).Load(defaults))
		})
	}
}

func TestStore_SaveRoundTrip(t *testing.T) {
	items := &memStore{}
	s := createTestStore(items)

	require.NoError(t, s.Save(Settings{ShowAreas: true, Camera: "none"}))
	assert.JSONEq(t, `{"showAreas":true,"camera":"none","fullscreen":false}`, string(items.items["settings"]))
	assert.Equal(t, Settings{ShowAreas: true, Camera: "none"}, s.Load(Settings{}))
}

func TestStore_SaveError(t *testing.T) {
	s := createTestStore(&memStore{saveErr: errors.New("read-only")})
	assert.Error(t, s.Save(Settings{}))
}

func TestStore_Nil(t *testing.T) {
	var s *Store
	assert.Equal(t, Settings{Camera: "follow"}, s.Load(Settings{Camera: "follow"}))
	assert.NoError(t, s.Save(Settings{}))
}
