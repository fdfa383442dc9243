package session

import (
	"sync"
	"testing"

	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	snapshot Snapshot
	ok       bool
}

func record(s *Store) (*[]event, func()) {
	var (
		mu     sync.Mutex
		events []event
	)
	unsubscribe := s.Subscribe(func(snapshot Snapshot, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event{snapshot, ok})
	})
	return &events, unsubscribe
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
	assert.Equal(t, models.DefaultPreferences(), s.Preferences())
}

func TestStore_SetUpdateClear(t *testing.T) {
	s := NewStore()
	events, _ := record(s)
	user := models.User{ID: "u1", Email: "ana@veepo.com.br"}

	s.Set(user, "tok")
	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, Snapshot{User: user, Token: "tok"}, got)

	renamed := user
	renamed.Metadata.DisplayName = "Ana"
	s.UpdateUser(renamed)
	got, _ = s.Current()
	assert.Equal(t, "Ana", got.User.Metadata.DisplayName)
	assert.Equal(t, "tok", got.Token)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)

	require.Len(t, *events, 3)
	assert.True(t, (*events)[0].ok)
	assert.Equal(t, "Ana", (*events)[1].snapshot.User.Metadata.DisplayName)
	assert.Equal(t, event{}, (*events)[2])
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	s := NewStore()
	s.Set(models.User{ID: "u1", Email: "a@b.c"}, "tok")

	before, _ := s.Current()
	s.UpdateUser(models.User{ID: "u1", Email: "new@b.c"})

	assert.Equal(t, "a@b.c", before.User.Email)
}

func TestStore_NoOpsDoNotNotify(t *testing.T) {
	s := NewStore()
	events, _ := record(s)

	s.Clear()
	s.UpdateUser(models.User{ID: "u1"})

	assert.Empty(t, *events)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore()
	events, unsubscribe := record(s)

	s.Set(models.User{ID: "u1"}, "tok")
	unsubscribe()
	unsubscribe()
	s.Clear()

	assert.Len(t, *events, 1)
}

func TestStore_PreferencesSurviveSignOut(t *testing.T) {
	s := NewStore()
	prefs := models.Preferences{Theme: models.ThemeLight, Language: models.LanguageEN}

	s.SetPreferences(prefs)
	s.Set(models.User{ID: "u1"}, "tok")
	s.Clear()

	assert.Equal(t, prefs, s.Preferences())
}
