package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
apps:
  - id: calendar
    icon: icons/calendar.png
  - id: spotify-player
    name: Music
  - id: model_viewer
    disabled: true
  - id: paint
`

func TestParse(t *testing.T) {
	cat, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, cat.Apps, 4)
	assert.Equal(t, "Calendar", cat.Apps[0].Name)
	assert.Equal(t, "Music", cat.Apps[1].Name)
	assert.Equal(t, "Model Viewer", cat.Apps[2].Name)
	assert.Len(t, cat.Enabled(), 3)
}

func TestItemsBindLaunch(t *testing.T) {
	cat, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var launched []string
	items := cat.Items(func(a App) { launched = append(launched, a.ID) })
	require.Len(t, items, 3)
	assert.Equal(t, "calendar", items[0].ID)
	assert.Equal(t, "icons/calendar.png", items[0].IconRef)
	assert.Equal(t, "paint", items[2].ID)

	items[2].OnActivate()
	items[0].OnActivate()
	assert.Equal(t, []string{"paint", "calendar"}, launched)

	assert.Nil(t, cat.Items(nil)[0].OnActivate)
}

func TestParseValidation(t *testing.T) {
	_, err := Parse(strings.NewReader("apps:\n  - id: a\n  - name: nameless\n"))
	require.ErrorIs(t, err, ErrEmptyID)
	assert.Contains(t, err.Error(), "app 1")

	_, err = Parse(strings.NewReader("apps:\n  - id: a\n  - id: b\n  - id: a\n"))
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), `"a"`)

	_, err = Parse(strings.NewReader("apps:\n  - id: a\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	cat, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cat.Items(nil))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.Apps, 4)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "registry: read")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Spotify Player", DisplayName("spotify-player"))
	assert.Equal(t, "Stl Viewer", DisplayName("stl_viewer"))
	assert.Equal(t, "Ai Assistant", DisplayName("ai.assistant"))
}
