package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ffinfo-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "info_channels.json")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s := New(testPath(t))

	assert.Equal(t, model.DefaultCooldownSeconds, s.CooldownSeconds("guild1"))
	assert.Equal(t, model.DefaultDailyLimit, s.DailyLimit("guild1"))
	assert.True(t, s.IsChannelAllowed("guild1", "channel1"))
	assert.True(t, s.ShowProfileImage())
	assert.True(t, s.ShowOutfitImage())
}

func TestLoadCorruptFileUsesDefaults(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := New(path)
	assert.Equal(t, model.DefaultCooldownSeconds, s.CooldownSeconds("guild1"))
}

func TestLoadMergesDefaults(t *testing.T) {
	path := testPath(t)
	content := `{"servers": {"guild1": {"info_channels": ["c1"], "config": {}}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := New(path)
	assert.Equal(t, model.DefaultCooldownSeconds, s.CooldownSeconds("guild1"))
	assert.Equal(t, model.DefaultDailyLimit, s.DailyLimit("guild1"))
	assert.Equal(t, []string{"c1"}, s.Channels("guild1"))
}

func TestChannelAllowList(t *testing.T) {
	s := New(testPath(t))

	// No configuration at all: everything allowed
	assert.True(t, s.IsChannelAllowed("guild1", "any"))

	added, err := s.AddChannel("guild1", "c1")
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, s.IsChannelAllowed("guild1", "c1"))
	assert.False(t, s.IsChannelAllowed("guild1", "c2"), "unlisted channel should be rejected once a list exists")

	// Idempotent insert
	added, err = s.AddChannel("guild1", "c1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"c1"}, s.Channels("guild1"))

	removed, err := s.RemoveChannel("guild1", "c1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.True(t, s.IsChannelAllowed("guild1", "c2"), "empty list is unrestricted again")

	removed, err = s.RemoveChannel("guild1", "c1")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.RemoveChannel("unknown-guild", "c1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSaveReloadRoundTrip(t *testing.T) {
	path := testPath(t)
	s := New(path)

	_, err := s.AddChannel("guild1", "c1")
	require.NoError(t, err)
	_, err = s.AddChannel("guild1", "c2")
	require.NoError(t, err)

	cooldown := 60
	color := "#FACF24"
	require.NoError(t, s.SetOverrides("guild1", &cooldown, nil, &color))

	// A fresh store against the same file sees the same configuration
	reloaded := New(path)
	assert.Equal(t, []string{"c1", "c2"}, reloaded.Channels("guild1"))
	assert.Equal(t, 60, reloaded.CooldownSeconds("guild1"))
	assert.Equal(t, model.DefaultDailyLimit, reloaded.DailyLimit("guild1"))
	assert.Equal(t, "#FACF24", reloaded.EmbedColorHex("guild1"))
}

func TestSaveKeepsBackup(t *testing.T) {
	path := testPath(t)
	s := New(path)

	_, err := s.AddChannel("guild1", "c1")
	require.NoError(t, err)
	_, err = s.AddChannel("guild1", "c2")
	require.NoError(t, err)

	backup, err := os.ReadFile(path + backupSuffix)
	require.NoError(t, err, "previous version should survive as .backup")

	var file model.ConfigFile
	require.NoError(t, json.Unmarshal(backup, &file))
	assert.Equal(t, []string{"c1"}, file.Servers["guild1"].InfoChannels)
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	path := testPath(t)
	content := `{"servers": {}, "global_settings": {"default_cooldown": 45}, "custom_tool_state": {"x": 1}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := New(path)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "custom_tool_state")
	assert.JSONEq(t, `{"x": 1}`, string(raw["custom_tool_state"]))

	reloaded := New(path)
	assert.Equal(t, 45, reloaded.CooldownSeconds("guild1"))
}

func TestImageToggles(t *testing.T) {
	path := testPath(t)
	content := `{"global_settings": {"show_profile_image": false, "show_outfit_image": true}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := New(path)
	assert.False(t, s.ShowProfileImage())
	assert.True(t, s.ShowOutfitImage())
}
