// Package store owns the guild configuration file: the channel allow-lists
// and the per-guild overrides of the global defaults. One process writes the
// file; the last writer wins.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"ffinfo-bot/model"
)

const backupSuffix = ".backup"

type Store struct {
	path string

	mu   sync.RWMutex
	file model.ConfigFile
}

// New creates a store backed by the given file. A missing or corrupt file is
// logged and replaced by the hardcoded defaults; it never fails construction.
func New(path string) *Store {
	s := &Store{path: path}
	s.file = loadFile(path)
	return s
}

func defaultFile() model.ConfigFile {
	return model.ConfigFile{
		Servers: make(map[string]*model.GuildConfig),
		GlobalSettings: model.GlobalSettings{
			DefaultCooldown:   model.DefaultCooldownSeconds,
			DefaultDailyLimit: model.DefaultDailyLimit,
		},
	}
}

func loadFile(path string) model.ConfigFile {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading config file %s, using defaults: %v", path, err)
		}
		return defaultFile()
	}

	var file model.ConfigFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("Error parsing config file %s, using defaults: %v", path, err)
		return defaultFile()
	}

	// Merge defaults for anything the file does not set
	if file.Servers == nil {
		file.Servers = make(map[string]*model.GuildConfig)
	}
	if file.GlobalSettings.DefaultCooldown == 0 {
		file.GlobalSettings.DefaultCooldown = model.DefaultCooldownSeconds
	}
	if file.GlobalSettings.DefaultDailyLimit == 0 {
		file.GlobalSettings.DefaultDailyLimit = model.DefaultDailyLimit
	}
	return file
}

// Save writes the configuration back to disk. The previous file survives as
// a .backup sibling so a failed write loses at most one generation. Unlike
// load, a save failure is returned to the caller: the admin who changed the
// config needs to know the change may be lost.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		backup := s.path + backupSuffix
		if err := os.Remove(backup); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing stale backup %s: %w", backup, err)
		}
		if err := os.Rename(s.path, backup); err != nil {
			return fmt.Errorf("error backing up config file: %w", err)
		}
	}

	jsonData, err := json.MarshalIndent(s.file, "", "    ")
	if err != nil {
		return fmt.Errorf("error marshalling config to JSON: %w", err)
	}
	if err := os.WriteFile(s.path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file %s: %w", s.path, err)
	}
	return nil
}

// IsChannelAllowed reports whether the info command may run in the channel.
// A guild with no record, or with an empty allow-list, is unrestricted.
func (s *Store) IsChannelAllowed(guildID, channelID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guild, ok := s.file.Servers[guildID]
	if !ok || len(guild.InfoChannels) == 0 {
		return true
	}
	return slices.Contains(guild.InfoChannels, channelID)
}

// AddChannel adds the channel to the guild's allow-list and persists the
// change. It reports whether the channel was newly added.
func (s *Store) AddChannel(guildID, channelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guild := s.guildLocked(guildID)
	if slices.Contains(guild.InfoChannels, channelID) {
		return false, nil
	}
	guild.InfoChannels = append(guild.InfoChannels, channelID)
	return true, s.saveLocked()
}

// RemoveChannel removes the channel from the guild's allow-list and persists
// the change. It reports whether the channel was present.
func (s *Store) RemoveChannel(guildID, channelID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guild, ok := s.file.Servers[guildID]
	if !ok {
		return false, nil
	}
	index := slices.Index(guild.InfoChannels, channelID)
	if index < 0 {
		return false, nil
	}
	guild.InfoChannels = slices.Delete(guild.InfoChannels, index, index+1)
	return true, s.saveLocked()
}

// Channels returns a copy of the guild's allow-list.
func (s *Store) Channels(guildID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guild, ok := s.file.Servers[guildID]
	if !ok {
		return nil
	}
	return slices.Clone(guild.InfoChannels)
}

// SetOverrides updates the guild's overrides (nil arguments are untouched)
// and persists the change. Validation of the values belongs to the caller.
func (s *Store) SetOverrides(guildID string, cooldown, dailyLimit *int, embedColor *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	guild := s.guildLocked(guildID)
	if cooldown != nil {
		guild.Config.Cooldown = cooldown
	}
	if dailyLimit != nil {
		guild.Config.DailyLimit = dailyLimit
	}
	if embedColor != nil {
		guild.Config.EmbedColor = embedColor
	}
	return s.saveLocked()
}

// CooldownSeconds returns the guild's cooldown override, or the global
// default if the guild has none.
func (s *Store) CooldownSeconds(guildID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if guild, ok := s.file.Servers[guildID]; ok && guild.Config.Cooldown != nil {
		return *guild.Config.Cooldown
	}
	return s.file.GlobalSettings.DefaultCooldown
}

// DailyLimit returns the guild's daily-limit override, or the global default
// if the guild has none.
func (s *Store) DailyLimit(guildID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if guild, ok := s.file.Servers[guildID]; ok && guild.Config.DailyLimit != nil {
		return *guild.Config.DailyLimit
	}
	return s.file.GlobalSettings.DefaultDailyLimit
}

// EmbedColorHex returns the guild's embed color override, the global one, or
// "" when neither is configured.
func (s *Store) EmbedColorHex(guildID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if guild, ok := s.file.Servers[guildID]; ok && guild.Config.EmbedColor != nil {
		return *guild.Config.EmbedColor
	}
	return s.file.GlobalSettings.EmbedColor
}

// ShowProfileImage reports whether the profile image fetch is enabled.
// Defaults to on when the file does not say otherwise.
func (s *Store) ShowProfileImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.file.GlobalSettings.ShowProfileImage != nil {
		return *s.file.GlobalSettings.ShowProfileImage
	}
	return true
}

// ShowOutfitImage reports whether the outfit image fetch is enabled.
func (s *Store) ShowOutfitImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.file.GlobalSettings.ShowOutfitImage != nil {
		return *s.file.GlobalSettings.ShowOutfitImage
	}
	return true
}

// guildLocked returns the guild record, creating an empty one on first use.
// Callers must hold the write lock.
func (s *Store) guildLocked(guildID string) *model.GuildConfig {
	guild, ok := s.file.Servers[guildID]
	if !ok {
		guild = &model.GuildConfig{InfoChannels: []string{}}
		s.file.Servers[guildID] = guild
	}
	return guild
}
