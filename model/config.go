package model

import "encoding/json"

// Hardcoded fallbacks used when the config file is missing or corrupt.
const (
	DefaultCooldownSeconds = 30
	DefaultDailyLimit      = 30
	DefaultEmbedColor      = 0x5865F2 // Discord Blurple
)

// GuildOverrides 定义了单个服务器对全局默认值的覆盖
type GuildOverrides struct {
	Cooldown   *int    `json:"cooldown,omitempty"`
	DailyLimit *int    `json:"daily_limit,omitempty"`
	EmbedColor *string `json:"embed_color,omitempty"`
}

// GuildConfig 定义了每个服务器的配置
type GuildConfig struct {
	InfoChannels []string       `json:"info_channels"`
	Config       GuildOverrides `json:"config"`
}

// GlobalSettings holds the process-wide defaults applied when a guild has
// no override of its own.
type GlobalSettings struct {
	DefaultAllChannels bool   `json:"default_all_channels"`
	DefaultCooldown    int    `json:"default_cooldown"`
	DefaultDailyLimit  int    `json:"default_daily_limit"`
	EmbedColor         string `json:"embed_color,omitempty"`
	ShowProfileImage   *bool  `json:"show_profile_image,omitempty"`
	ShowOutfitImage    *bool  `json:"show_outfit_image,omitempty"`
}

// ConfigFile is the on-disk JSON document: per-guild records under "servers"
// plus the global defaults. Top-level keys written by other tools are kept in
// Extra so a load/save round-trip does not drop them.
type ConfigFile struct {
	Servers        map[string]*GuildConfig `json:"servers"`
	GlobalSettings GlobalSettings          `json:"global_settings"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *ConfigFile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if servers, ok := raw["servers"]; ok {
		if err := json.Unmarshal(servers, &c.Servers); err != nil {
			return err
		}
		delete(raw, "servers")
	}
	if settings, ok := raw["global_settings"]; ok {
		if err := json.Unmarshal(settings, &c.GlobalSettings); err != nil {
			return err
		}
		delete(raw, "global_settings")
	}
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

func (c ConfigFile) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Extra)+2)
	for key, value := range c.Extra {
		out[key] = value
	}
	out["servers"] = c.Servers
	out["global_settings"] = c.GlobalSettings
	return json.Marshal(out)
}
