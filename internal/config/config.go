package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"shengji/internal/domain"
)

// GameConfig is the file-backed table configuration for a match host.
type GameConfig struct {
	PlayerCount          int  `json:"player_count"`
	StartingLevel        int  `json:"starting_level"`
	StartingBanker       int  `json:"starting_banker"`
	DeclareWindowSeconds int  `json:"declare_window_seconds"`
	TurnDurationSeconds  int  `json:"turn_duration_seconds"`
	ThrowsAllowed        bool `json:"throws_allowed"`
	PunishBeatenThrow    bool `json:"punish_beaten_throw"`
	BotAutoFillDelaySecs int  `json:"bot_auto_fill_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil when no
// file has been loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// ToDomain converts the file config into the engine's rule config,
// filling safe defaults for anything unset.
func (c *GameConfig) ToDomain() domain.GameConfig {
	out := domain.DefaultConfig()
	if c == nil {
		return out
	}
	switch c.PlayerCount {
	case 4, 6, 8:
		out.PlayerCount = c.PlayerCount
	}
	if c.StartingLevel >= int(domain.RankTwo) && c.StartingLevel <= int(domain.RankAce) {
		lvl := domain.Rank(c.StartingLevel)
		out.StartingLevels = [2]domain.Rank{lvl, lvl}
	}
	if c.StartingBanker >= 0 && c.StartingBanker < out.PlayerCount {
		out.StartingBanker = c.StartingBanker
	}
	out.ThrowsAllowed = c.ThrowsAllowed
	out.PunishBeatenThrow = c.PunishBeatenThrow
	return out
}

// DeclareWindow returns the declare window in seconds, defaulted.
func (c *GameConfig) DeclareWindow() int {
	if c == nil || c.DeclareWindowSeconds <= 0 {
		return 15
	}
	return c.DeclareWindowSeconds
}

// TurnDuration returns the per-turn deadline in seconds, defaulted.
func (c *GameConfig) TurnDuration() int {
	if c == nil || c.TurnDurationSeconds <= 0 {
		return 30
	}
	return c.TurnDurationSeconds
}
