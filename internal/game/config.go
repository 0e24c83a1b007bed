package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed    = "CAVECRAWLER_SEED"
	EnvProfile = "CAVECRAWLER_PROFILE"
	EnvTool    = "CAVECRAWLER_TOOL"
)

// Config holds game configuration options.
type Config struct {
	// Seed for world generation. A seed of 0 means a random seed will be
	// chosen and reported by the world.
	Seed    int64
	Profile world.Profile
	// Tool is the ID of the starting tool.
	Tool string
}

// DefaultConfig returns a side-view world with a random seed and bare hands.
func DefaultConfig() Config {
	return Config{Profile: world.ProfileSideView, Tool: gamedata.NoTool}
}

// LoadConfig builds a Config from the environment. Unset variables keep their
// defaults; malformed ones are an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvProfile); v != "" {
		profile, err := world.ParseProfile(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvProfile, err)
		}
		cfg.Profile = profile
	}

	if v := os.Getenv(EnvTool); v != "" {
		cfg.Tool = v
	}
	return cfg, nil
}
