package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvConfigPath = "SPEEDGAME_CONFIG"
	EnvLevelDir   = "SPEEDGAME_LEVEL_DIR"
)

// Env is the subset of the process environment the editor reads.
type Env struct {
	ConfigPath string
	LevelDir   string
}

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment and reads the editor variables. Missing files are not
// an error; variables already set in the environment win.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Env{}, fmt.Errorf("config: load env: %w", err)
	}
	return Env{
		ConfigPath: os.Getenv(EnvConfigPath),
		LevelDir:   os.Getenv(EnvLevelDir),
	}, nil
}
