package config

import (
	"errors"
	"fmt"
)

// Settings is the process configuration shared by the entry points.
type Settings struct {
	SSHHost     string
	SSHPort     string
	HostKeyPath string
	LogLevel    string
	LogFile     string
	StarCount   int
	StarWorkers int
	Seed        uint64 // zero picks a random seed per session
}

// ErrInvalidSettings is wrapped by every validation failure in Load.
var ErrInvalidSettings = errors.New("invalid settings")

// Load reads Settings from ATS_* environment variables.
func Load() (Settings, error) {
	s := Settings{
		SSHHost:     GetEnv("ATS_SSH_HOST", "0.0.0.0"),
		SSHPort:     GetEnv("ATS_SSH_PORT", "2222"),
		HostKeyPath: GetEnv("ATS_HOST_KEY", ".ssh/id_ed25519"),
		LogLevel:    GetEnv("ATS_LOG_LEVEL", "info"),
		LogFile:     GetEnv("ATS_LOG_FILE", ""),
	}

	var err error
	if s.StarCount, err = GetEnvInt("ATS_STAR_COUNT", 2000); err != nil {
		return s, err
	}
	if s.StarWorkers, err = GetEnvInt("ATS_STAR_WORKERS", 4); err != nil {
		return s, err
	}
	seed, err := GetEnvInt("ATS_SEED", 0)
	if err != nil {
		return s, err
	}

	switch {
	case s.StarCount < 0:
		return s, fmt.Errorf("%w: ATS_STAR_COUNT must not be negative, got %d", ErrInvalidSettings, s.StarCount)
	case s.StarWorkers < 1:
		return s, fmt.Errorf("%w: ATS_STAR_WORKERS must be at least 1, got %d", ErrInvalidSettings, s.StarWorkers)
	case seed < 0:
		return s, fmt.Errorf("%w: ATS_SEED must not be negative, got %d", ErrInvalidSettings, seed)
	}
	s.Seed = uint64(seed)
	return s, nil
}
