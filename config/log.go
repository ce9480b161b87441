package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// SlogLevel maps the configured level name to a slog level.
// An empty name is info.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	name := strings.TrimSpace(l.Level)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}
