package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
)

var labelPattern = regexp.MustCompile("^[0-9A-Za-z._-]+$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func LabelValidator(s string) error {
	if !labelPattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid router label, must match pattern %s", s, labelPattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func SimConfigValidator(cfg *SimCfg) error {
	if cfg.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d", cfg.MaxRounds)
	}
	if cfg.UpdateMarker == "" {
		return fmt.Errorf("update_marker must not be empty")
	}
	if cfg.LogPath != "" {
		return PathValidator(cfg.LogPath)
	}
	return nil
}
