package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

const defaultConfigName = "advent2020.ini"

type config struct {
	inputDir string // holds <day>.txt inputs
	comma    bool
	verbose  bool
}

// loadConfig reads the INI config at path. If path is empty, the default
// location is used and a missing file there is not an error.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return config{}, nil
		}
		path = filepath.Join(dir, defaultConfigName)
	}
	f, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	cfg, err := parseConfig(f)
	if err != nil {
		return config{}, fmt.Errorf("config %s: %s", path, err)
	}
	return cfg, nil
}

func parseConfig(f ini.File) (config, error) {
	var cfg config
	if dir, ok := f.Get("input", "dir"); ok {
		dir, err := expandHome(dir)
		if err != nil {
			return cfg, err
		}
		cfg.inputDir = dir
	}
	var err error
	if cfg.comma, err = configBool(f, "output", "comma"); err != nil {
		return cfg, err
	}
	if cfg.verbose, err = configBool(f, "output", "verbose"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func configBool(f ini.File, section, key string) (bool, error) {
	s, ok := f.Get(section, key)
	if !ok {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("[%s] %s: bad boolean %q", section, key, s)
	}
	return b, nil
}

func expandHome(dir string) (string, error) {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %q: %s", dir, err)
	}
	return filepath.Join(home, dir[1:]), nil
}
