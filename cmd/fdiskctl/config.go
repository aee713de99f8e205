package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fdiskit/fdiskit/fdisk"
)

// config holds the persistent defaults read from
// ~/.config/fdiskctl/config.toml. All fields are optional; zero values
// keep the library defaults.
type config struct {
	// SizeFormat is "human" or "bytes".
	SizeFormat string `toml:"size_format"`

	// Unit is "sectors" or "cylinders".
	Unit string `toml:"unit"`

	// Wipe requests collision wiping when opening devices read-write.
	Wipe bool `toml:"wipe"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "fdiskctl", "config.toml")
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file is not an error; a missing
// explicit file is.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	var c config
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if os.IsNotExist(err) && !explicit {
			return config{}, nil
		}
		return config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c config) validate() error {
	switch c.SizeFormat {
	case "", "human", "bytes":
	default:
		return fmt.Errorf("unknown size_format %q", c.SizeFormat)
	}
	switch c.Unit {
	case "", "sectors", "cylinders":
	default:
		return fmt.Errorf("unknown unit %q", c.Unit)
	}
	return nil
}

func (c config) sizeFormat() fdisk.SizeFormat {
	if c.SizeFormat == "bytes" {
		return fdisk.SizeBytes
	}
	return fdisk.SizeHuman
}

func (c config) displayUnit() fdisk.DisplayUnit {
	if c.Unit == "cylinders" {
		return fdisk.UnitCylinders
	}
	return fdisk.UnitSectors
}
