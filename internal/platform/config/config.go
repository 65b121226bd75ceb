package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Band holds the daily-pace thresholds for one format, in that format's
// canonical unit (pages per day, or minutes per day for audio).
type Band struct {
	Easy    float64 `yaml:"easy"`
	Tight   float64 `yaml:"tight"`
	Maximum float64 `yaml:"maximum"`
}

type PaceFile struct {
	Pace map[string]Band `yaml:"pace"`
}

type Config struct {
	DataDir  string
	DBPath   string
	PacePath string
	Pace     map[string]Band
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".shelfcontrol")
	}
	cfg := Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, "shelfcontrol.db"),
		PacePath: filepath.Join(dataDir, "config.yaml"),
	}
	pace, err := loadPace(cfg.PacePath)
	if err != nil {
		return Config{}, err
	}
	cfg.Pace = pace
	return cfg, nil
}

// DefaultPace returns the built-in urgency bands. The numbers are product
// tuning knobs; config.yaml overrides them per format.
func DefaultPace() map[string]Band {
	return map[string]Band{
		"physical": {Easy: 30, Tight: 60, Maximum: 150},
		"eBook":    {Easy: 30, Tight: 60, Maximum: 150},
		"audio":    {Easy: 60, Tight: 120, Maximum: 480},
	}
}

// loadPace reads the pace bands from path. A missing file is not an error;
// the defaults apply, with any present format entries overriding them.
func loadPace(path string) (map[string]Band, error) {
	bands := DefaultPace()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return bands, nil
		}
		return nil, fmt.Errorf("read pace config: %w", err)
	}
	var file PaceFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode pace config: %w", err)
	}
	for format, band := range file.Pace {
		bands[format] = band
	}
	return bands, nil
}
