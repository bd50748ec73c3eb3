package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid marks a config that parsed but cannot be used
var ErrInvalid = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Match    *MatchConfig
	Fighters *FightersConfig
}

// Loader loads game configuration from TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// decode reads name and rejects keys that match no field
func (l *Loader) decode(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	md, err := toml.Decode(string(data), v)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys %s: %w", name, strings.Join(keys, ", "), ErrInvalid)
	}

	return nil
}

// LoadMatch loads match.toml
func (l *Loader) LoadMatch() (*MatchConfig, error) {
	var cfg MatchConfig
	if err := l.decode("match.toml", &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match.toml: %w", err)
	}
	return &cfg, nil
}

// LoadFighters loads fighters.toml
func (l *Loader) LoadFighters() (*FightersConfig, error) {
	var cfg FightersConfig
	if err := l.decode("fighters.toml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("fighters.toml: %w", err)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (match, fighters)
func (l *Loader) LoadAll() (*GameConfig, error) {
	match, err := l.LoadMatch()
	if err != nil {
		return nil, err
	}

	fighters, err := l.LoadFighters()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Match:    match,
		Fighters: fighters,
	}, nil
}
