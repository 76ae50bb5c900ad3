package herald

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LoadConfig reads session defaults from a TOML file. Programs typically
// merge the result with flag values before calling New:
//
//	cfg, err := herald.LoadConfig(path)
//	if err != nil { ... }
//	cfg.Verbose = cfg.Verbose || *verboseFlag
//	inf := herald.New(cfg)
//
// Only the flag-like fields (mute, quiet, verbose, narrate, prog_name,
// colorscheme, logfile, notify_if_no_tty, flush, culprit_sep) are read
// from the file; streams, policies, and callbacks are code-only.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

// SaveConfig writes the flag-like session defaults to a TOML file,
// creating parent directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(cfg)
}
