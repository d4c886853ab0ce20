// Package settings resolves runtime options from flags, SUC_* environment
// variables and an optional settings file, in that order of precedence.
package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ImSingee/go-ex/ee"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aboe026/software-update-checker-sub000/internal/config"
)

const (
	KeyConfig         = "config"
	KeyHTTPTimeout    = "http-timeout"
	KeySelfEntrypoint = "self-entrypoint"
	KeyProgress       = "progress"

	SettingsFile = "settings.yaml"
	envPrefix    = "SUC"

	DefaultHTTPTimeout = 30 * time.Second
)

type Settings struct {
	// ConfigPath is the software definitions file
	ConfigPath     string
	HTTPTimeout    time.Duration
	SelfEntrypoint string
	Progress       bool
}

// Load reads settings from settingsFile (may be empty or missing), the
// environment and the flags in flags that share a key name.
func Load(flags *pflag.FlagSet, settingsFile string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyProgress, true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := mergeFile(v, settingsFile); err != nil {
		return nil, err
	}

	if flags != nil {
		for _, key := range []string{KeyConfig, KeyHTTPTimeout, KeySelfEntrypoint, KeyProgress} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, ee.Wrapf(err, "cannot bind flag --%s", key)
				}
			}
		}
	}

	s := &Settings{
		ConfigPath:     v.GetString(KeyConfig),
		HTTPTimeout:    v.GetDuration(KeyHTTPTimeout),
		SelfEntrypoint: v.GetString(KeySelfEntrypoint),
		Progress:       v.GetBool(KeyProgress),
	}

	if s.ConfigPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		s.ConfigPath = p
	}

	return s, nil
}

// DefaultFile is settings.yaml next to the default definitions file
func DefaultFile() string {
	p, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(p), SettingsFile)
}

func mergeFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if config.IsNotExist(err) {
			return nil
		}
		return ee.Wrapf(err, "cannot read settings file %s", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return ee.Wrapf(err, "cannot parse settings file %s", path)
	}
	return nil
}
