// Package config loads the daemon configuration from the datavista home
// directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultDirName = ".datavista"

	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir       = "data_dir"
	cfgKeyRemoteURL     = "remote.url"
	cfgKeyRemoteToken   = "remote.token"
	cfgKeySyncInterval  = "sync.interval"
	cfgKeyServerAddress = "server.address"
	cfgKeyServerPort    = "server.port"
	cfgKeyDebug         = "debug"
)

type Config struct {
	// DataDir holds the dataset store and sync queue database files.
	DataDir string
	// RemoteURL is the root of the remote dataset API.
	RemoteURL string
	// RemoteToken authenticates against the remote API.
	RemoteToken string
	// SyncInterval is the periodic drain timer in seconds.
	SyncInterval int
	// ServerAddress/ServerPort is where the local UI API listens.
	ServerAddress string
	ServerPort    int
	Debug         bool
}

func (c *Config) validate() error {
	var errGrp []error
	if c.RemoteURL == "" {
		errGrp = append(errGrp, errors.New("remote url cannot be empty"))
	}
	if c.SyncInterval <= 0 {
		errGrp = append(errGrp, errors.New("sync interval must be greater than 0"))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errGrp = append(errGrp, errors.New("server port must be between 1 and 65535"))
	}
	return errors.Join(errGrp...)
}

// HomeDir returns the datavista directory under the user's home.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}

// Load reads config.yaml from dir, falling back to defaults for anything
// unset. A missing file is not an error. Every key can also come from the
// environment with the DATAVISTA_ prefix.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataDir, dir)
	v.SetDefault(cfgKeyRemoteURL, "http://localhost:3000/api")
	v.SetDefault(cfgKeySyncInterval, 30)
	v.SetDefault(cfgKeyServerAddress, "127.0.0.1")
	v.SetDefault(cfgKeyServerPort, 8421)
	v.SetDefault(cfgKeyDebug, false)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix("DATAVISTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DataDir:       v.GetString(cfgKeyDataDir),
		RemoteURL:     v.GetString(cfgKeyRemoteURL),
		RemoteToken:   v.GetString(cfgKeyRemoteToken),
		SyncInterval:  v.GetInt(cfgKeySyncInterval),
		ServerAddress: v.GetString(cfgKeyServerAddress),
		ServerPort:    v.GetInt(cfgKeyServerPort),
		Debug:         v.GetBool(cfgKeyDebug),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
