package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//
// Config holds everything the demo binary needs to run: the API credentials and the market-data
// stream settings. The client library itself never loads configuration – it takes credentials as
// plain constructor arguments.
//
type Config struct {
	Credentials CredentialsConfig `yaml:"credentials"`
	Stream      StreamConfig      `yaml:"stream"`
}

type CredentialsConfig struct {
	Key    string `yaml:"key"`
	Secret string `yaml:"secret"`
}

type StreamConfig struct {
	URL         string   `yaml:"url"`
	Symbols     []string `yaml:"symbols"`
	HistorySize int      `yaml:"history-size"`
}

//
// Load assembles the configuration. A ".env" file, if one exists, is folded into the
// environment first. A YAML file named by the CONFIG_PATH environment variable, if set, provides
// the base configuration. The GLOBITEX_API_KEY and GLOBITEX_API_SECRET environment variables
// override whatever the file provided, so that credentials never have to live on disk.
//
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read the configuration file at %s", path)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, errors.Wrapf(err, "could not parse the configuration file at %s", path)
		}
	}

	if key := os.Getenv("GLOBITEX_API_KEY"); key != "" {
		config.Credentials.Key = key
	}

	if secret := os.Getenv("GLOBITEX_API_SECRET"); secret != "" {
		config.Credentials.Secret = secret
	}

	if config.Credentials.Key == "" || config.Credentials.Secret == "" {
		return nil, errors.New("no API credentials were provided")
	}

	if len(config.Stream.Symbols) == 0 {
		config.Stream.Symbols = []string{"BTCEUR"}
	}

	if config.Stream.HistorySize == 0 {
		config.Stream.HistorySize = 256
	}

	return config, nil
}
