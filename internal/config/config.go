package config

import (
	units "github.com/docker/go-units"
	"github.com/pkg/errors"

	"github.com/school-management/sm-console/pkg/conf"
)

type Config struct {
	Server struct {
		ListenAddress string
		Cookies       struct {
			AuthenticationKey string
			EncryptionKey     string
		}
	}

	API struct {
		BaseURL        string
		TimeoutSeconds int
		// MaxImportSize caps CSV uploads, human form ("10MiB").
		MaxImportSize string
	}

	Session struct {
		// Backend selects where the token is stashed: file or redis.
		Backend string
		DataDir string
		Redis   struct {
			Addr     string
			Password string
			DB       int
		}
	}

	Log struct {
		File       string
		MaxSizeMB  int
		MaxBackups int
	}
}

func ParseConfig() (*Config, error) {
	config := &Config{}
	err := conf.ParseConfig(config,
		conf.EnvPrefix("SM"),
		conf.Defaults(map[string]interface{}{
			"Server.ListenAddress": ":8080",
			// Development-only cookie keys; override both in production.
			"Server.Cookies.AuthenticationKey": "6368616e676520746869732070617373776f726420746f206120736563726574",
			"Server.Cookies.EncryptionKey":     "6368616e676520746869732070617373",
			"API.BaseURL":                      "http://localhost:8081",
			"API.TimeoutSeconds":               10,
			"API.MaxImportSize":                "10MiB",
			"Session.Backend":                  "file",
			"Session.DataDir":                  "data",
			"Log.MaxSizeMB":                    100,
			"Log.MaxBackups":                   5,
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to parse config")
	}
	return config, nil
}

// MaxImportSizeBytes parses the configured upload cap.
func (c *Config) MaxImportSizeBytes() (int64, error) {
	size, err := units.RAMInBytes(c.API.MaxImportSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid maxImportSize %q", c.API.MaxImportSize)
	}
	return size, nil
}
