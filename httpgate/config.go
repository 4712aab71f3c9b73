package httpgate

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/healthops/health"
)

// fileConfig is the YAML shape of a gate configuration file. Timeout is a
// string because yaml.v3 has no native duration decoding.
type fileConfig struct {
	Path         string         `yaml:"path"`
	Port         int            `yaml:"port"`
	StatusCodes  map[string]int `yaml:"status_codes"`
	AllowCaching bool           `yaml:"allow_caching"`
	Timeout      string         `yaml:"timeout"`
	Detailed     bool           `yaml:"detailed"`
	TagParam     string         `yaml:"tag_param"`
}

// LoadConfig reads a gate configuration from a YAML file.
//
// Status codes are keyed by status name:
//
//	path: /health
//	detailed: true
//	timeout: 5s
//	status_codes:
//	  healthy: 200
//	  degraded: 200
//	  unhealthy: 503
//
// An omitted status_codes block selects the default mapping. A present block
// must cover all three statuses; a partial mapping is a configuration error
// reported here rather than at request time.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("httpgate: read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("httpgate: parse config: %w", err)
	}

	cfg := Config{
		Path:         fc.Path,
		Port:         fc.Port,
		AllowCaching: fc.AllowCaching,
		Detailed:     fc.Detailed,
		TagParam:     fc.TagParam,
	}

	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("httpgate: parse config timeout: %w", err)
		}
		cfg.Timeout = timeout
	}

	if fc.StatusCodes != nil {
		codes := make(map[health.Status]int, len(fc.StatusCodes))
		for name, code := range fc.StatusCodes {
			var status health.Status
			if err := status.UnmarshalText([]byte(name)); err != nil {
				return Config{}, fmt.Errorf("httpgate: parse config: %w", err)
			}
			codes[status] = code
		}
		for _, status := range []health.Status{health.StatusHealthy, health.StatusDegraded, health.StatusUnhealthy} {
			if _, ok := codes[status]; !ok {
				return Config{}, fmt.Errorf("%w for status %q", ErrStatusUnmapped, status)
			}
		}
		cfg.StatusCodes = codes
	}

	return cfg, nil
}
