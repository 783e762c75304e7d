package xmlrpc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/tsatke/xmlrpc/encoder"
	"golang.org/x/time/rate"
)

// Config holds the settings of a Client. All keys live below "xmlrpc".
//
//	xmlrpc:
//	  endpoint: http://localhost:11311
//	  precision: 6
//	  timeout: 10s
//	  rate_limit: 5
//	  burst: 1
//	  user_agent: my-tool/1.0
type Config struct {
	Endpoint  string
	Precision int
	Timeout   time.Duration
	// RateLimit is the number of requests per second. Zero disables limiting.
	RateLimit float64
	Burst     int
	UserAgent string
}

// LoadConfig reads a Config from v, filling in defaults for missing keys.
func LoadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("xmlrpc.precision", encoder.DefaultPrecision)
	v.SetDefault("xmlrpc.timeout", 30*time.Second)
	v.SetDefault("xmlrpc.rate_limit", 0)
	v.SetDefault("xmlrpc.burst", 1)
	v.SetDefault("xmlrpc.user_agent", DefaultUserAgent)

	cfg := Config{
		Endpoint:  v.GetString("xmlrpc.endpoint"),
		Precision: v.GetInt("xmlrpc.precision"),
		Timeout:   v.GetDuration("xmlrpc.timeout"),
		RateLimit: v.GetFloat64("xmlrpc.rate_limit"),
		Burst:     v.GetInt("xmlrpc.burst"),
		UserAgent: v.GetString("xmlrpc.user_agent"),
	}
	if cfg.Endpoint == "" {
		return Config{}, fmt.Errorf("xmlrpc.endpoint is not set")
	}
	if cfg.RateLimit < 0 {
		return Config{}, fmt.Errorf("xmlrpc.rate_limit must not be negative, but is %v", cfg.RateLimit)
	}
	return cfg, nil
}

// NewClientFromConfig creates a client from cfg. The given options are
// applied after those derived from cfg.
func NewClientFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithPrecision(cfg.Precision),
		WithUserAgent(cfg.UserAgent),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.RateLimit > 0 {
		base = append(base, WithRateLimit(rate.Limit(cfg.RateLimit), cfg.Burst))
	}
	return NewClient(cfg.Endpoint, append(base, opts...)...)
}
