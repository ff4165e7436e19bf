package container

import (
	"errors"
	"fmt"
	"time"

	"github.com/serroba/web-toolbox/internal/shortener"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Options struct {
	Port            int    `default:"8888"                               help:"Port to listen on"                                              short:"p"`
	BaseURL         string `help:"Public prefix of short links (default http://localhost:<port>/s)"`
	FrontendURL     string `default:"http://localhost:3000"              help:"Origin allowed by CORS"`
	Environment     string `default:"development"                        help:"development or production"                                     short:"e"`
	CodeLength      int    `default:"8"                                  help:"Length of generated short codes"                               short:"c"`
	Provider        string `default:"local"                              help:"Short code provider: local or tinyurl"`
	TinyURLEndpoint string `default:"https://tinyurl.com/api-create.php" help:"TinyURL create endpoint"`
	UpstreamTimeout int    `default:"10"                                 help:"Timeout in seconds for calls to the short link provider"`
	RenderTimeout   int    `default:"60"                                 help:"Timeout in seconds for rendering a PDF"`
	ChromePath      string `help:"Path to the Chrome binary (detected when empty)"`
	RedisAddr       string `help:"Redis address for the PDF cache; caching is off when empty" short:"r"`
	CacheTTL        int    `default:"3600"                               help:"Seconds a rendered PDF stays cached"`
	LogLevel        string `help:"debug, info, warn or error (default depends on environment)"`
	LogFormat       string `help:"console or json (default depends on environment)"`
	LogFile         string `help:"Also write JSON logs to this rotated file"`
}

// Validate reports every invalid option at once.
func (o *Options) Validate() error {
	var errs []error

	if o.Port < 1 || o.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", o.Port))
	}

	if o.CodeLength < shortener.MinCodeLength || o.CodeLength > shortener.MaxCodeLength {
		errs = append(errs, fmt.Errorf("code length must be between %d and %d", shortener.MinCodeLength, shortener.MaxCodeLength))
	}

	if o.Provider != shortener.ProviderLocal && o.Provider != shortener.ProviderTinyURL {
		errs = append(errs, fmt.Errorf("unknown provider %q", o.Provider))
	}

	if o.Environment != EnvDevelopment && o.Environment != EnvProduction {
		errs = append(errs, fmt.Errorf("unknown environment %q", o.Environment))
	}

	if o.UpstreamTimeout <= 0 || o.RenderTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}

	if o.CacheTTL < 0 {
		errs = append(errs, errors.New("cache ttl must not be negative"))
	}

	return errors.Join(errs...)
}

// IsProduction reports whether error details must be hidden from clients.
func (o *Options) IsProduction() bool {
	return o.Environment == EnvProduction
}

// ShortLinkBase returns the configured base URL or the local default.
func (o *Options) ShortLinkBase() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}

	return fmt.Sprintf("http://localhost:%d/s", o.Port)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
