package shortener

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/imroc/req/v3"
	"github.com/serroba/web-toolbox/internal/upstream"
)

const (
	ProviderTinyURL = "tinyurl"

	DefaultTinyURLEndpoint = "https://tinyurl.com/api-create.php"
)

var errInvalidUpstreamResponse = errors.New("invalid response")

// TinyURLStrategy delegates code assignment to the TinyURL API. The local registry is
// not written; redirects are served by TinyURL itself.
type TinyURLStrategy struct {
	client   *req.Client
	endpoint string
}

// NewTinyURLStrategy creates a strategy calling endpoint with the given timeout.
func NewTinyURLStrategy(endpoint string, timeout time.Duration) *TinyURLStrategy {
	if endpoint == "" {
		endpoint = DefaultTinyURLEndpoint
	}

	client := req.C().
		SetTimeout(timeout).
		SetUserAgent("web-toolbox")

	return &TinyURLStrategy{
		client:   client,
		endpoint: endpoint,
	}
}

func (s *TinyURLStrategy) Name() string {
	return ProviderTinyURL
}

func (s *TinyURLStrategy) Shorten(ctx context.Context, rawURL string, customCode Code) (*Result, error) {
	r := s.client.R().
		SetContext(ctx).
		SetQueryParam("url", rawURL)

	if customCode != "" {
		r.SetQueryParam("alias", string(customCode))
	}

	resp, err := r.Get(s.endpoint)
	if err != nil {
		return nil, upstream.Wrap(ProviderTinyURL, err)
	}

	if !resp.IsSuccessState() {
		return nil, upstream.Wrap(ProviderTinyURL, fmt.Errorf("unexpected status %d", resp.GetStatusCode()))
	}

	link := strings.TrimSpace(resp.String())
	if link == "" || strings.Contains(link, "Error") || !strings.HasPrefix(link, "http") {
		return nil, upstream.Wrap(ProviderTinyURL, fmt.Errorf("%w: %q", errInvalidUpstreamResponse, link))
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return nil, upstream.Wrap(ProviderTinyURL, fmt.Errorf("%w: %w", errInvalidUpstreamResponse, err))
	}

	return &Result{
		ShortURL: ShortURL{
			Code:        Code(path.Base(parsed.Path)),
			OriginalURL: rawURL,
			IsCustom:    customCode != "",
			CreatedAt:   time.Now(),
		},
		Link:     link,
		Provider: ProviderTinyURL,
	}, nil
}
