package platform

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Probe checks that the platform answers at all before a browser session is
// spent on it. A down platform fails the run up front instead of after a
// full Chrome launch and login walk.
type Probe struct {
	httpClient *resty.Client
}

func NewProbe(baseURL string, timeout time.Duration) *Probe {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	return &Probe{httpClient: client}
}

func (p *Probe) Close() error {
	return p.httpClient.Close()
}

// Check issues a GET against the platform root and fails on transport
// errors or server-side (5xx) responses. Auth redirects and 4xx are fine
// here; they still prove the platform is up.
func (p *Probe) Check(ctx context.Context) error {
	response, err := p.httpClient.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("platform unreachable: %w", err)
	}
	if response.StatusCode() >= 500 {
		return fmt.Errorf("platform returned server error: %s", response.Status())
	}
	return nil
}
