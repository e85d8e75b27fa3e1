package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/soyeahso/registrygen/internal/config"
	"github.com/soyeahso/registrygen/internal/logging"
)

const userAgent = "ACP-Registry-Docs/1.0"

// Client fetches registry data and icons over HTTP. Registry and icon
// requests carry independent timeouts since icon failures are recoverable
// and should give up quickly.
type Client struct {
	registryURL    string
	iconBaseURL    string
	registryClient *http.Client
	iconClient     *http.Client
	log            *logging.Logger
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg config.Config, log *logging.Logger) *Client {
	return &Client{
		registryURL: cfg.RegistryURL,
		iconBaseURL: cfg.IconBaseURL,
		registryClient: &http.Client{
			Timeout: cfg.Fetch.RegistryTimeout(),
		},
		iconClient: &http.Client{
			Timeout: cfg.Fetch.IconTimeout(),
		},
		log: log,
	}
}

// FetchRegistry retrieves and decodes registry.json from the CDN.
func (c *Client) FetchRegistry(ctx context.Context) (Registry, error) {
	c.log.Info().Str("url", c.registryURL).Msg("fetching registry")

	body, err := c.get(ctx, c.registryClient, c.registryURL)
	if err != nil {
		return Registry{}, fmt.Errorf("fetch registry: %w", err)
	}

	reg, err := Parse(body)
	if err != nil {
		return Registry{}, fmt.Errorf("parse registry: %w", err)
	}

	c.log.Info().Int("agents", len(reg.Agents)).Msg("fetched registry")
	return reg, nil
}

// FetchIcon retrieves the raw SVG icon for an agent id. Callers treat any
// error as "no icon".
func (c *Client) FetchIcon(ctx context.Context, agentID string) (string, error) {
	url := fmt.Sprintf("%s/%s.svg", c.iconBaseURL, agentID)

	body, err := c.get(ctx, c.iconClient, url)
	if err != nil {
		return "", fmt.Errorf("fetch icon %s: %w", agentID, err)
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
