package utils

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type HTTPClientConfig struct {
	KATimeout time.Duration
	UserAgent string
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type HTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

// NewHTTPClient leaves http.Client.Timeout unset, so a stalled server stalls
// the download.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	if cfg.KATimeout == 0 {
		cfg.KATimeout = 60 * time.Second
	}
	transport := &http.Transport{
		Proxy:              http.ProxyFromEnvironment,
		IdleConnTimeout:    cfg.KATimeout,
		DisableCompression: true,
	}
	return &HTTPClient{
		client: &http.Client{
			Transport: transport,
		},
		config: cfg,
	}
}

func (c *HTTPClient) NewRequest(ctx context.Context, method, url string, header *Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating %s request: %w", method, err)
	}
	if header != nil {
		req.Header.Set(header.Name, header.Value)
	}
	return req, nil
}

func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	// an explicit -H User-Agent wins over the configured one
	if req.Header.Get("User-Agent") == "" {
		userAgent := c.config.UserAgent
		if userAgent == "" {
			userAgent = ToolUserAgent
		}
		req.Header.Set("User-Agent", userAgent)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
