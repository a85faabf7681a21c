package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the DexScreener public API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.dexscreener.com/latest/dex"
	}
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	b := strings.TrimSpace(string(e.Body))
	if b == "" {
		return fmt.Sprintf("dexscreener http %d", e.StatusCode)
	}
	return fmt.Sprintf("dexscreener http %d: %s", e.StatusCode, b)
}

// TokenPairs returns all pairs trading the given token address.
func (c *Client) TokenPairs(ctx context.Context, address string) ([]Pair, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("token address is required")
	}
	return c.fetchPairs(ctx, c.BaseURL+"/tokens/"+url.PathEscape(address))
}

// Search returns candidate pairs for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Pair, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}
	q := url.Values{}
	q.Set("q", query)
	return c.fetchPairs(ctx, c.BaseURL+"/search?"+q.Encode())
}

func (c *Client) fetchPairs(ctx context.Context, u string) ([]Pair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: res.StatusCode, Body: body}
	}

	var out pairsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode dexscreener response: %w", err)
	}
	return out.Pairs, nil
}

// BestPair picks the pair with the deepest USD liquidity. Returns nil for an
// empty slice.
func BestPair(pairs []Pair) *Pair {
	var best *Pair
	for i := range pairs {
		if best == nil || pairs[i].LiquidityUSD() > best.LiquidityUSD() {
			best = &pairs[i]
		}
	}
	return best
}
