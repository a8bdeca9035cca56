package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	*http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		Client: &http.Client{Timeout: timeout},
	}
}

// Query sends an HTTP request to the health server of another
// instance of this program.
func (c *Client) Query(ctx context.Context, address string) error {
	url := "http://" + address
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	} else if resp.StatusCode == http.StatusOK {
		_ = resp.Body.Close()
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return fmt.Errorf("%s: reading response body: %w", resp.Status, err)
	}
	return fmt.Errorf("%s: %s", resp.Status, string(b))
}
