// Package search finds candidate icon images for a vault entry
// through the Google Custom Search API.
package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

type Settings struct {
	// APIKey is the Google API key for the Custom Search API.
	APIKey string
	// EngineID is the Programmable Search Engine identifier (cx).
	EngineID string
	// Client is used to probe result images for reachability.
	Client *http.Client
}

type Client struct {
	service  *customsearch.Service
	engineID string
	client   *http.Client
	// Mockable functions
	fetchBatch func(ctx context.Context, query string, offset int) (
		imageURLs []string, err error)
	checkImage func(ctx context.Context, imageURL string) (reachable bool)
	sleep      func(d time.Duration)
}

func New(settings Settings) (c *Client, err error) {
	service, err := customsearch.NewService(context.Background(),
		option.WithAPIKey(settings.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating custom search service: %w", err)
	}

	c = &Client{
		service:  service,
		engineID: settings.EngineID,
		client:   settings.Client,
		sleep:    time.Sleep,
	}
	c.fetchBatch = c.fetchImageBatch
	c.checkImage = c.checkImageReachable
	return c, nil
}

// fetchImageBatch requests one batch of image results starting at the
// given zero based offset. The API indexes results from 1.
func (c *Client) fetchImageBatch(ctx context.Context, query string,
	offset int) (imageURLs []string, err error) {
	response, err := c.service.Cse.List().
		Q(query).
		Cx(c.engineID).
		SearchType("image").
		Num(batchSize).
		Start(int64(offset + 1)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("querying custom search API: %w", err)
	}

	imageURLs = make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		imageURLs = append(imageURLs, item.Link)
	}
	return imageURLs, nil
}

// checkImageReachable fetches the image URL and reports whether the
// server answered at all. Any HTTP response counts as reachable.
func (c *Client) checkImageReachable(ctx context.Context,
	imageURL string) (reachable bool) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return false
	}
	response, err := c.client.Do(request)
	if err != nil {
		return false
	}
	_ = response.Body.Close()
	return true
}
