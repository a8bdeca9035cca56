package search

import (
	"context"
	"fmt"
	"time"
)

const (
	// maxResults is the most results the API serves for one query.
	maxResults = 56
	// pageSize is how many images one gallery page shows.
	pageSize = 8
	// batchSize is how many results each upstream request returns.
	batchSize = 4
	// batchDelay spaces out upstream requests.
	batchDelay = 500 * time.Millisecond
)

// Page is one gallery page of image results with its pagination offsets.
type Page struct {
	ImageURLs []string
	NextStart int
	PrevStart int
	// HasNext is false once NextStart reaches the results limit.
	HasNext bool
	// HasPrev is false on the first page.
	HasPrev bool
}

// Page fetches one gallery page of image results for the query,
// starting at the given offset. Results come from the upstream API in
// batches of 4 with a courtesy delay in between, and unreachable
// image URLs are skipped. Offsets at or beyond the 56 results limit
// are never requested.
func (c *Client) Page(ctx context.Context, query string, start int) (
	page Page, err error) {
	if start < 0 {
		start = 0
	}

	nextStart := start + pageSize
	if nextStart > maxResults {
		nextStart = maxResults
	}
	prevStart := start - pageSize

	page.ImageURLs = make([]string, 0, pageSize)
	for offset := start; offset < nextStart; offset += batchSize {
		imageURLs, err := c.fetchBatch(ctx, query, offset)
		if err != nil {
			return Page{}, fmt.Errorf("fetching batch at offset %d: %w", offset, err)
		}
		for _, imageURL := range imageURLs {
			if c.checkImage(ctx, imageURL) {
				page.ImageURLs = append(page.ImageURLs, imageURL)
			}
		}
		c.sleep(batchDelay)
	}

	page.HasNext = nextStart < maxResults
	if page.HasNext {
		page.NextStart = nextStart
	}
	page.HasPrev = prevStart >= 0
	if page.HasPrev {
		page.PrevStart = prevStart
	}
	return page, nil
}
