package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Client_Page(t *testing.T) {
	t.Parallel()

	errAPI := errors.New("API quota exceeded")

	testCases := map[string]struct {
		start           int
		batchErr        error
		unreachable     map[string]struct{}
		expectedOffsets []int
		expectedPage    Page
		errWrapped      error
		errMessage      string
	}{
		"first page": {
			start:           0,
			expectedOffsets: []int{0, 4},
			expectedPage: Page{
				ImageURLs: []string{
					"https://images.test/0", "https://images.test/1",
					"https://images.test/2", "https://images.test/3",
					"https://images.test/4", "https://images.test/5",
					"https://images.test/6", "https://images.test/7",
				},
				NextStart: 8,
				HasNext:   true,
			},
		},
		"middle page": {
			start:           16,
			expectedOffsets: []int{16, 20},
			expectedPage: Page{
				ImageURLs: []string{
					"https://images.test/16", "https://images.test/17",
					"https://images.test/18", "https://images.test/19",
					"https://images.test/20", "https://images.test/21",
					"https://images.test/22", "https://images.test/23",
				},
				NextStart: 24,
				HasNext:   true,
				PrevStart: 8,
				HasPrev:   true,
			},
		},
		"last page clamps and disables next": {
			start:           52,
			expectedOffsets: []int{52},
			expectedPage: Page{
				ImageURLs: []string{
					"https://images.test/52", "https://images.test/53",
					"https://images.test/54", "https://images.test/55",
				},
				PrevStart: 44,
				HasPrev:   true,
			},
		},
		"next disabled exactly at the results limit": {
			start:           48,
			expectedOffsets: []int{48, 52},
			expectedPage: Page{
				ImageURLs: []string{
					"https://images.test/48", "https://images.test/49",
					"https://images.test/50", "https://images.test/51",
					"https://images.test/52", "https://images.test/53",
					"https://images.test/54", "https://images.test/55",
				},
				PrevStart: 40,
				HasPrev:   true,
			},
		},
		"negative start treated as zero": {
			start:           -3,
			expectedOffsets: []int{0, 4},
			expectedPage: Page{
				ImageURLs: []string{
					"https://images.test/0", "https://images.test/1",
					"https://images.test/2", "https://images.test/3",
					"https://images.test/4", "https://images.test/5",
					"https://images.test/6", "https://images.test/7",
				},
				NextStart: 8,
				HasNext:   true,
			},
		},
		"unreachable images skipped": {
			start: 0,
			unreachable: map[string]struct{}{
				"https://images.test/1": {},
				"https://images.test/6": {},
			},
			expectedOffsets: []int{0, 4},
			expectedPage: Page{
				ImageURLs: []string{
					"https://images.test/0", "https://images.test/2",
					"https://images.test/3", "https://images.test/4",
					"https://images.test/5", "https://images.test/7",
				},
				NextStart: 8,
				HasNext:   true,
			},
		},
		"upstream error": {
			start:           0,
			batchErr:        errAPI,
			expectedOffsets: []int{0},
			errWrapped:      errAPI,
			errMessage:      "fetching batch at offset 0: API quota exceeded",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var offsets []int
			client := &Client{
				fetchBatch: func(_ context.Context, query string, offset int) (
					[]string, error) {
					assert.Equal(t, "bank logo", query)
					offsets = append(offsets, offset)
					if testCase.batchErr != nil {
						return nil, testCase.batchErr
					}
					imageURLs := make([]string, batchSize)
					for i := range imageURLs {
						imageURLs[i] = fmt.Sprintf("https://images.test/%d", offset+i)
					}
					return imageURLs, nil
				},
				checkImage: func(_ context.Context, imageURL string) bool {
					_, unreachable := testCase.unreachable[imageURL]
					return !unreachable
				},
				sleep: func(d time.Duration) {
					assert.Equal(t, batchDelay, d)
				},
			}

			page, err := client.Page(context.Background(), "bank logo", testCase.start)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.Equal(t, testCase.expectedPage, page)
			}
			assert.Equal(t, testCase.expectedOffsets, offsets)
		})
	}
}

func Test_Client_Page_neverExceedsMaxResults(t *testing.T) {
	t.Parallel()

	// Walk the pagination from the start the way a user clicking
	// "next" would, and check no request goes past the results limit.
	client := &Client{
		fetchBatch: func(_ context.Context, _ string, offset int) ([]string, error) {
			require.LessOrEqual(t, offset+batchSize, maxResults,
				"offset %d would request results beyond the limit", offset)
			return make([]string, batchSize), nil
		},
		checkImage: func(context.Context, string) bool { return true },
		sleep:      func(time.Duration) {},
	}

	start := 0
	for i := 0; ; i++ {
		require.Less(t, i, 20, "pagination never terminates")
		page, err := client.Page(context.Background(), "anything", start)
		require.NoError(t, err)
		if !page.HasNext {
			assert.Equal(t, maxResults, start+pageSize)
			break
		}
		start = page.NextStart
	}
}
