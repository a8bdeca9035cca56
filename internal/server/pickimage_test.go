package server

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pwdhash/vault/internal/search"
)

const testGalleryTemplate = `q={{.Query}};images={{range .ImageURLs}}{{.}},{{end}};` +
	`next={{if .HasNext}}{{.NextStart}}{{else}}disabled{{end}};` +
	`prev={{if .HasPrev}}{{.PrevStart}}{{else}}none{{end}}`

func Test_handlers_pickImage(t *testing.T) {
	t.Parallel()

	errAPI := errors.New("API quota exceeded")

	testCases := map[string]struct {
		uri           string
		noSearcher    bool
		page          search.Page
		searchErr     error
		expectedQuery string
		expectedStart int
		statusCode    int
		body          string
	}{
		"not configured": {
			uri:        "/pick_image?query=bank",
			noSearcher: true,
			statusCode: http.StatusServiceUnavailable,
			body:       `{"error":"image search is not configured"}` + "\n",
		},
		"missing query": {
			uri:        "/pick_image",
			statusCode: http.StatusBadRequest,
			body:       `{"error":"query is required"}` + "\n",
		},
		"bad start": {
			uri:        "/pick_image?query=bank&start=abc",
			statusCode: http.StatusBadRequest,
			body:       `{"error":"start is not an integer: abc"}` + "\n",
		},
		"first page": {
			uri: "/pick_image?query=bank",
			page: search.Page{
				ImageURLs: []string{"https://a.test/1.png", "https://b.test/2.png"},
				NextStart: 8,
				HasNext:   true,
			},
			expectedQuery: "bank",
			statusCode:    http.StatusOK,
			body: "q=bank;images=https://a.test/1.png,https://b.test/2.png,;" +
				"next=8;prev=none",
		},
		"last page": {
			uri: "/pick_image?query=bank&start=48",
			page: search.Page{
				ImageURLs: []string{"https://a.test/1.png"},
				PrevStart: 40,
				HasPrev:   true,
			},
			expectedQuery: "bank",
			expectedStart: 48,
			statusCode:    http.StatusOK,
			body:          "q=bank;images=https://a.test/1.png,;next=disabled;prev=40",
		},
		"search failure": {
			uri:           "/pick_image?query=bank",
			searchErr:     errAPI,
			expectedQuery: "bank",
			statusCode:    http.StatusInternalServerError,
			body:          `{"error":"image search failed"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			searcher := &fakeSearcher{
				page: testCase.page,
				err:  testCase.searchErr,
			}
			h := &handlers{
				logger: noopLogger{},
				galleryTemplate: template.Must(
					template.New("pick_image.html").Parse(testGalleryTemplate)),
			}
			if !testCase.noSearcher {
				h.searcher = searcher
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, testCase.uri, nil)

			h.pickImage(w, r)

			assert.Equal(t, testCase.statusCode, w.Code)
			assert.Equal(t, testCase.body, w.Body.String())
			assert.Equal(t, testCase.expectedQuery, searcher.query)
			assert.Equal(t, testCase.expectedStart, searcher.start)
		})
	}
}
