package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_handler_ServeHTTP(t *testing.T) {
	t.Parallel()

	errDatabase := errors.New("database file locked")

	testCases := map[string]struct {
		method     string
		uri        string
		checkErr   error
		statusCode int
	}{
		"healthy": {
			method:     http.MethodGet,
			uri:        "/",
			statusCode: http.StatusOK,
		},
		"unhealthy": {
			method:     http.MethodGet,
			uri:        "/",
			checkErr:   errDatabase,
			statusCode: http.StatusInternalServerError,
		},
		"wrong method": {
			method:     http.MethodPost,
			uri:        "/",
			statusCode: http.StatusNotFound,
		},
		"wrong path": {
			method:     http.MethodGet,
			uri:        "/other",
			statusCode: http.StatusNotFound,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(func() error {
				return testCase.checkErr
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(testCase.method, testCase.uri, nil)
			r.RequestURI = testCase.uri

			handler.ServeHTTP(w, r)

			assert.Equal(t, testCase.statusCode, w.Code)
		})
	}
}
