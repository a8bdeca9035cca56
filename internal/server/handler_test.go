package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwdhash/vault/internal/vault"
	"github.com/pwdhash/vault/internal/vault/mock_vault"
)

func writeTestUIDir(t *testing.T) (uiDir string) {
	t.Helper()
	uiDir = t.TempDir()
	templates := map[string]string{
		"index.html":      `listing {{len .Keys}} keys`,
		"about.html":      `about page`,
		"add.html":        `add form`,
		"pick_image.html": `gallery for {{.Query}}`,
	}
	for name, content := range templates {
		err := os.WriteFile(filepath.Join(uiDir, name), []byte(content), 0o600)
		require.NoError(t, err)
	}
	return uiDir
}

func Test_newHandler_routing(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	store := mock_vault.NewMockStore(ctrl)
	store.EXPECT().ListAll(gomock.Any()).
		Return([]vault.Key{{Name: "bank"}}, nil)

	handler := newHandler(Settings{
		UIDir:     writeTestUIDir(t),
		Store:     store,
		Generator: &fakeGenerator{},
		Clipboard: &fakeClipboard{},
		Logger:    noopLogger{},
	})

	testCases := map[string]struct {
		method     string
		target     string
		statusCode int
		body       string
	}{
		"index": {
			method:     http.MethodGet,
			target:     "/",
			statusCode: http.StatusOK,
			body:       "listing 1 keys",
		},
		"about": {
			method:     http.MethodGet,
			target:     "/about",
			statusCode: http.StatusOK,
			body:       "about page",
		},
		"add": {
			method:     http.MethodGet,
			target:     "/add",
			statusCode: http.StatusOK,
			body:       "add form",
		},
		"unknown route": {
			method:     http.MethodGet,
			target:     "/nope",
			statusCode: http.StatusNotFound,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(testCase.method, testCase.target, nil)

			handler.ServeHTTP(w, r)

			assert.Equal(t, testCase.statusCode, w.Code)
			if testCase.body != "" {
				assert.Equal(t, testCase.body, w.Body.String())
			}
			assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
			assert.Equal(t, "default-src 'self'",
				w.Header().Get("Content-Security-Policy"))
		})
	}
}
