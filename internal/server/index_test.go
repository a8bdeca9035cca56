package server

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pwdhash/vault/internal/vault"
	"github.com/pwdhash/vault/internal/vault/mock_vault"
)

const testIndexTemplate = `{{range .Keys}}{{.Name}}={{.Domain}};{{end}}msg={{.Message}}`

func Test_handlers_index(t *testing.T) {
	t.Parallel()

	errDatabase := errors.New("database is on fire")

	testCases := map[string]struct {
		uri              string
		keys             []vault.Key
		listErr          error
		statusCode       int
		body             string
		clipboardCleared int
	}{
		"no message clears clipboard": {
			uri: "/",
			keys: []vault.Key{
				{Name: "bank", Domain: "bank.com", Image: "icon1"},
				{Name: "mail", Domain: "mail.com", Image: "icon2"},
			},
			statusCode:       http.StatusOK,
			body:             "bank=bank.com;mail=mail.com;msg=",
			clipboardCleared: 1,
		},
		"message left on clipboard": {
			uri:        "/?msg=Password+ready",
			keys:       []vault.Key{},
			statusCode: http.StatusOK,
			body:       "msg=Password ready",
		},
		"store failure": {
			uri:              "/",
			listErr:          errDatabase,
			statusCode:       http.StatusInternalServerError,
			body:             `{"error":"cannot list keys"}` + "\n",
			clipboardCleared: 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			store := mock_vault.NewMockStore(ctrl)
			store.EXPECT().ListAll(gomock.Any()).
				Return(testCase.keys, testCase.listErr)

			clipboard := &fakeClipboard{}
			h := &handlers{
				store:     store,
				clipboard: clipboard,
				logger:    noopLogger{},
				indexTemplate: template.Must(
					template.New("index.html").Parse(testIndexTemplate)),
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, testCase.uri, nil)

			h.index(w, r)

			assert.Equal(t, testCase.statusCode, w.Code)
			assert.Equal(t, testCase.body, w.Body.String())
			assert.Equal(t, testCase.clipboardCleared, clipboard.cleared)
		})
	}
}
