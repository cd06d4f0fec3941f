package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/filetransfer/filetransfer_api/internal/auth"
	authmocks "github.com/filetransfer/filetransfer_api/internal/auth/mocks"
	"github.com/filetransfer/filetransfer_api/internal/logging"
	"github.com/filetransfer/filetransfer_api/internal/models"
	storemocks "github.com/filetransfer/filetransfer_api/internal/store/mocks"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxUploadSize = 1 << 20

type testServer struct {
	*Server
	store     *storemocks.Store
	auth      *authmocks.AuthManager
	ownership *mockOwnershipService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := storemocks.NewStore(t)
	authManager := authmocks.NewAuthManager(t)
	ownership := NewmockOwnershipService(t)

	srv := &Server{
		s:             &http.Server{},
		router:        mux.NewRouter(),
		store:         store,
		ownership:     ownership,
		authManager:   authManager,
		maxUploadSize: testMaxUploadSize,
		logger:        logging.Discard().WithApiTag(),
	}
	srv.initRouter()

	return &testServer{Server: srv, store: store, auth: authManager, ownership: ownership}
}

// authorize makes req carry a bearer token that resolves to user.
func (ts *testServer) authorize(req *http.Request, user models.User) {
	token := "access." + user.Username
	ts.auth.EXPECT().
		Parse(token).
		Return(&auth.Claims{UserID: user.ID.String(), Username: user.Username, Role: user.Role, Active: true}, nil)
	ts.store.EXPECT().
		GetUser(mock.Anything, user.ID).
		Return(&user, nil)

	req.Header.Set("Authorization", "Bearer "+token)
}

// multipartFormData holds the created multipart form data
type multipartFormData struct {
	body        io.Reader
	contentType string
}

func createUploadForm(t *testing.T, name, filename string, data []byte) multipartFormData {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if name != "" {
		require.NoError(t, writer.WriteField("name", name))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return multipartFormData{
		body:        body,
		contentType: writer.FormDataContentType(),
	}
}

func loadJSONFixture(t testing.TB, name string) []byte {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to determine caller path")
	}

	path := filepath.Join(filepath.Dir(filename), "..", "testdata", "rest_data", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}

	return data
}
