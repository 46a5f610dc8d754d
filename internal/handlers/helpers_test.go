package handlers_test

import (
	"SkyVault/internal/authclient"
	"SkyVault/internal/config"
	"SkyVault/internal/handlers"
	"SkyVault/internal/model"
	"SkyVault/internal/repo"
	"SkyVault/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	alice = model.Identity{ID: "11111111-1111-1111-1111-111111111111", Email: "alice@example.com"}
	bob   = model.Identity{ID: "22222222-2222-2222-2222-222222222222", Email: "bob@example.com"}
	carol = model.Identity{ID: "33333333-3333-3333-3333-333333333333", Email: "carol@example.com"}
)

// fakeVerifier сопоставляет токен личности; неизвестный токен отвергается.
type fakeVerifier map[string]model.Identity

func (f fakeVerifier) VerifyToken(_ context.Context, token string) (*model.Identity, error) {
	who, ok := f[token]
	if !ok {
		return nil, authclient.ErrInvalidToken
	}
	return &who, nil
}

// memStore хранит объекты в памяти.
type memStore struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func (s *memStore) Put(_ context.Context, key, contentType string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *memStore) PublicURL(key string) string {
	return "https://cdn.test/storage/v1/object/public/files/" + key
}

type mockProvider struct{ mock.Mock }

func (m *mockProvider) SignUp(ctx context.Context, email, password, redirectTo string) (*authclient.User, error) {
	args := m.Called(ctx, email, password, redirectTo)
	if v, ok := args.Get(0).(*authclient.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProvider) SignIn(ctx context.Context, email, password string) (*authclient.Session, error) {
	args := m.Called(ctx, email, password)
	if v, ok := args.Get(0).(*authclient.Session); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProvider) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
func (m *mockProvider) Recover(ctx context.Context, email, redirectTo string) error {
	return m.Called(ctx, email, redirectTo).Error(0)
}
func (m *mockProvider) UpdatePassword(ctx context.Context, token, password string) (*authclient.User, error) {
	args := m.Called(ctx, token, password)
	if v, ok := args.Get(0).(*authclient.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ service.AuthProvider = (*mockProvider)(nil)

type testEnv struct {
	router   http.Handler
	store    *memStore
	provider *mockProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repo.InitDB("sqlite:file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	logger := zap.NewNop().Sugar()
	cfg := &config.Config{UploadMaxMB: 1, CORSAllowedOrigins: []string{"*"}, FrontendURL: "https://app.test"}
	store := &memStore{objects: map[string][]byte{}, types: map[string]string{}}
	provider := &mockProvider{}

	folders := repo.NewFolderRepository(db)
	files := repo.NewFileRepository(db)
	shares := repo.NewShareRepository(db)

	driveSvc := service.NewDriveService(folders, files, shares, store, logger)
	shareSvc := service.NewShareService(files, shares, logger)
	authSvc := service.NewAuthService(provider, cfg.FrontendURL)
	verifier := fakeVerifier{"tok-alice": alice, "tok-bob": bob, "tok-carol": carol}

	h := handlers.NewHandler(driveSvc, shareSvc, authSvc, verifier, logger, cfg)
	return &testEnv{router: h.Router, store: store, provider: provider}
}

// do выполняет запрос; body - значение для JSON или nil.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) upload(t *testing.T, token, name, contentType string, data []byte, folderID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if folderID != "" {
		require.NoError(t, mw.WriteField("folderId", folderID))
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

type fileJSON struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Path      string  `json:"path"`
	Size      int64   `json:"size"`
	Type      string  `json:"type"`
	FolderID  *string `json:"folder_id"`
	IsDeleted bool    `json:"is_deleted"`
	PublicURL string  `json:"publicUrl"`
}

type folderJSON struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

type listingJSON struct {
	Folders []folderJSON `json:"folders"`
	Files   []fileJSON   `json:"files"`
}

type errorJSON struct {
	Error string `json:"error"`
}
