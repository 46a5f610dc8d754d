package service

import (
	"SkyVault/internal/authclient"
	"SkyVault/internal/model"
	"SkyVault/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев и внешних сервисов

type mockFolderRepo struct{ mock.Mock }

func (m *mockFolderRepo) Create(ctx context.Context, f *model.Folder) error {
	return m.Called(ctx, f).Error(0)
}
func (m *mockFolderRepo) ListByParent(ctx context.Context, userID string, parent model.FolderRef) ([]model.Folder, error) {
	args := m.Called(ctx, userID, parent)
	if v, ok := args.Get(0).([]model.Folder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFolderRepo) ListAll(ctx context.Context, userID string) ([]model.Folder, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Folder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFolderRepo) Search(ctx context.Context, userID, query string) ([]model.Folder, error) {
	args := m.Called(ctx, userID, query)
	if v, ok := args.Get(0).([]model.Folder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFolderRepo) Rename(ctx context.Context, userID, id, name string) (*model.Folder, error) {
	args := m.Called(ctx, userID, id, name)
	if v, ok := args.Get(0).(*model.Folder); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFolderRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

var _ repo.FolderRepository = (*mockFolderRepo)(nil)

type mockFileRepo struct{ mock.Mock }

func (m *mockFileRepo) Create(ctx context.Context, f *model.File) error {
	return m.Called(ctx, f).Error(0)
}
func (m *mockFileRepo) ListByFolder(ctx context.Context, userID string, folder model.FolderRef) ([]model.File, error) {
	args := m.Called(ctx, userID, folder)
	if v, ok := args.Get(0).([]model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) ListDeleted(ctx context.Context, userID string) ([]model.File, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) ListByIDs(ctx context.Context, ids []string) ([]model.File, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) Search(ctx context.Context, userID, query string) ([]model.File, error) {
	args := m.Called(ctx, userID, query)
	if v, ok := args.Get(0).([]model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) Rename(ctx context.Context, userID, id, name string) (*model.File, error) {
	args := m.Called(ctx, userID, id, name)
	if v, ok := args.Get(0).(*model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) Move(ctx context.Context, userID, id string, folder model.FolderRef) (*model.File, error) {
	args := m.Called(ctx, userID, id, folder)
	if v, ok := args.Get(0).(*model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) SetDeleted(ctx context.Context, userID, id string, deleted bool) (*model.File, error) {
	args := m.Called(ctx, userID, id, deleted)
	if v, ok := args.Get(0).(*model.File); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockFileRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *mockFileRepo) GetOwnerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

var _ repo.FileRepository = (*mockFileRepo)(nil)

type mockShareRepo struct{ mock.Mock }

func (m *mockShareRepo) Create(ctx context.Context, s *model.Share) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockShareRepo) Find(ctx context.Context, fileID, email string) (*model.Share, error) {
	args := m.Called(ctx, fileID, email)
	if v, ok := args.Get(0).(*model.Share); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockShareRepo) ListByFile(ctx context.Context, fileID string) ([]model.Share, error) {
	args := m.Called(ctx, fileID)
	if v, ok := args.Get(0).([]model.Share); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockShareRepo) FileIDsSharedWith(ctx context.Context, email string) ([]string, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockShareRepo) Delete(ctx context.Context, fileID, email string) error {
	return m.Called(ctx, fileID, email).Error(0)
}

var _ repo.ShareRepository = (*mockShareRepo)(nil)

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	return m.Called(ctx, key, contentType, data).Error(0)
}
func (m *mockStore) PublicURL(key string) string {
	return "https://cdn.test/files/" + key
}

var _ ObjectStore = (*mockStore)(nil)

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

var _ AuthProvider = (*mockProvider)(nil)
