package service

import (
	"context"
	"fmt"
	"strings"

	"SkyVault/internal/model"
	"SkyVault/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStore - внешнее хранилище содержимого файлов.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	PublicURL(key string) string
}

// View - вкладка списка файлов.
type View string

const (
	ViewDrive  View = "drive"
	ViewTrash  View = "trash"
	ViewShared View = "shared"
)

// ParseView разбирает параметр tab; пустое значение - drive.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewDrive:
		return ViewDrive, nil
	case ViewTrash, ViewShared:
		return View(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidView, s)
}

// FileView - файл вместе с публичной ссылкой на содержимое.
type FileView struct {
	model.File
	PublicURL string `json:"publicUrl"`
}

// Listing - содержимое вкладки.
type Listing struct {
	Folders []model.Folder `json:"folders"`
	Files   []FileView     `json:"files"`
}

// SearchResult - результат поиска по имени.
type SearchResult struct {
	Files   []FileView     `json:"files"`
	Folders []model.Folder `json:"folders"`
}

// UploadInput - загружаемый файл.
type UploadInput struct {
	Name        string
	ContentType string
	Data        []byte
	FolderID    string // сырое значение, нормализуется здесь
}

// DriveService - иерархия папок и файлов пользователя поверх внешнего хранилища записей.
type DriveService struct {
	folders repo.FolderRepository
	files   repo.FileRepository
	shares  repo.ShareRepository
	store   ObjectStore
	logger  *zap.SugaredLogger
}

func NewDriveService(
	folders repo.FolderRepository,
	files repo.FileRepository,
	shares repo.ShareRepository,
	store ObjectStore,
	logger *zap.SugaredLogger,
) *DriveService {
	return &DriveService{folders: folders, files: files, shares: shares, store: store, logger: logger}
}

func (s *DriveService) withURLs(files []model.File) []FileView {
	out := make([]FileView, 0, len(files))
	for _, f := range files {
		out = append(out, FileView{File: f, PublicURL: s.store.PublicURL(f.Path)})
	}
	return out
}

func nonNilFolders(in []model.Folder) []model.Folder {
	if in == nil {
		return []model.Folder{}
	}
	return in
}

// List возвращает содержимое вкладки view для папки folderRaw.
func (s *DriveService) List(ctx context.Context, who model.Identity, folderRaw, view string) (*Listing, error) {
	v, err := ParseView(view)
	if err != nil {
		return nil, err
	}
	ref := model.NormalizeFolderRef(folderRaw)
	res := &Listing{Folders: []model.Folder{}, Files: []FileView{}}

	switch v {
	case ViewDrive:
		folders, err := s.folders.ListByParent(ctx, who.ID, ref)
		if err != nil {
			return nil, fmt.Errorf("list folders: %w", err)
		}
		files, err := s.files.ListByFolder(ctx, who.ID, ref)
		if err != nil {
			return nil, fmt.Errorf("list files: %w", err)
		}
		res.Folders = nonNilFolders(folders)
		res.Files = s.withURLs(files)

	case ViewTrash:
		files, err := s.files.ListDeleted(ctx, who.ID)
		if err != nil {
			return nil, fmt.Errorf("list trash: %w", err)
		}
		res.Files = s.withURLs(files)

	case ViewShared:
		if who.Email == "" {
			return res, nil
		}
		ids, err := s.shares.FileIDsSharedWith(ctx, who.Email)
		if err != nil {
			return nil, fmt.Errorf("list shares: %w", err)
		}
		if len(ids) == 0 {
			return res, nil
		}
		files, err := s.files.ListByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list shared files: %w", err)
		}
		res.Files = s.withURLs(files)
	}
	return res, nil
}

// ListFolders возвращает все папки пользователя.
func (s *DriveService) ListFolders(ctx context.Context, who model.Identity) ([]model.Folder, error) {
	folders, err := s.folders.ListAll(ctx, who.ID)
	if err != nil {
		return nil, err
	}
	return nonNilFolders(folders), nil
}

// CreateFolder создаёт папку name внутри parentRaw (или в корне).
func (s *DriveService) CreateFolder(ctx context.Context, who model.Identity, name, parentRaw string) (*model.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, badRequest("Name required")
	}
	f := &model.Folder{
		UserID:   who.ID,
		Name:     name,
		ParentID: model.NormalizeFolderRef(parentRaw).Ptr(),
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return f, nil
}

// Rename переименовывает файл или папку. Возвращает *model.File или *model.Folder.
func (s *DriveService) Rename(ctx context.Context, who model.Identity, kind model.ItemKind, id, newName string) (any, error) {
	if id == "" || strings.TrimSpace(newName) == "" {
		return nil, badRequest("Missing fields")
	}
	switch kind {
	case model.KindFile:
		f, err := s.files.Rename(ctx, who.ID, id, newName)
		if err != nil {
			return nil, notFound("file", err)
		}
		return f, nil
	case model.KindFolder:
		f, err := s.folders.Rename(ctx, who.ID, id, newName)
		if err != nil {
			return nil, notFound("folder", err)
		}
		return f, nil
	}
	return nil, ErrInvalidKind
}

// MoveFile переносит файл в папку folderRaw (или в корень).
func (s *DriveService) MoveFile(ctx context.Context, who model.Identity, id, folderRaw string) (*model.File, error) {
	if id == "" {
		return nil, badRequest("id required")
	}
	f, err := s.files.Move(ctx, who.ID, id, model.NormalizeFolderRef(folderRaw))
	if err != nil {
		return nil, notFound("file", err)
	}
	return f, nil
}

// TrashFile помечает файл удалённым.
func (s *DriveService) TrashFile(ctx context.Context, who model.Identity, id string) (*model.File, error) {
	f, err := s.files.SetDeleted(ctx, who.ID, id, true)
	if err != nil {
		return nil, notFound("file", err)
	}
	return f, nil
}

// RestoreFile возвращает файл из корзины.
func (s *DriveService) RestoreFile(ctx context.Context, who model.Identity, id string) (*model.File, error) {
	f, err := s.files.SetDeleted(ctx, who.ID, id, false)
	if err != nil {
		return nil, notFound("file", err)
	}
	return f, nil
}

// DeleteFile удаляет запись о файле навсегда. Объект в хранилище не трогается.
func (s *DriveService) DeleteFile(ctx context.Context, who model.Identity, id string) error {
	return s.files.Delete(ctx, who.ID, id)
}

// DeleteFolder удаляет папку. Вложенные папки и файлы остаются со ссылкой на удалённую папку.
func (s *DriveService) DeleteFolder(ctx context.Context, who model.Identity, id string) error {
	return s.folders.Delete(ctx, who.ID, id)
}

// Search ищет файлы (кроме удалённых) и папки пользователя по подстроке имени.
func (s *DriveService) Search(ctx context.Context, who model.Identity, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, badRequest("Query required")
	}
	files, err := s.files.Search(ctx, who.ID, query)
	if err != nil {
		return nil, fmt.Errorf("search files: %w", err)
	}
	folders, err := s.folders.Search(ctx, who.ID, query)
	if err != nil {
		return nil, fmt.Errorf("search folders: %w", err)
	}
	return &SearchResult{Files: s.withURLs(files), Folders: nonNilFolders(folders)}, nil
}

// Upload кладёт содержимое в хранилище и создаёт запись о файле.
// Если запись создать не удалось, объект остаётся в хранилище.
func (s *DriveService) Upload(ctx context.Context, who model.Identity, in UploadInput) (*FileView, error) {
	if in.Name == "" {
		return nil, badRequest("No file uploaded")
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := uuid.NewString() + "_" + in.Name

	if err := s.store.Put(ctx, key, contentType, in.Data); err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	f := &model.File{
		UserID:   who.ID,
		Name:     in.Name,
		Path:     key,
		Size:     int64(len(in.Data)),
		Type:     contentType,
		FolderID: model.NormalizeFolderRef(in.FolderID).Ptr(),
	}
	if err := s.files.Create(ctx, f); err != nil {
		s.logger.Errorw("Upload: file row not created, object left in storage", "key", key, "user_id", who.ID, "error", err)
		return nil, fmt.Errorf("create file: %w", err)
	}
	return &FileView{File: *f, PublicURL: s.store.PublicURL(key)}, nil
}
