package repo

import (
	"SkyVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// FileRepository - доступ к коллекции files.
// Все методы, кроме ListByIDs и GetOwnerID, ограничены владельцем.
type FileRepository interface {
	Create(ctx context.Context, f *model.File) error
	// ListByFolder возвращает неудалённые файлы пользователя в папке folder.
	ListByFolder(ctx context.Context, userID string, folder model.FolderRef) ([]model.File, error)
	// ListDeleted возвращает файлы пользователя в корзине.
	ListDeleted(ctx context.Context, userID string) ([]model.File, error)
	// ListByIDs возвращает файлы по списку id без фильтра по владельцу.
	ListByIDs(ctx context.Context, ids []string) ([]model.File, error)
	Search(ctx context.Context, userID, query string) ([]model.File, error)

	Rename(ctx context.Context, userID, id, name string) (*model.File, error)
	Move(ctx context.Context, userID, id string, folder model.FolderRef) (*model.File, error)
	SetDeleted(ctx context.Context, userID, id string, deleted bool) (*model.File, error)
	Delete(ctx context.Context, userID, id string) error

	// GetOwnerID возвращает user_id файла или gorm.ErrRecordNotFound.
	GetOwnerID(ctx context.Context, id string) (string, error)
}

type fileRepo struct {
	db *gorm.DB
}

// NewFileRepository создаёт реализацию репозитория для File.
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepo{db: db}
}

func (r *fileRepo) Create(ctx context.Context, f *model.File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fileRepo) ListByFolder(ctx context.Context, userID string, folder model.FolderRef) ([]model.File, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND is_deleted = ?", userID, false)
	if folder.IsRoot() {
		q = q.Where("folder_id IS NULL")
	} else {
		q = q.Where("folder_id = ?", folder.ID())
	}
	var out []model.File
	if err := q.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepo) ListDeleted(ctx context.Context, userID string) ([]model.File, error) {
	var out []model.File
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, true).
		Order("name").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepo) ListByIDs(ctx context.Context, ids []string) ([]model.File, error) {
	if len(ids) == 0 {
		return []model.File{}, nil
	}
	var out []model.File
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepo) Search(ctx context.Context, userID, query string) ([]model.File, error) {
	var out []model.File
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Where(nameContains, containsPattern(query)).
		Order("name").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepo) Rename(ctx context.Context, userID, id, name string) (*model.File, error) {
	return updateOwned[model.File](r.db.WithContext(ctx), userID, id, map[string]any{"name": name})
}

func (r *fileRepo) Move(ctx context.Context, userID, id string, folder model.FolderRef) (*model.File, error) {
	var folderID any
	if !folder.IsRoot() {
		folderID = folder.ID()
	}
	return updateOwned[model.File](r.db.WithContext(ctx), userID, id, map[string]any{"folder_id": folderID})
}

func (r *fileRepo) SetDeleted(ctx context.Context, userID, id string, deleted bool) (*model.File, error) {
	return updateOwned[model.File](r.db.WithContext(ctx), userID, id, map[string]any{"is_deleted": deleted})
}

func (r *fileRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.File{}).Error
}

func (r *fileRepo) GetOwnerID(ctx context.Context, id string) (string, error) {
	var f model.File
	if err := r.db.WithContext(ctx).Select("user_id").Where("id = ?", id).First(&f).Error; err != nil {
		return "", err
	}
	return f.UserID, nil
}
