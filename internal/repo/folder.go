package repo

import (
	"SkyVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// FolderRepository - доступ к коллекции folders. Все методы ограничены владельцем.
type FolderRepository interface {
	Create(ctx context.Context, f *model.Folder) error
	// ListByParent возвращает папки пользователя, лежащие непосредственно в parent.
	ListByParent(ctx context.Context, userID string, parent model.FolderRef) ([]model.Folder, error)
	ListAll(ctx context.Context, userID string) ([]model.Folder, error)
	Search(ctx context.Context, userID, query string) ([]model.Folder, error)
	// Rename возвращает gorm.ErrRecordNotFound, если папки нет или она чужая.
	Rename(ctx context.Context, userID, id, name string) (*model.Folder, error)
	// Delete удаляет строку без проверки существования и без каскада.
	Delete(ctx context.Context, userID, id string) error
}

type folderRepo struct {
	db *gorm.DB
}

// NewFolderRepository создаёт реализацию репозитория для Folder.
func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepo{db: db}
}

func (r *folderRepo) Create(ctx context.Context, f *model.Folder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *folderRepo) ListByParent(ctx context.Context, userID string, parent model.FolderRef) ([]model.Folder, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if parent.IsRoot() {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", parent.ID())
	}
	var out []model.Folder
	if err := q.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *folderRepo) ListAll(ctx context.Context, userID string) ([]model.Folder, error) {
	var out []model.Folder
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *folderRepo) Search(ctx context.Context, userID, query string) ([]model.Folder, error) {
	var out []model.Folder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(nameContains, containsPattern(query)).
		Order("name").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *folderRepo) Rename(ctx context.Context, userID, id, name string) (*model.Folder, error) {
	return updateOwned[model.Folder](r.db.WithContext(ctx), userID, id, map[string]any{"name": name})
}

func (r *folderRepo) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Folder{}).Error
}
