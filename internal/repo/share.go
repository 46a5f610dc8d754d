package repo

import (
	"SkyVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// ShareRepository - доступ к коллекции shares.
type ShareRepository interface {
	Create(ctx context.Context, s *model.Share) error
	// Find возвращает выдачу для пары (fileID, email) или gorm.ErrRecordNotFound.
	Find(ctx context.Context, fileID, email string) (*model.Share, error)
	ListByFile(ctx context.Context, fileID string) ([]model.Share, error)
	// FileIDsSharedWith возвращает id файлов, к которым email получил доступ.
	FileIDsSharedWith(ctx context.Context, email string) ([]string, error)
	// Delete удаляет выдачу; gorm.ErrRecordNotFound, если её не было.
	Delete(ctx context.Context, fileID, email string) error
}

type shareRepo struct {
	db *gorm.DB
}

// NewShareRepository создаёт реализацию репозитория для Share.
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepo{db: db}
}

func (r *shareRepo) Create(ctx context.Context, s *model.Share) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shareRepo) Find(ctx context.Context, fileID, email string) (*model.Share, error) {
	var s model.Share
	err := r.db.WithContext(ctx).
		Where("file_id = ? AND shared_with_email = ?", fileID, email).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shareRepo) ListByFile(ctx context.Context, fileID string) ([]model.Share, error) {
	var out []model.Share
	if err := r.db.WithContext(ctx).Where("file_id = ?", fileID).Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *shareRepo) FileIDsSharedWith(ctx context.Context, email string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Share{}).
		Where("shared_with_email = ?", email).
		Pluck("file_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *shareRepo) Delete(ctx context.Context, fileID, email string) error {
	tx := r.db.WithContext(ctx).
		Where("file_id = ? AND shared_with_email = ?", fileID, email).
		Delete(&model.Share{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
