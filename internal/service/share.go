package service

import (
	"context"
	"errors"
	"fmt"

	"SkyVault/internal/model"
	"SkyVault/internal/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShareService выдаёт доступ к файлам по email и решает, кто может этим управлять.
type ShareService struct {
	files  repo.FileRepository
	shares repo.ShareRepository
	logger *zap.SugaredLogger
}

func NewShareService(files repo.FileRepository, shares repo.ShareRepository, logger *zap.SugaredLogger) *ShareService {
	return &ShareService{files: files, shares: shares, logger: logger}
}

// CanManage - владелец файла или получатель выдачи с ролью owner.
// Отсутствие файла не ошибка: проверка продолжается по выдачам.
func (s *ShareService) CanManage(ctx context.Context, fileID string, who model.Identity) (bool, error) {
	ownerID, err := s.files.GetOwnerID(ctx, fileID)
	switch {
	case err == nil:
		if ownerID == who.ID {
			return true, nil
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, fmt.Errorf("file owner lookup: %w", err)
	}

	if who.Email == "" {
		return false, nil
	}
	grant, err := s.shares.Find(ctx, fileID, who.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("share lookup: %w", err)
	}
	return grant.Role == model.RoleOwner, nil
}

func (s *ShareService) authorize(ctx context.Context, fileID string, who model.Identity) error {
	ok, err := s.CanManage(ctx, fileID, who)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// Create выдаёт email доступ role к файлу fileID.
func (s *ShareService) Create(ctx context.Context, who model.Identity, fileID, email string, role model.Role) (*model.Share, error) {
	if fileID == "" || email == "" {
		return nil, badRequest("file_id, shared_with_email, and role are required")
	}
	// роль проверяется до любых обращений к хранилищу
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if err := s.authorize(ctx, fileID, who); err != nil {
		return nil, err
	}

	_, err := s.shares.Find(ctx, fileID, email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("share lookup: %w", err)
	}

	sh := &model.Share{FileID: fileID, SharedWithEmail: email, Role: role}
	if err := s.shares.Create(ctx, sh); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create share: %w", err)
	}
	s.logger.Infow("file shared", "file_id", fileID, "by", who.ID, "role", role)
	return sh, nil
}

// List возвращает все выдачи файла.
func (s *ShareService) List(ctx context.Context, who model.Identity, fileID string) ([]model.Share, error) {
	if err := s.authorize(ctx, fileID, who); err != nil {
		return nil, err
	}
	out, err := s.shares.ListByFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Share{}
	}
	return out, nil
}

// Revoke отзывает выдачу для email.
func (s *ShareService) Revoke(ctx context.Context, who model.Identity, fileID, email string) error {
	if email == "" {
		return badRequest("email required")
	}
	if err := s.authorize(ctx, fileID, who); err != nil {
		return err
	}
	if err := s.shares.Delete(ctx, fileID, email); err != nil {
		return notFound("share", err)
	}
	return nil
}
