package repo

import (
	"SkyVault/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestShareRepository_CreateFindList(t *testing.T) {
	db := newTestDB(t)
	r := NewShareRepository(db)
	ctx := context.Background()

	s := &model.Share{FileID: "f1", SharedWithEmail: "bob@example.com", Role: model.RoleViewer}
	require.NoError(t, r.Create(ctx, s))
	assert.NotEmpty(t, s.ID)
	require.NoError(t, r.Create(ctx, &model.Share{FileID: "f1", SharedWithEmail: "eve@example.com", Role: model.RoleOwner}))
	require.NoError(t, r.Create(ctx, &model.Share{FileID: "f2", SharedWithEmail: "bob@example.com", Role: model.RoleEditor}))

	got, err := r.Find(ctx, "f1", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleViewer, got.Role)

	_, err = r.Find(ctx, "f1", "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := r.ListByFile(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ids, err := r.FileIDsSharedWith(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"f1", "f2"}, ids)
}

func TestShareRepository_UniquePair(t *testing.T) {
	db := newTestDB(t)
	r := NewShareRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.Share{FileID: "f1", SharedWithEmail: "bob@example.com", Role: model.RoleViewer}))
	err := r.Create(ctx, &model.Share{FileID: "f1", SharedWithEmail: "bob@example.com", Role: model.RoleEditor})
	assert.Error(t, err)
}

func TestShareRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	r := NewShareRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.Share{FileID: "f1", SharedWithEmail: "bob@example.com", Role: model.RoleViewer}))
	require.NoError(t, r.Delete(ctx, "f1", "bob@example.com"))
	assert.ErrorIs(t, r.Delete(ctx, "f1", "bob@example.com"), gorm.ErrRecordNotFound)
}
