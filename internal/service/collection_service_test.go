package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/collections-service/internal/domain"
	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code)
}

func TestCollectionCreate_UnknownThemeRejected(t *testing.T) {
	t.Parallel()

	svc := NewCollectionService(newFakeCollectionRepo(), newFakeCategoryRepo(), nil, nil)

	_, err := svc.Create(context.Background(), "u1", CollectionInput{Title: "Stamps", Theme: "vinyl"})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestCollectionCreate_KnownThemeAccepted(t *testing.T) {
	t.Parallel()

	categories := newFakeCategoryRepo(&domain.Category{ID: "c1", Name: "stamps"})
	svc := NewCollectionService(newFakeCollectionRepo(), categories, nil, nil)

	collection, err := svc.Create(context.Background(), "u1", CollectionInput{Title: "Rare", Theme: "stamps"})
	require.NoError(t, err)
	require.Equal(t, "u1", collection.UserID)
	require.NotEmpty(t, collection.ID)
}

func TestCollectionUpdate_OwnerOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo(&domain.Collection{ID: "col-1", UserID: "u1", Title: "Stamps"})
	svc := NewCollectionService(repo, newFakeCategoryRepo(), nil, nil)

	_, err := svc.Update(context.Background(), "intruder", "col-1", CollectionInput{Title: "Hijacked"})
	requireCode(t, err, "FORBIDDEN")

	updated, err := svc.Update(context.Background(), "u1", "col-1", CollectionInput{Title: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
}

func TestCollectionUpdate_EmptyFieldsKeepValues(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo(&domain.Collection{ID: "col-1", UserID: "u1", Title: "Stamps", Description: "rare"})
	svc := NewCollectionService(repo, newFakeCategoryRepo(), nil, nil)

	updated, err := svc.Update(context.Background(), "u1", "col-1", CollectionInput{})
	require.NoError(t, err)
	require.Equal(t, "Stamps", updated.Title)
	require.Equal(t, "rare", updated.Description)
}

func TestCollectionDelete_MissingIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewCollectionService(newFakeCollectionRepo(), newFakeCategoryRepo(), nil, nil)

	_, err := svc.Delete(context.Background(), "u1", "ghost")
	requireCode(t, err, "NOT_FOUND")
}

func TestCollectionListAll_ServedFromWarmCache(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo(&domain.Collection{ID: "col-1", UserID: "u1", Title: "Stamps"})
	cache := &fakeCache{}
	svc := NewCollectionService(repo, newFakeCategoryRepo(), cache, nil)

	first, err := svc.ListAll(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, repo.listed)

	second, err := svc.ListAll(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, repo.listed, "warm cache must short-circuit the store")
}

func TestCollectionListAll_OffsetBypassesCache(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo(&domain.Collection{ID: "col-1", UserID: "u1"})
	cache := &fakeCache{warm: true}
	svc := NewCollectionService(repo, newFakeCategoryRepo(), cache, nil)

	_, err := svc.ListAll(context.Background(), 20, 5)
	require.NoError(t, err)
	require.Equal(t, 1, repo.listed)
}

func TestCollectionMutationsInvalidateCache(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo()
	cache := &fakeCache{}
	svc := NewCollectionService(repo, newFakeCategoryRepo(), cache, nil)

	collection, err := svc.Create(context.Background(), "u1", CollectionInput{Title: "Stamps"})
	require.NoError(t, err)
	require.Equal(t, 1, cache.invalidated)

	_, err = svc.Delete(context.Background(), "u1", collection.ID)
	require.NoError(t, err)
	require.Equal(t, 2, cache.invalidated)
}

func TestCollectionAttachImage(t *testing.T) {
	t.Parallel()

	repo := newFakeCollectionRepo(&domain.Collection{ID: "col-1", UserID: "u1", Title: "Stamps"})
	svc := NewCollectionService(repo, newFakeCategoryRepo(), nil, nil)

	updated, err := svc.AttachImage(context.Background(), "col-1", "https://cdn.example.com/col-1.png")
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	require.Equal(t, "https://cdn.example.com/col-1.png", *updated.ImageURL)
}
