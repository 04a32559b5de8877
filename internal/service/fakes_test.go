package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/collections-service/internal/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
	created []*domain.User
	err     error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
	for _, user := range users {
		repo.byEmail[user.Email] = user
		repo.byID[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if user.ID == "" {
		user.ID = "generated-id"
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	delete(f.byEmail, user.Email)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.byID))
	for _, user := range f.byID {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) SetBlocked(_ context.Context, id string, blocked bool) error {
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.IsBlocked = blocked
	return nil
}

type fakeCollectionRepo struct {
	byID    map[string]*domain.Collection
	listed  int
	updated int
}

func newFakeCollectionRepo(collections ...*domain.Collection) *fakeCollectionRepo {
	repo := &fakeCollectionRepo{byID: make(map[string]*domain.Collection)}
	for _, collection := range collections {
		repo.byID[collection.ID] = collection
	}
	return repo
}

func (f *fakeCollectionRepo) Create(_ context.Context, collection *domain.Collection) error {
	if collection.ID == "" {
		collection.ID = "generated-id"
	}
	f.byID[collection.ID] = collection
	return nil
}

func (f *fakeCollectionRepo) Update(_ context.Context, collection *domain.Collection) error {
	if _, ok := f.byID[collection.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[collection.ID] = collection
	f.updated++
	return nil
}

func (f *fakeCollectionRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeCollectionRepo) GetByID(_ context.Context, id string) (*domain.Collection, error) {
	collection, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return collection, nil
}

func (f *fakeCollectionRepo) ListAll(_ context.Context, _, _ int) ([]domain.Collection, error) {
	f.listed++
	out := make([]domain.Collection, 0, len(f.byID))
	for _, collection := range f.byID {
		out = append(out, *collection)
	}
	return out, nil
}

func (f *fakeCollectionRepo) ListByUser(_ context.Context, userID string) ([]domain.Collection, error) {
	var out []domain.Collection
	for _, collection := range f.byID {
		if collection.UserID == userID {
			out = append(out, *collection)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	byName map[string]*domain.Category
}

func newFakeCategoryRepo(categories ...*domain.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{byName: make(map[string]*domain.Category)}
	for _, category := range categories {
		repo.byName[category.Name] = category
	}
	return repo
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = "generated-id"
	}
	f.byName[category.Name] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for name, category := range f.byName {
		if category.ID == id {
			delete(f.byName, name)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	for _, category := range f.byName {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*domain.Category, error) {
	category, ok := f.byName[name]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return category, nil
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(f.byName))
	for _, category := range f.byName {
		out = append(out, *category)
	}
	return out, nil
}

type fakeCache struct {
	list        []domain.Collection
	warm        bool
	invalidated int
}

func (f *fakeCache) GetList(_ context.Context) ([]domain.Collection, bool) {
	return f.list, f.warm
}

func (f *fakeCache) SetList(_ context.Context, collections []domain.Collection) {
	f.list = collections
	f.warm = true
}

func (f *fakeCache) Invalidate(_ context.Context) {
	f.list = nil
	f.warm = false
	f.invalidated++
}
