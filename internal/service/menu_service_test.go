package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"villasol/internal/cache"
	"villasol/internal/model"
)

// MockMenuItemRepository is a mock implementation of MenuItemRepository.
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuItemRepository) FindByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

// unreachableCache points at a closed port so every lookup is a miss.
func unreachableCache() *cache.Client {
	return cache.New("127.0.0.1:1", "", 0)
}

func TestMenuService_List(t *testing.T) {
	repo := new(MockMenuItemRepository)
	items := []model.MenuItem{
		{ID: 1, Name: "Gazpacho", Category: "starters", Price: decimal.NewFromInt(6)},
		{ID: 2, Name: "Paella", Category: "mains", Price: decimal.NewFromInt(18)},
	}
	repo.On("List", mock.Anything).Return(items, nil)
	svc := NewMenuService(repo, unreachableCache(), &fakeMediaStore{}, "villasol", discardLogger())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, items, got)
	repo.AssertExpectations(t)
}

func TestMenuService_Delete(t *testing.T) {
	const imageURL = "https://res.cloudinary.com/demo/image/upload/v1712345678/villasol/menu/paella.jpg"

	repo := new(MockMenuItemRepository)
	repo.On("FindByID", mock.Anything, uint(2)).Return(&model.MenuItem{ID: 2, Name: "Paella", ImageURL: imageURL}, nil)
	repo.On("Delete", mock.Anything, uint(2)).Return(nil)
	store := &fakeMediaStore{}
	svc := NewMenuService(repo, unreachableCache(), store, "villasol", discardLogger())

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, []string{"villasol/menu/paella"}, store.deletedIDs)
	repo.AssertExpectations(t)
}

func TestMenuService_CreateWithoutImage(t *testing.T) {
	repo := new(MockMenuItemRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.MenuItem")).Return(nil)
	store := &fakeMediaStore{}
	svc := NewMenuService(repo, unreachableCache(), store, "villasol", discardLogger())

	item, err := svc.Create(context.Background(), MenuItemInput{
		Name:     "Tarta de queso",
		Category: "desserts",
		Price:    decimal.NewFromInt(7),
	}, nil)

	require.NoError(t, err)
	assert.Empty(t, item.ImageURL)
	assert.Zero(t, store.uploads)
}
