package usecase

import (
	"context"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreatePriced(ctx context.Context, order *entity.Order, price repository.PriceFunc) error {
	args := m.Called(ctx, order, price)
	if fn, ok := args.Get(0).(func(*entity.Order, repository.PriceFunc) error); ok {
		return fn(order, price)
	}
	return args.Error(0)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID string, status string) ([]entity.Order, error) {
	args := m.Called(ctx, userID, status)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) Update(ctx context.Context, id int64, apply repository.ApplyFunc) (*entity.Order, error) {
	args := m.Called(ctx, id, apply)
	if stored, ok := args.Get(0).(*entity.Order); ok {
		if err := apply(stored); err != nil {
			return nil, err
		}
		return stored, nil
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, entity.OrderStatus, error) {
	args := m.Called(ctx, id, status)
	order, _ := args.Get(0).(*entity.Order)
	previous, _ := args.Get(1).(entity.OrderStatus)
	return order, previous, args.Error(2)
}

func (m *mockOrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) Search(ctx context.Context, query string, filter model.RestaurantFilter, limit, offset int) ([]entity.Restaurant, int64, error) {
	args := m.Called(ctx, query, filter, limit, offset)
	restaurants, _ := args.Get(0).([]entity.Restaurant)
	return restaurants, args.Get(1).(int64), args.Error(2)
}

func (m *mockRestaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	restaurant, _ := args.Get(0).(*entity.Restaurant)
	return restaurant, args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) FindByRestaurantIDs(ctx context.Context, ids []int64) ([]entity.Review, error) {
	args := m.Called(ctx, ids)
	reviews, _ := args.Get(0).([]entity.Review)
	return reviews, args.Error(1)
}

type mockBlogRepository struct {
	mock.Mock
}

func (m *mockBlogRepository) List(ctx context.Context, sortBy, sortOrder string, limit, offset int) ([]entity.Blog, int64, error) {
	args := m.Called(ctx, sortBy, sortOrder, limit, offset)
	blogs, _ := args.Get(0).([]entity.Blog)
	return blogs, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*entity.Blog)
	return blog, args.Error(1)
}

type mockPackageRepository struct {
	mock.Mock
}

func (m *mockPackageRepository) FindByID(ctx context.Context, id int64) (*entity.Package, error) {
	args := m.Called(ctx, id)
	pkg, _ := args.Get(0).(*entity.Package)
	return pkg, args.Error(1)
}

func (m *mockPackageRepository) List(ctx context.Context, filter model.ListPackagesRequest) ([]entity.Package, error) {
	args := m.Called(ctx, filter)
	packages, _ := args.Get(0).([]entity.Package)
	return packages, args.Error(1)
}

func (m *mockPackageRepository) FindActivePromotions(ctx context.Context, asOf time.Time, limit int) ([]entity.Package, error) {
	args := m.Called(ctx, asOf, limit)
	packages, _ := args.Get(0).([]entity.Package)
	return packages, args.Error(1)
}
