package repository

import (
	"context"
	"testing"

	"marketplace-service/src/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var restaurantRowColumns = []string{"id", "name", "description", "user_id", "tax_id", "sub_location", "location", "created_at"}

func TestRestaurantRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db, NewReviewRepository(db))
	food := int64(4)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants r WHERE \(LOWER\(r.name\) LIKE \? OR (.+)\) AND EXISTS \(SELECT 1 FROM restaurant_food_category_map`).
		WithArgs("%baan%", "%baan%", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(`SELECT (.+) FROM restaurants r WHERE (.+) ORDER BY r.id ASC LIMIT \? OFFSET \?`).
		WithArgs("%baan%", "%baan%", int64(4), 10, 10).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).
			AddRow(int64(1), "Baan Thai", nil, "owner", nil, nil, nil, fixedNow).
			AddRow(int64(2), "Baan Suan", "garden", "owner", nil, nil, nil, fixedNow))
	mock.ExpectQuery(`FROM restaurant_main_category_map m JOIN restaurant_main_category c`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "id", "name"}).AddRow(int64(1), int64(1), "Thai"))
	mock.ExpectQuery(`FROM restaurant_food_category_map m JOIN restaurant_food_categories c`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "id", "name"}).
			AddRow(int64(1), int64(4), "Seafood").AddRow(int64(2), int64(4), "Seafood"))
	mock.ExpectQuery(`FROM restaurant_event_category_map m JOIN restaurant_event_categories c`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "id", "name"}))
	mock.ExpectQuery(`FROM restaurant_images`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "url", "created_at"}).AddRow(int64(5), int64(2), "https://img/5.png", fixedNow))
	mock.ExpectQuery(`FROM reviews WHERE restaurant_id IN \(\?, \?\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "user_id", "review_info", "rating", "timestamp"}).
			AddRow(int64(1), int64(1), "u1", nil, "4", fixedNow).
			AddRow(int64(2), int64(1), "u2", nil, "2", fixedNow))

	restaurants, total, err := repo.Search(context.Background(), "Baan", model.RestaurantFilter{FoodCategoryID: &food}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, restaurants, 2)
	assert.Len(t, restaurants[0].MainCategories, 1)
	assert.Empty(t, restaurants[1].MainCategories)
	assert.Len(t, restaurants[1].FoodCategories, 1)
	assert.NotNil(t, restaurants[0].EventCategories)
	assert.Len(t, restaurants[1].Images, 1)
	assert.Len(t, restaurants[0].Reviews, 2)
	assert.Empty(t, restaurants[1].Reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_SearchEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db, NewReviewRepository(db))
	main := int64(1)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants r WHERE EXISTS`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	restaurants, total, err := repo.Search(context.Background(), "", model.RestaurantFilter{MainCategoryID: &main}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM blogs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`FROM blogs ORDER BY title ASC, id ASC LIMIT \? OFFSET \?`).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp", "title", "detail", "user_id"}).
			AddRow(int64(3), fixedNow, "Zebra", "...", "u1"))

	blogs, total, err := repo.List(context.Background(), "title", "asc", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, blogs, 1)
	assert.Equal(t, "Zebra", blogs[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogRepository_ListRejectsUnknownSort(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBlogRepository(db)

	_, _, err := repo.List(context.Background(), "price", "asc", 10, 0)
	assert.ErrorIs(t, err, model.ErrInvalidSortField)
	_, _, err = repo.List(context.Background(), "id", "ascending", 10, 0)
	assert.ErrorIs(t, err, model.ErrInvalidSortOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectQuery(`FROM packages WHERE id = \?`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "restaurant_id", "name", "description", "discount", "start_discount_date", "end_discount_date", "created_at"}).
			AddRow(int64(2), nil, int64(3), "Wedding", nil, nil, nil, nil, fixedNow))
	mock.ExpectQuery(`FROM package_details WHERE package_id IN \(\?\)`).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "name", "description", "price", "created_at"}).
			AddRow(int64(7), int64(2), "Gold", nil, "300.00", fixedNow).
			AddRow(int64(8), int64(2), "Silver", nil, "200.00", fixedNow))

	pkg, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, pkg.Discount.Valid)
	assert.Len(t, pkg.Details, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_FindActivePromotions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPackageRepository(db)

	mock.ExpectQuery(`FROM packages WHERE discount > 0 (.+) ORDER BY discount DESC, id ASC LIMIT \?`).
		WithArgs(fixedNow, fixedNow, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "restaurant_id", "name", "description", "discount", "start_discount_date", "end_discount_date", "created_at"}).
			AddRow(int64(2), nil, nil, "Wedding", nil, "20", fixedNow, fixedNow, fixedNow))

	packages, err := repo.FindActivePromotions(context.Background(), fixedNow, 5)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "20", packages[0].Discount.Decimal.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_NoIDs(t *testing.T) {
	db, mock := newMockDB(t)
	reviews, err := NewReviewRepository(db).FindByRestaurantIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db, NewReviewRepository(db))

	mock.ExpectQuery(`FROM restaurants r WHERE r.id = \?`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns).AddRow(int64(1), "Baan Thai", nil, "owner", nil, nil, nil, fixedNow))
	for _, table := range []string{"restaurant_main_category_map", "restaurant_food_category_map", "restaurant_event_category_map"} {
		mock.ExpectQuery(`FROM ` + table).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "id", "name"}))
	}
	mock.ExpectQuery(`FROM restaurant_images`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "url", "created_at"}))

	restaurant, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Baan Thai", restaurant.Name)
	assert.Empty(t, restaurant.Reviews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db, NewReviewRepository(db))

	mock.ExpectQuery(`FROM restaurants r WHERE r.id = \?`).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(restaurantRowColumns))

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
