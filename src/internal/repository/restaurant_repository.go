package repository

import (
	"context"
	"strings"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/databases/sqldb"

	"github.com/jmoiron/sqlx"
)

const restaurantColumns = `r.id, r.name, r.description, r.user_id, r.tax_id, r.sub_location, r.location, r.created_at`

// categoryJoin describes one restaurant taxonomy: its mapping table, the mapping column and the lookup table.
type categoryJoin struct {
	mapTable  string
	mapColumn string
	table     string
}

var (
	mainCategoryJoin  = categoryJoin{"restaurant_main_category_map", "main_category_id", "restaurant_main_category"}
	foodCategoryJoin  = categoryJoin{"restaurant_food_category_map", "food_category_id", "restaurant_food_categories"}
	eventCategoryJoin = categoryJoin{"restaurant_event_category_map", "event_category_id", "restaurant_event_categories"}
)

func (j categoryJoin) existsClause() string {
	return `EXISTS (SELECT 1 FROM ` + j.mapTable + ` m WHERE m.restaurant_id = r.id AND m.` + j.mapColumn + ` = ?)`
}

type restaurantRepository struct {
	DB      sqldb.DBInterface
	Reviews ReviewRepository
}

func NewRestaurantRepository(db sqldb.DBInterface, reviews ReviewRepository) RestaurantRepository {
	return &restaurantRepository{
		DB:      db,
		Reviews: reviews,
	}
}

func searchConditions(query string, filter model.RestaurantFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if q := strings.TrimSpace(query); q != "" {
		pattern := containsPattern(q)
		conditions = append(conditions, `(LOWER(r.name) LIKE ? OR LOWER(COALESCE(r.description, '')) LIKE ?)`)
		args = append(args, pattern, pattern)
	}
	if filter.MainCategoryID != nil {
		conditions = append(conditions, mainCategoryJoin.existsClause())
		args = append(args, *filter.MainCategoryID)
	}
	if filter.FoodCategoryID != nil {
		conditions = append(conditions, foodCategoryJoin.existsClause())
		args = append(args, *filter.FoodCategoryID)
	}
	if filter.EventCategoryID != nil {
		conditions = append(conditions, eventCategoryJoin.existsClause())
		args = append(args, *filter.EventCategoryID)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return ` WHERE ` + strings.Join(conditions, " AND "), args
}

// Search matches the text against name or description and ANDs every supplied category filter.
// Rows come back in id order with images, categories and reviews attached.
func (r *restaurantRepository) Search(ctx context.Context, query string, filter model.RestaurantFilter, limit, offset int) ([]entity.Restaurant, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	where, args := searchConditions(query, filter)

	var total int64
	if err := db.GetContext(ctx, &total, db.Rebind(`SELECT COUNT(*) FROM restaurants r`+where), args...); err != nil {
		return nil, 0, storageError(err)
	}

	restaurants := []entity.Restaurant{}
	if total == 0 {
		return restaurants, 0, nil
	}

	pageArgs := append(append([]interface{}{}, args...), limit, offset)
	pageQuery := `SELECT ` + restaurantColumns + ` FROM restaurants r` + where + ` ORDER BY r.id ASC LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &restaurants, db.Rebind(pageQuery), pageArgs...); err != nil {
		return nil, 0, storageError(err)
	}
	if err := r.hydrate(ctx, db, restaurants, true); err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// FindByID leaves Reviews empty; the rating summary is served separately.
func (r *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	var restaurant entity.Restaurant
	if err := db.GetContext(ctx, &restaurant, db.Rebind(`SELECT `+restaurantColumns+` FROM restaurants r WHERE r.id = ?`), id); err != nil {
		return nil, storageError(err)
	}
	restaurants := []entity.Restaurant{restaurant}
	if err := r.hydrate(ctx, db, restaurants, false); err != nil {
		return nil, err
	}
	return &restaurants[0], nil
}

// hydrate attaches categories and images, and reviews when withReviews is set.
func (r *restaurantRepository) hydrate(ctx context.Context, db *sqlx.DB, restaurants []entity.Restaurant, withReviews bool) error {
	if len(restaurants) == 0 {
		return nil
	}
	ids := make([]int64, len(restaurants))
	index := make(map[int64]int, len(restaurants))
	for i := range restaurants {
		ids[i] = restaurants[i].ID
		index[restaurants[i].ID] = i
		restaurants[i].MainCategories = []entity.Category{}
		restaurants[i].FoodCategories = []entity.Category{}
		restaurants[i].EventCategories = []entity.Category{}
		restaurants[i].Images = []entity.RestaurantImage{}
		restaurants[i].Reviews = []entity.Review{}
	}

	for _, join := range []struct {
		categoryJoin
		assign func(*entity.Restaurant, entity.Category)
	}{
		{mainCategoryJoin, func(r *entity.Restaurant, c entity.Category) { r.MainCategories = append(r.MainCategories, c) }},
		{foodCategoryJoin, func(r *entity.Restaurant, c entity.Category) { r.FoodCategories = append(r.FoodCategories, c) }},
		{eventCategoryJoin, func(r *entity.Restaurant, c entity.Category) { r.EventCategories = append(r.EventCategories, c) }},
	} {
		query, args, err := sqlx.In(`SELECT m.restaurant_id, c.id, c.name FROM `+join.mapTable+` m
			JOIN `+join.table+` c ON c.id = m.`+join.mapColumn+`
			WHERE m.restaurant_id IN (?) ORDER BY c.id ASC`, ids)
		if err != nil {
			return storageError(err)
		}
		var rows []entity.Category
		if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
			return storageError(err)
		}
		for _, c := range rows {
			if i, ok := index[c.RestaurantID]; ok {
				join.assign(&restaurants[i], c)
			}
		}
	}

	query, args, err := sqlx.In(`SELECT id, restaurant_id, url, created_at FROM restaurant_images
		WHERE restaurant_id IN (?) ORDER BY id ASC`, ids)
	if err != nil {
		return storageError(err)
	}
	var images []entity.RestaurantImage
	if err := db.SelectContext(ctx, &images, db.Rebind(query), args...); err != nil {
		return storageError(err)
	}
	for _, img := range images {
		if i, ok := index[img.RestaurantID]; ok {
			restaurants[i].Images = append(restaurants[i].Images, img)
		}
	}

	if !withReviews {
		return nil
	}
	reviews, err := r.Reviews.FindByRestaurantIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, rv := range reviews {
		if i, ok := index[rv.RestaurantID]; ok {
			restaurants[i].Reviews = append(restaurants[i].Reviews, rv)
		}
	}
	return nil
}
