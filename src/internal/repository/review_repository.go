package repository

import (
	"context"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/pkg/databases/sqldb"

	"github.com/jmoiron/sqlx"
)

type reviewRepository struct {
	DB sqldb.DBInterface
}

func NewReviewRepository(db sqldb.DBInterface) ReviewRepository {
	return &reviewRepository{
		DB: db,
	}
}

func (r *reviewRepository) FindByRestaurantIDs(ctx context.Context, ids []int64) ([]entity.Review, error) {
	if len(ids) == 0 {
		return []entity.Review{}, nil
	}
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	query, args, err := sqlx.In(`SELECT id, restaurant_id, user_id, review_info, rating, timestamp
		FROM reviews WHERE restaurant_id IN (?) ORDER BY id ASC`, ids)
	if err != nil {
		return nil, storageError(err)
	}
	reviews := []entity.Review{}
	if err := db.SelectContext(ctx, &reviews, db.Rebind(query), args...); err != nil {
		return nil, storageError(err)
	}
	return reviews, nil
}
