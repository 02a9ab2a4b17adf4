package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/databases/sqldb"
)

// PriceFunc fills the derived price fields of an order from its package detail and package.
type PriceFunc func(order *entity.Order, detail entity.PackageDetail, pkg entity.Package) error

// ApplyFunc mutates a loaded order before it is written back.
type ApplyFunc func(order *entity.Order) error

type OrderRepository interface {
	CreatePriced(ctx context.Context, order *entity.Order, price PriceFunc) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context) ([]entity.Order, error)
	FindByUser(ctx context.Context, userID string, status string) ([]entity.Order, error)
	Update(ctx context.Context, id int64, apply ApplyFunc) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, entity.OrderStatus, error)
	Delete(ctx context.Context, id int64) error
}

type PackageRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Package, error)
	List(ctx context.Context, filter model.ListPackagesRequest) ([]entity.Package, error)
	FindActivePromotions(ctx context.Context, asOf time.Time, limit int) ([]entity.Package, error)
}

type RestaurantRepository interface {
	Search(ctx context.Context, query string, filter model.RestaurantFilter, limit, offset int) ([]entity.Restaurant, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)
}

type ReviewRepository interface {
	FindByRestaurantIDs(ctx context.Context, ids []int64) ([]entity.Review, error)
}

type BlogRepository interface {
	List(ctx context.Context, sortBy, sortOrder string, limit, offset int) ([]entity.Blog, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Blog, error)
}

func withTimeout(ctx context.Context, db sqldb.DBInterface) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.Timeout())
}

// storageError keeps both the taxonomy sentinel and the driver error reachable through errors.Is.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrMissingReference) || errors.Is(err, model.ErrStorage) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return fmt.Errorf("%w: %w", model.ErrStorage, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
