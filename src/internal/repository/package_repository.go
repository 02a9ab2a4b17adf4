package repository

import (
	"context"
	"strings"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/databases/sqldb"

	"github.com/jmoiron/sqlx"
)

const (
	packageColumns       = `id, category_id, restaurant_id, name, description, discount, start_discount_date, end_discount_date, created_at`
	packageDetailColumns = `id, package_id, name, description, price, created_at`
)

type packageRepository struct {
	DB sqldb.DBInterface
}

func NewPackageRepository(db sqldb.DBInterface) PackageRepository {
	return &packageRepository{
		DB: db,
	}
}

func (r *packageRepository) FindByID(ctx context.Context, id int64) (*entity.Package, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	var pkg entity.Package
	if err := db.GetContext(ctx, &pkg, db.Rebind(`SELECT `+packageColumns+` FROM packages WHERE id = ?`), id); err != nil {
		return nil, storageError(err)
	}

	packages := []entity.Package{pkg}
	if err := attachDetails(ctx, db, packages); err != nil {
		return nil, err
	}
	return &packages[0], nil
}

func (r *packageRepository) List(ctx context.Context, filter model.ListPackagesRequest) ([]entity.Package, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	var conditions []string
	var args []interface{}
	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.RestaurantID != nil {
		conditions = append(conditions, "restaurant_id = ?")
		args = append(args, *filter.RestaurantID)
	}
	query := `SELECT ` + packageColumns + ` FROM packages`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id ASC`

	packages := []entity.Package{}
	if err := db.SelectContext(ctx, &packages, db.Rebind(query), args...); err != nil {
		return nil, storageError(err)
	}
	if err := attachDetails(ctx, db, packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// FindActivePromotions returns packages whose discount window contains asOf, biggest discount first.
func (r *packageRepository) FindActivePromotions(ctx context.Context, asOf time.Time, limit int) ([]entity.Package, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	packages := []entity.Package{}
	query := `SELECT ` + packageColumns + ` FROM packages
		WHERE discount > 0 AND discount <= 100
		AND start_discount_date <= ? AND end_discount_date >= ?
		ORDER BY discount DESC, id ASC LIMIT ?`
	if err := db.SelectContext(ctx, &packages, db.Rebind(query), asOf, asOf, limit); err != nil {
		return nil, storageError(err)
	}
	return packages, nil
}

func attachDetails(ctx context.Context, db *sqlx.DB, packages []entity.Package) error {
	if len(packages) == 0 {
		return nil
	}
	ids := make([]int64, len(packages))
	index := make(map[int64]int, len(packages))
	for i, p := range packages {
		ids[i] = p.ID
		index[p.ID] = i
	}

	query, args, err := sqlx.In(`SELECT `+packageDetailColumns+` FROM package_details WHERE package_id IN (?) ORDER BY id ASC`, ids)
	if err != nil {
		return storageError(err)
	}
	var details []entity.PackageDetail
	if err := db.SelectContext(ctx, &details, db.Rebind(query), args...); err != nil {
		return storageError(err)
	}

	for i := range packages {
		packages[i].Details = []entity.PackageDetail{}
	}
	for _, d := range details {
		if i, ok := index[d.PackageID]; ok {
			packages[i].Details = append(packages[i].Details, d)
		}
	}
	return nil
}
