package repository

import (
	"context"
	"fmt"
	"strings"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/databases/sqldb"
)

const blogColumns = `id, timestamp, title, detail, user_id`

type blogRepository struct {
	DB sqldb.DBInterface
}

func NewBlogRepository(db sqldb.DBInterface) BlogRepository {
	return &blogRepository{
		DB: db,
	}
}

// List counts all blogs separately from the page it returns. sortBy and sortOrder are
// checked against fixed sets before they reach the query text.
func (r *blogRepository) List(ctx context.Context, sortBy, sortOrder string, limit, offset int) ([]entity.Blog, int64, error) {
	column, ok := model.BlogSortColumns[sortBy]
	if !ok {
		return nil, 0, model.ErrInvalidSortField
	}
	direction := strings.ToUpper(sortOrder)
	if direction != "ASC" && direction != "DESC" {
		return nil, 0, model.ErrInvalidSortOrder
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	var total int64
	if err := db.GetContext(ctx, &total, `SELECT COUNT(*) FROM blogs`); err != nil {
		return nil, 0, storageError(err)
	}

	order := fmt.Sprintf("%s %s", column, direction)
	if column != "id" {
		order += fmt.Sprintf(", id %s", direction)
	}
	blogs := []entity.Blog{}
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY ` + order + ` LIMIT ? OFFSET ?`
	if err := db.SelectContext(ctx, &blogs, db.Rebind(query), limit, offset); err != nil {
		return nil, 0, storageError(err)
	}
	return blogs, total, nil
}

func (r *blogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	var blog entity.Blog
	if err := db.GetContext(ctx, &blog, db.Rebind(`SELECT `+blogColumns+` FROM blogs WHERE id = ?`), id); err != nil {
		return nil, storageError(err)
	}
	return &blog, nil
}
