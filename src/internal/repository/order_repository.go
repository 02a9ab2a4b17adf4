package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/databases/sqldb"
)

const orderColumns = `id, package_id, package_detail_id, restaurant_id, user_id, location, event_date,
	start_time, end_time, participants, message, unit_price, total_price, status, created_at, updated_at`

type orderRepository struct {
	DB sqldb.DBInterface
}

func NewOrderRepository(db sqldb.DBInterface) OrderRepository {
	return &orderRepository{
		DB: db,
	}
}

// CreatePriced reads the package detail and its package, prices the order and inserts it in one transaction.
func (r *orderRepository) CreatePriced(ctx context.Context, order *entity.Order, price PriceFunc) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError(err)
	}
	defer tx.Rollback()

	var detail entity.PackageDetail
	err = tx.GetContext(ctx, &detail, tx.Rebind(`SELECT `+packageDetailColumns+` FROM package_details WHERE id = ?`), order.PackageDetailID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrMissingReference
	}
	if err != nil {
		return storageError(err)
	}

	var pkg entity.Package
	err = tx.GetContext(ctx, &pkg, tx.Rebind(`SELECT `+packageColumns+` FROM packages WHERE id = ?`), detail.PackageID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrMissingReference
	}
	if err != nil {
		return storageError(err)
	}

	if err := price(order, detail, pkg); err != nil {
		return err
	}

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	id, err := sqldb.InsertReturningID(ctx, tx, `INSERT INTO orders
		(package_id, package_detail_id, restaurant_id, user_id, location, event_date, start_time, end_time,
		participants, message, unit_price, total_price, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.PackageID, order.PackageDetailID, order.RestaurantID, order.UserID, order.Location,
		order.EventDate, order.StartTime, order.EndTime, order.Participants, order.Message,
		order.UnitPrice, order.TotalPrice, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return storageError(err)
	}
	order.ID = id

	return storageError(tx.Commit())
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	return findOrder(ctx, db, id)
}

func findOrder(ctx context.Context, q sqldb.Queryer, id int64) (*entity.Order, error) {
	var order entity.Order
	if err := q.GetContext(ctx, &order, q.Rebind(`SELECT `+orderColumns+` FROM orders WHERE id = ?`), id); err != nil {
		return nil, storageError(err)
	}
	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	orders := []entity.Order{}
	if err := db.SelectContext(ctx, &orders, `SELECT `+orderColumns+` FROM orders ORDER BY id DESC`); err != nil {
		return nil, storageError(err)
	}
	return orders, nil
}

// FindByUser lists a user's orders; an empty status means every status.
func (r *orderRepository) FindByUser(ctx context.Context, userID string, status string) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ?`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id DESC`

	orders := []entity.Order{}
	if err := db.SelectContext(ctx, &orders, db.Rebind(query), args...); err != nil {
		return nil, storageError(err)
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, id int64, apply ApplyFunc) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storageError(err)
	}
	defer tx.Rollback()

	order, err := findOrder(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	order.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE orders SET
		restaurant_id = ?, location = ?, event_date = ?, start_time = ?, end_time = ?,
		participants = ?, message = ?, total_price = ?, status = ?, updated_at = ?
		WHERE id = ?`),
		order.RestaurantID, order.Location, order.EventDate, order.StartTime, order.EndTime,
		order.Participants, order.Message, order.TotalPrice, order.Status, order.UpdatedAt, order.ID,
	)
	if err != nil {
		return nil, storageError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, storageError(err)
	}
	return order, nil
}

// UpdateStatus returns the updated order together with the status it had before.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, entity.OrderStatus, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, "", storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, "", storageError(err)
	}
	defer tx.Rollback()

	order, err := findOrder(ctx, tx, id)
	if err != nil {
		return nil, "", err
	}
	previous := order.Status
	order.Status = status
	order.UpdatedAt = time.Now().UTC()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`),
		order.Status, order.UpdatedAt, order.ID); err != nil {
		return nil, "", storageError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, "", storageError(err)
	}
	return order, previous, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return storageError(err)
	}
	ctx, cancel := withTimeout(ctx, r.DB)
	defer cancel()

	res, err := db.ExecContext(ctx, db.Rebind(`DELETE FROM orders WHERE id = ?`), id)
	if err != nil {
		return storageError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return storageError(err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
