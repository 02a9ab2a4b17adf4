package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64           `db:"id" gorm:"primaryKey;autoIncrement"`
	PackageID       *int64          `db:"package_id" gorm:"index"`
	PackageDetailID int64           `db:"package_detail_id" gorm:"not null;index"`
	RestaurantID    int64           `db:"restaurant_id" gorm:"not null;index"`
	UserID          string          `db:"user_id" gorm:"type:varchar(64);not null;index"`
	Location        string          `db:"location" gorm:"type:varchar(255);not null"`
	EventDate       time.Time       `db:"event_date" gorm:"type:date;not null"`
	StartTime       string          `db:"start_time" gorm:"type:varchar(8);not null"`
	EndTime         string          `db:"end_time" gorm:"type:varchar(8);not null"`
	Participants    int             `db:"participants" gorm:"not null"`
	Message         *string         `db:"message" gorm:"type:text"`
	UnitPrice       decimal.Decimal `db:"unit_price" gorm:"type:decimal(12,2);not null"`
	TotalPrice      decimal.Decimal `db:"total_price" gorm:"type:decimal(14,2);not null"`
	Status          OrderStatus     `db:"status" gorm:"type:varchar(32);not null;default:pending;index"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
