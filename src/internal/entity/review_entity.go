package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Review struct {
	ID           int64               `db:"id" gorm:"primaryKey;autoIncrement"`
	RestaurantID int64               `db:"restaurant_id" gorm:"not null;index"`
	UserID       string              `db:"user_id" gorm:"type:varchar(64);not null"`
	ReviewInfo   *string             `db:"review_info" gorm:"type:text"`
	Rating       decimal.NullDecimal `db:"rating" gorm:"type:decimal(3,2)"`
	Timestamp    time.Time           `db:"timestamp"`
}

func (Review) TableName() string {
	return "reviews"
}
