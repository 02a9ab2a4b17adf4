package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Package struct {
	ID                int64               `db:"id" gorm:"primaryKey;autoIncrement"`
	CategoryID        *int64              `db:"category_id" gorm:"index"`
	RestaurantID      *int64              `db:"restaurant_id" gorm:"index"`
	Name              string              `db:"name" gorm:"type:varchar(255);not null"`
	Description       *string             `db:"description" gorm:"type:text"`
	Discount          decimal.NullDecimal `db:"discount" gorm:"type:decimal(5,2)"`
	StartDiscountDate *time.Time          `db:"start_discount_date"`
	EndDiscountDate   *time.Time          `db:"end_discount_date"`
	CreatedAt         time.Time           `db:"created_at"`

	Details []PackageDetail `db:"-" gorm:"foreignKey:PackageID"`
}

func (Package) TableName() string {
	return "packages"
}

type PackageDetail struct {
	ID          int64           `db:"id" gorm:"primaryKey;autoIncrement"`
	PackageID   int64           `db:"package_id" gorm:"not null;index"`
	Name        string          `db:"name" gorm:"type:varchar(255);not null"`
	Description *string         `db:"description" gorm:"type:text"`
	Price       decimal.Decimal `db:"price" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (PackageDetail) TableName() string {
	return "package_details"
}
