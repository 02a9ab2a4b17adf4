package entity

import "time"

type Restaurant struct {
	ID          int64     `db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `db:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	Description *string   `db:"description" gorm:"type:text"`
	UserID      string    `db:"user_id" gorm:"type:varchar(64);not null;index"`
	TaxID       *string   `db:"tax_id" gorm:"type:varchar(64)"`
	SubLocation *string   `db:"sub_location" gorm:"type:varchar(255)"`
	Location    *string   `db:"location" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `db:"created_at"`

	MainCategories  []Category        `db:"-" gorm:"-"`
	FoodCategories  []Category        `db:"-" gorm:"-"`
	EventCategories []Category        `db:"-" gorm:"-"`
	Images          []RestaurantImage `db:"-" gorm:"foreignKey:RestaurantID"`
	Reviews         []Review          `db:"-" gorm:"foreignKey:RestaurantID"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Category is a row of any of the three restaurant taxonomies, joined with the
// restaurant it was loaded for.
type Category struct {
	RestaurantID int64  `db:"restaurant_id"`
	ID           int64  `db:"id"`
	Name         string `db:"name"`
}

type RestaurantImage struct {
	ID           int64     `db:"id" gorm:"primaryKey;autoIncrement"`
	RestaurantID int64     `db:"restaurant_id" gorm:"not null;index"`
	URL          string    `db:"url" gorm:"type:varchar(512);not null"`
	CreatedAt    time.Time `db:"created_at"`
}

func (RestaurantImage) TableName() string {
	return "restaurant_images"
}

type MainCategory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (MainCategory) TableName() string {
	return "restaurant_main_category"
}

type FoodCategory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (FoodCategory) TableName() string {
	return "restaurant_food_categories"
}

type EventCategory struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

func (EventCategory) TableName() string {
	return "restaurant_event_categories"
}

type RestaurantMainCategoryMap struct {
	RestaurantID   int64 `gorm:"primaryKey"`
	MainCategoryID int64 `gorm:"primaryKey;index"`
}

func (RestaurantMainCategoryMap) TableName() string {
	return "restaurant_main_category_map"
}

type RestaurantFoodCategoryMap struct {
	RestaurantID   int64 `gorm:"primaryKey"`
	FoodCategoryID int64 `gorm:"primaryKey;index"`
}

func (RestaurantFoodCategoryMap) TableName() string {
	return "restaurant_food_category_map"
}

type RestaurantEventCategoryMap struct {
	RestaurantID    int64 `gorm:"primaryKey"`
	EventCategoryID int64 `gorm:"primaryKey;index"`
}

func (RestaurantEventCategoryMap) TableName() string {
	return "restaurant_event_category_map"
}
