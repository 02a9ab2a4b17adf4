package entity

import "time"

type Blog struct {
	ID        int64     `db:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `db:"timestamp" gorm:"not null;index"`
	Title     string    `db:"title" gorm:"type:varchar(255);not null;index"`
	Detail    string    `db:"detail" gorm:"type:text"`
	UserID    string    `db:"user_id" gorm:"type:varchar(64);not null"`
}

func (Blog) TableName() string {
	return "blogs"
}
