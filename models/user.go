package models

type User struct {
	ID   string `gorm:"primaryKey;size:36" json:"id" validate:"required"`
	Name string `gorm:"size:255;not null" json:"name" validate:"required"`
}

func (User) TableName() string {
	return "users"
}
