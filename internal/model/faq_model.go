package model

import "github.com/google/uuid"

type Faq struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category  string    `gorm:"type:text;not null;index"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"not null;default:0"`
}

func (Faq) TableName() string {
	return "faqs"
}
