package entity

import "github.com/google/uuid"

type Faq struct {
	Id        uuid.UUID
	Category  string
	Question  string
	Answer    string
	SortOrder int
}
