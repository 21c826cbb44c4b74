package model

import "time"

const (
	EntityName = "contact"
)

type Contact struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
