package model

const (
	EntityName = "user"
)

type User struct {
	ID       int64
	Username string
	Password string
}
