package models

// Role is the access level carried inside an auth token.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)
