package models

// User defines a registered backoffice user based on the 'users' table.
// Email is the primary key; accounts are never updated or deleted here.
type User struct {
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // bcrypt hash, excluded from JSON
}
