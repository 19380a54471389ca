// File: internal/model/user.go
package model

// User is a row of the users table. Password holds the bcrypt hash.
type User struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}
