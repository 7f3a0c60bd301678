package models

type User struct {
	ID           int64   `db:"id" json:"id"`
	Username     string  `db:"username" json:"username"`
	Password     string  `db:"password" json:"-"`
	FirstName    string  `db:"first_name" json:"firstName"`
	LastName     string  `db:"last_name" json:"lastName"`
	Email        string  `db:"email" json:"email"`
	ProfileImage *string `db:"profile_image" json:"profileImage"`
}
