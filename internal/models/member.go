package models

import "time"

// Member represents a row in the members table.
type Member struct {
	MemberID  string    `db:"member_id"`
	Name      string    `db:"name"`
	Phone     *string   `db:"phone"`
	Email     *string   `db:"email"`
	Status    string    `db:"status"`
	JoinDate  time.Time `db:"join_date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
