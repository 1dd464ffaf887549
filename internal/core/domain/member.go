package domain

import "time"

// MemberStatus indicates whether a member currently participates in the club.
type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

// Member represents a club participant tracked for dues and fines.
type Member struct {
	MemberID  string       `json:"memberID"` // Primary Key (UUID)
	Name      string       `json:"name"`
	Phone     string       `json:"phone,omitempty"`
	Email     string       `json:"email,omitempty"`
	Status    MemberStatus `json:"status"`
	JoinDate  time.Time    `json:"joinDate"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
