package domain

// Role distinguishes the two audiences of the treasury: the administrator
// (full read/write) and the public guest viewer (read-only).
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleGuest Role = "GUEST"
)
