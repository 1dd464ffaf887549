package dto

import (
	"time"

	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
)

// CreateMemberRequest defines the payload for creating a member.
type CreateMemberRequest struct {
	Name     string     `json:"name" binding:"required"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email" binding:"omitempty,email"`
	JoinDate *time.Time `json:"joinDate"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateMemberRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Status *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// MemberResponse is the API representation of a member.
type MemberResponse struct {
	MemberID  string    `json:"memberID"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Status    string    `json:"status"`
	JoinDate  time.Time `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain.Member to its API representation.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Status:    string(m.Status),
		JoinDate:  m.JoinDate,
		CreatedAt: m.CreatedAt,
	}
}

// ToListMembersResponse converts a slice of domain.Member to the list response.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: responses}
}
