package handlers

import (
	"net/http"

	portssvc "github.com/clubfundhq/clubfund_backend/internal/core/ports/services"
	"github.com/clubfundhq/clubfund_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// memberHandler handles member management requests.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(memberService portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: memberService}
}

// registerMemberRoutes registers the member routes. Listing and reading need a
// token; writes are admin only.
func registerMemberRoutes(tokenGroup, adminGroup *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	tokenGroup.GET("/members", h.listMembers)
	tokenGroup.GET("/members/:id", h.getMember)

	adminGroup.POST("/members", h.createMember)
	adminGroup.PATCH("/members/:id", h.updateMember)
	adminGroup.DELETE("/members/:id", h.deleteMember)
}

func (h *memberHandler) listMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) createMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) deleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
