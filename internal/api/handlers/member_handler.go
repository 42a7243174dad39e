package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lionfit/gym-management-backend/internal/models"
	"github.com/lionfit/gym-management-backend/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// List returns all members ordered by name
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	response := make([]models.MemberResponse, len(members))
	for i, m := range members {
		response[i] = toMemberResponse(m)
	}
	c.JSON(http.StatusOK, response)
}

// Register creates a member with the default trial window
func (h *MemberHandler) Register(c *gin.Context) {
	var req models.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Register(c.Request.Context(), req.Name, req.Contact, req.SubscriptionID)
	if err != nil {
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and contact are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register member"})
		return
	}

	c.JSON(http.StatusCreated, toMemberResponse(member))
}

// Get returns one member by id
func (h *MemberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(member))
}

// GetByCode returns one member by their short code
func (h *MemberHandler) GetByCode(c *gin.Context) {
	member, err := h.memberService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(member))
}

// Update replaces the editable fields of a member
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	var req models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		return
	}

	existing.Name = req.Name
	existing.Contact = req.Contact
	existing.SubscriptionID = req.SubscriptionID
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate

	member, err := h.memberService.Update(c.Request.Context(), existing)
	if err != nil {
		if err == service.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(member))
}

// Delete removes a member. Deleting an absent id succeeds.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member id"})
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
