package v1

import (
	"psbl-site-backend/internal/delivery/http/response"
	"psbl-site-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact form route (public, no auth).
// The route keeps its historical path outside the versioned group because
// the deployed frontend posts to /api/contact.
func NewContactHandler(r gin.IRouter, contactUC domain.ContactUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/api/contact", rateLimit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the business by email. Public endpoint. With no relay credentials configured the submission is accepted and reported as simulated.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.OKResponse
// @Failure      400      {object}  response.ClientError
// @Failure      500      {object}  response.ServerError
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		// Malformed JSON lands in the generic failure bucket, the same as
		// any other unexpected error.
		c.Error(err)
		return
	}

	result, err := h.contactUC.Submit(c.Request.Context(), &sub)
	if err != nil {
		c.Error(err)
		return
	}

	if result.Simulated {
		response.Simulated(c)
		return
	}
	response.OK(c)
}
