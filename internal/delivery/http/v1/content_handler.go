package v1

import (
	"errors"
	"net/http"

	"psbl-site-backend/internal/domain"
	"psbl-site-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the read-only merged content routes the
// frontend renders from. These never fail on a missing or unreachable
// content source; only unknown detail slugs return 404.
func NewContentHandler(group *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	group.GET("/content/home", handler.Home)
	group.GET("/content/services", handler.Services)
	group.GET("/content/services/:slug", handler.ServicePage)
	group.GET("/content/references", handler.References)
	group.GET("/content/references/:slug", handler.Reference)
	group.GET("/content/contact", handler.Contact)
}

// Home godoc
// @Summary  Resolved front page content
// @Tags     content
// @Produce  json
// @Success  200  {object}  domain.HomeContent
// @Router   /v1/content/home [get]
func (h *ContentHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.ResolveHome(c.Request.Context()))
}

// Services godoc
// @Summary  Resolved services page content
// @Tags     content
// @Produce  json
// @Success  200  {object}  domain.ServicesContent
// @Router   /v1/content/services [get]
func (h *ContentHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.ResolveServices(c.Request.Context()))
}

// ServicePage godoc
// @Summary  One service detail page by slug
// @Tags     content
// @Produce  json
// @Param    slug  path      string  true  "Service page slug"
// @Success  200   {object}  domain.ServicePage
// @Failure  404   {object}  response.ClientError
// @Router   /v1/content/services/{slug} [get]
func (h *ContentHandler) ServicePage(c *gin.Context) {
	page, err := h.contentUC.ResolveServicePage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Sivua ei löytynyt."))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// References godoc
// @Summary  Resolved reference portfolio page
// @Tags     content
// @Produce  json
// @Success  200  {object}  domain.ReferencesPage
// @Router   /v1/content/references [get]
func (h *ContentHandler) References(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.ResolveReferences(c.Request.Context()))
}

// Reference godoc
// @Summary  One project reference by slug
// @Tags     content
// @Produce  json
// @Param    slug  path      string  true  "Reference slug"
// @Success  200   {object}  domain.ReferenceItem
// @Failure  404   {object}  response.ClientError
// @Router   /v1/content/references/{slug} [get]
func (h *ContentHandler) Reference(c *gin.Context) {
	item, err := h.contentUC.ResolveReference(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Referenssiä ei löytynyt."))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Contact godoc
// @Summary  Resolved contact page content
// @Tags     content
// @Produce  json
// @Success  200  {object}  domain.ContactContent
// @Router   /v1/content/contact [get]
func (h *ContentHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUC.ResolveContact(c.Request.Context()))
}
