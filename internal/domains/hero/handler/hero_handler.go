package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"repomovil-backend/internal/domains/hero"
	"repomovil-backend/internal/shared/response"
)

type HeroHandler struct {
	service hero.Service
}

func NewHeroHandler(service hero.Service) *HeroHandler {
	return &HeroHandler{service: service}
}

// ListPublic handles GET /api/hero.
func (h *HeroHandler) ListPublic(c *gin.Context) {
	slides, err := h.service.ListPublic(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "internal server error")
		return
	}

	c.JSON(http.StatusOK, slides)
}

// Create handles POST /api/admin/hero.
func (h *HeroHandler) Create(c *gin.Context) {
	var req hero.CreateSlideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ValidationError(c, verrs)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, created)
}

// Update handles PUT /api/admin/hero/:id.
func (h *HeroHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid hero slide id")
		return
	}

	var req hero.UpdateSlideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ValidationError(c, verrs)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/admin/hero/:id.
func (h *HeroHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid hero slide id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, http.StatusOK, nil)
}

func (h *HeroHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, hero.ErrSlideNotFound) {
		response.NotFound(c, "hero slide not found")
		return
	}
	response.InternalServerError(c, "internal server error")
}
