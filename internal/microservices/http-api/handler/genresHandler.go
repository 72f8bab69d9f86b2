package handler

import (
	"net/http"

	"tunahub/internal/microservices/http-api/dto"
	"tunahub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Retrieve)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Destroy)
}

func (h *GenreHandler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.GenreResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, dto.GenreFromModel(g))
	}
	c.JSON(http.StatusOK, resp)
}

// Retrieve handles GET /genres/:id; songs are resolved through the
// song_genres rows.
func (h *GenreHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "Genre")
	if !ok {
		return
	}
	g, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*g))
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.GenreDTO
	if !bindBody(c, &in) {
		return
	}
	model := in.ToModel()
	if err := h.svc.Create(c.Request.Context(), &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(model))
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Genre")
	if !ok {
		return
	}
	var in dto.GenreDTO
	if !bindBody(c, &in) {
		return
	}
	model := in.ToModel()
	if err := h.svc.Update(c.Request.Context(), id, &model); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Destroy handles DELETE /genres/:id. Linked songs survive.
func (h *GenreHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "Genre")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
