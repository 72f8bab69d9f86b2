package handler

import (
	"net/http"

	"tunahub/internal/microservices/http-api/dto"
	"tunahub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Retrieve)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Destroy)
}

func (h *ArtistHandler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ArtistResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, dto.ArtistFromModel(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArtistHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return
	}
	a, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArtistFromModel(*a))
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var in dto.ArtistDTO
	if !bindBody(c, &in) {
		return
	}
	model := in.ToModel()
	if err := h.svc.Create(c.Request.Context(), &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArtistFromModel(model))
}

func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return
	}
	var in dto.ArtistDTO
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

// Destroy removes the artist together with its songs.
func (h *ArtistHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
