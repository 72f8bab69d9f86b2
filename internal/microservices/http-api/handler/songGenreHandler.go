package handler

import (
	"net/http"

	"tunahub/internal/microservices/http-api/dto"
	"tunahub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SongGenreHandler struct {
	svc service.SongGenreService
}

func NewSongGenreHandler(svc service.SongGenreService) *SongGenreHandler {
	return &SongGenreHandler{svc: svc}
}

func (h *SongGenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Retrieve)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Destroy)
}

func (h *SongGenreHandler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.SongGenreResponse, 0, len(list))
	for _, sg := range list {
		resp = append(resp, dto.SongGenreFromModel(sg))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SongGenreHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "SongGenre")
	if !ok {
		return
	}
	sg, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SongGenreFromModel(*sg))
}

func (h *SongGenreHandler) Create(c *gin.Context) {
	var in dto.SongGenreDTO
	if !bindBody(c, &in) {
		return
	}
	model := in.ToModel()
	if err := h.svc.Create(c.Request.Context(), &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SongGenreFromModel(model))
}

func (h *SongGenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "SongGenre")
	if !ok {
		return
	}
	var in dto.SongGenreDTO
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

func (h *SongGenreHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "SongGenre")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
