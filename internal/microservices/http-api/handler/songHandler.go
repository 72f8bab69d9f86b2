package handler

import (
	"net/http"

	"tunahub/internal/microservices/http-api/dto"
	"tunahub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	svc service.SongService
}

func NewSongHandler(svc service.SongService) *SongHandler {
	return &SongHandler{svc: svc}
}

func (h *SongHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Retrieve)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Destroy)
}

func (h *SongHandler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.SongResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, dto.SongFromModel(s))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SongHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "Song")
	if !ok {
		return
	}
	s, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SongFromModel(*s))
}

// Create handles POST /songs. An unknown artist id is a 400.
func (h *SongHandler) Create(c *gin.Context) {
	var in dto.SongDTO
	if !bindBody(c, &in) {
		return
	}
	model := in.ToModel()
	created, err := h.svc.Create(c.Request.Context(), &model)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SongFromModel(*created))
}

// Update overwrites every field and may move the song to another artist.
func (h *SongHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Song")
	if !ok {
		return
	}
	var in dto.SongDTO
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

func (h *SongHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "Song")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
