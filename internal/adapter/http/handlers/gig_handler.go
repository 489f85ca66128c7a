package handlers

import (
	"net/http"
	"time"

	request "quickgigs/internal/adapter/http/dto/request"
	response "quickgigs/internal/adapter/http/dto/response"
	"quickgigs/internal/adapter/http/middleware"
	"quickgigs/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GigHandler handles HTTP requests for gigs.
type GigHandler struct {
	usecase usecase.IGigUseCase
	now     func() time.Time
}

func NewGigHandler(uc usecase.IGigUseCase) *GigHandler {
	return &GigHandler{usecase: uc, now: time.Now}
}

// ListGigs returns active gigs, featured first.
func (h *GigHandler) ListGigs(c *gin.Context) {
	var q request.GigListRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	res, err := h.usecase.List(c.Request.Context(), q.ToQuery())
	if err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromGigList(res, h.now()))
}

func (h *GigHandler) GetGig(c *gin.Context) {
	g, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromGig(g, h.now()))
}

func (h *GigHandler) CreateGig(c *gin.Context) {
	in, ok := bindGigInput(c)
	if !ok {
		return
	}
	g, err := h.usecase.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusCreated, response.FromGig(g, h.now()))
}

func (h *GigHandler) UpdateGig(c *gin.Context) {
	in, ok := bindGigInput(c)
	if !ok {
		return
	}
	g, err := h.usecase.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromGig(g, h.now()))
}

func (h *GigHandler) ToggleGig(c *gin.Context) {
	g, err := h.usecase.ToggleActive(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromGig(g, h.now()))
}

func (h *GigHandler) DeleteGig(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GigHandler) GigStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		respondError(c, "[gig][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.GigStatsResponse{FeaturedActive: stats.FeaturedActive})
}

func bindGigInput(c *gin.Context) (usecase.GigInput, bool) {
	var payload request.GigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return usecase.GigInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := errInvalidRequest.WithMessage(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return usecase.GigInput{}, false
	}
	return in, true
}
