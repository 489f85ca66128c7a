package handlers

import (
	"net/http"

	request "quickgigs/internal/adapter/http/dto/request"
	response "quickgigs/internal/adapter/http/dto/response"
	"quickgigs/internal/adapter/http/middleware"
	"quickgigs/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles HTTP requests for gig applications.
type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
}

func NewApplicationHandler(uc usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc}
}

// SubmitApplication applies the caller to the gig in the path.
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var payload request.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := errInvalidRequest.WithMessage(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	app, err := h.usecase.Submit(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, "[application][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// ListGigApplications is the employer's view of applications to their gig.
func (h *ApplicationHandler) ListGigApplications(c *gin.Context) {
	apps, err := h.usecase.ListForGig(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "[application][handler]", err, errGigNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(apps))
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	apps, err := h.usecase.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, "[application][handler]", err, errApplicationNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(apps))
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.usecase.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "[application][handler]", err, errApplicationNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var payload request.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	app, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.UserID(c), c.Param("id"), payload.ResolveStatus(), payload.EmployerNotes)
	if err != nil {
		respondError(c, "[application][handler]", err, errApplicationNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *ApplicationHandler) WithdrawApplication(c *gin.Context) {
	app, err := h.usecase.Withdraw(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, "[application][handler]", err, errApplicationNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}
