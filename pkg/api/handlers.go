package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spaceshare-landing/pkg/apperror"
	"spaceshare-landing/pkg/models"
	"spaceshare-landing/pkg/response"
	"spaceshare-landing/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	leadService services.LeadService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(leadService services.LeadService) *Handlers {
	return &Handlers{
		leadService: leadService,
	}
}

// Landing renders the landing page hosting the lead-capture form.
func (h *Handlers) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"DescribesOptions": models.DescribesOptions,
	})
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	response.Success(c, http.StatusOK, "System operational", nil)
}

// Subscribe godoc
// @Summary      Submit the lead-capture form
// @Description  Validates the form values and subscribes the contact to the mailing list. Public endpoint.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        form  body      models.FormValues  true  "Lead form values"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response  "Invalid JSON or failed validation (error carries a field to message map)"
// @Failure      429   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /api/subscribe [post]
func (h *Handlers) Subscribe(c *gin.Context) {
	var values models.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.Error(apperror.BadRequest("Invalid form data."))
		return
	}

	if !h.leadService.Ready() {
		c.Error(apperror.ServiceUnavailable("Signups are temporarily unavailable. Please try again later."))
		return
	}

	result := h.leadService.Submit(c.Request.Context(), values)

	if len(result.FieldErrors) > 0 {
		c.Error(apperror.Validation(result.FieldErrors))
		return
	}

	switch result.State {
	case services.StateSucceeded:
		response.Success(c, http.StatusOK, "You're on the list!", nil)
	case services.StateSubmitting:
		c.Error(apperror.New(http.StatusConflict, "A submission is already in progress.", nil))
	default:
		c.Error(apperror.BadGateway(result.Message, nil))
	}
}
