package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shayangolmezerji/ChargeAPI/internal/models"
	"github.com/shayangolmezerji/ChargeAPI/internal/service"
	"github.com/shayangolmezerji/ChargeAPI/internal/utils"
)

// ChargeHandler handles the top-up relay endpoint.
type ChargeHandler struct {
	chargeService *service.ChargeService
}

// NewChargeHandler constructs a ChargeHandler.
func NewChargeHandler(chargeService *service.ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeService: chargeService}
}

// CreateCharge handles POST /charge. On success the unwrapped reseller JSON
// is returned verbatim; failures use the standard error envelope.
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var req models.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	result, err := h.chargeService.Charge(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

func (h *ChargeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrAmountOutOfRange):
		utils.Error(c, http.StatusBadRequest, "AMOUNT_OUT_OF_RANGE", "Amount must be between 2000 and 20000")
	case errors.Is(err, utils.ErrInvalidChargeType):
		utils.Error(c, http.StatusBadRequest, "INVALID_CHARGE_TYPE", "Charge type must be 'direct' or 'pincode'")
	case errors.Is(err, utils.ErrOperatorNotFound):
		utils.Error(c, http.StatusBadRequest, "OPERATOR_NOT_FOUND", "No operator found for this phone number")
	case errors.Is(err, utils.ErrMissingWebServiceID):
		utils.Error(c, http.StatusInternalServerError, "MISSING_WEBSERVICE_ID", "Reseller web service ID is not configured")
	case errors.Is(err, utils.ErrUpstreamTimeout):
		utils.Error(c, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "Reseller API request timed out")
	case errors.Is(err, utils.ErrUpstreamUnavailable):
		utils.Error(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Could not reach the reseller API")
	case errors.Is(err, utils.ErrUpstreamStatus), errors.Is(err, utils.ErrInvalidUpstreamResponse):
		utils.Error(c, http.StatusBadGateway, "INVALID_UPSTREAM_RESPONSE", "Reseller API returned an invalid response")
	default:
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
