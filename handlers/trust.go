package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trustcheck/models"
	"trustcheck/services/trust"
	"trustcheck/utils"
)

// TrustHandler exposes the trust-check endpoint.
type TrustHandler struct {
	Service trust.Service
}

func NewTrustHandler(svc trust.Service) *TrustHandler {
	return &TrustHandler{Service: svc}
}

// CheckTrustHandler handles POST /api/check-trust.
func (h *TrustHandler) CheckTrustHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.TrustCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.MsgInvalidUsername})
		return
	}

	result, err := h.Service.HandleCheck(c.Request.Context(), req)
	if err != nil {
		status, msg := trustErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Error("trust check failed", zap.String("username", req.Username), zap.Error(err))
		} else {
			logger.Warn("trust check rejected", zap.String("username", req.Username), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, result)
}

// trustErrorResponse maps the service error taxonomy to a status code and a
// user-facing message. Upstream errors relay the provider's own status and
// message when it supplied both.
func trustErrorResponse(err error) (int, string) {
	var (
		validationErr trust.ValidationError
		quotaErr      trust.QuotaExceededError
		upstreamErr   trust.UpstreamError
		timeoutErr    trust.TimeoutError
		requestErr    trust.RequestError
		parseErr      trust.ParseError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, utils.MsgInvalidUsername
	case errors.As(err, &quotaErr):
		return http.StatusForbidden, utils.MsgQuotaExceeded
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError, utils.MsgParseFailure
	case errors.As(err, &upstreamErr):
		if upstreamErr.Status >= http.StatusBadRequest && upstreamErr.Message != "" {
			return upstreamErr.Status, upstreamErr.Message
		}
		return http.StatusInternalServerError, utils.MsgUpstreamFailure
	case errors.As(err, &timeoutErr), errors.As(err, &requestErr):
		return http.StatusInternalServerError, utils.MsgUpstreamFailure
	default:
		// Quota backend lookups are the remaining failure source.
		return http.StatusInternalServerError, utils.MsgUsageFetchFailure
	}
}
