package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trustcheck/services/quota"
	"trustcheck/utils"
)

// UsageHandler exposes the caller's daily quota record.
type UsageHandler struct {
	Store quota.Store
}

func NewUsageHandler(store quota.Store) *UsageHandler {
	return &UsageHandler{Store: store}
}

// UserUsageHandler handles GET /api/user-usage. The same lazy daily reset
// applies as on the check path, so the frontend always sees today's count.
func (h *UsageHandler) UserUsageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.MsgUserIDRequired})
		return
	}

	rec, err := h.Store.ResetIfStale(c.Request.Context(), userID)
	if err != nil {
		logger.Error("usage lookup failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": utils.MsgUsageFetchFailure})
		return
	}

	c.JSON(http.StatusOK, rec)
}
