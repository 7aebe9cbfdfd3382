package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

type NotificationHandler struct {
	svs NotificationServicer
}

func NewNotificationHandler(svs NotificationServicer) *NotificationHandler {
	return &NotificationHandler{svs: svs}
}

type NotificationResponse struct {
	ID        int64                   `json:"id"`
	CreatedAt time.Time               `json:"createdAt"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Kind      domain.NotificationKind `json:"kind"`
	Amount    *decimal.Decimal        `json:"amount,omitempty"`
	Read      bool                    `json:"read"`
}

type NotificationQuery struct {
	Limit uint `binding:"max=100" form:"limit"`
}

// Index GET RouteGroup + NotificationsRoute.
func (h *NotificationHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var query NotificationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	notifications, err := h.svs.List(reqCtx, currentUserID, query.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = NotificationResponse{
			ID:        n.ID,
			CreatedAt: n.CreatedAt,
			Title:     n.Title,
			Message:   n.Message,
			Kind:      n.Kind,
			Amount:    n.Amount,
			Read:      n.Read,
		}
	}
	c.JSON(http.StatusOK, response)
}
