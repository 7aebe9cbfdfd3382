package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommissionHandler struct {
	svs CommissionServicer
}

func NewCommissionHandler(svs CommissionServicer) *CommissionHandler {
	return &CommissionHandler{svs: svs}
}

type CommissionResponse struct {
	ID               int64           `json:"id"`
	CreatedAt        time.Time       `json:"createdAt"`
	InvestmentID     uuid.UUID       `json:"investmentId"`
	FromUserID       int64           `json:"fromUserId"`
	Level            int             `json:"level"`
	InvestmentAmount decimal.Decimal `json:"investmentAmount"`
	Percentage       decimal.Decimal `json:"percentage"`
	Amount           decimal.Decimal `json:"amount"`
}

// Index GET RouteGroup + CommissionsRoute. Lists unclaimed commissions.
func (h *CommissionHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	commissions, err := h.svs.UnclaimedCommissions(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]CommissionResponse, len(commissions))
	for i, cm := range commissions {
		response[i] = CommissionResponse{
			ID:               cm.ID,
			CreatedAt:        cm.CreatedAt,
			InvestmentID:     cm.InvestmentID,
			FromUserID:       cm.FromUserID,
			Level:            cm.Level,
			InvestmentAmount: cm.InvestmentAmount,
			Percentage:       cm.Percentage,
			Amount:           cm.Amount,
		}
	}
	c.JSON(http.StatusOK, response)
}

// Claim POST RouteGroup + CommissionsClaimRoute.
func (h *CommissionHandler) Claim(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.svs.ClaimCommissions(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "count": res.Count, "total": res.Total})
}

var errInvalidInvestmentID = errors.New("invalid investment id")

// Repair POST AdminRouteGroup + RepairRoute. Re-runs the commission fan-out of one investment.
func (h *CommissionHandler) Repair(c *gin.Context) {
	id, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusNotFound, errInvalidInvestmentID).SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	paid, err := h.svs.RepairFanOut(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "paid": len(paid)})
}
