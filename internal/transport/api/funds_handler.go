package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service"
)

type FundsHandler struct {
	svs FundsServicer
}

func NewFundsHandler(svs FundsServicer) *FundsHandler {
	return &FundsHandler{svs: svs}
}

type FundRequestResponse struct {
	ID          int64             `json:"id"`
	CreatedAt   time.Time         `json:"createdAt"`
	UserID      int64             `json:"userId"`
	Kind        domain.FundKind   `json:"kind"`
	Amount      decimal.Decimal   `json:"amount"`
	Fee         decimal.Decimal   `json:"fee"`
	NetAmount   decimal.Decimal   `json:"netAmount"`
	Network     string            `json:"network"`
	Address     string            `json:"address,omitempty"`
	TxHash      string            `json:"txHash,omitempty"`
	Status      domain.FundStatus `json:"status"`
	ProcessedAt *time.Time        `json:"processedAt,omitempty"`
}

func newFundRequestResponse(r *domain.FundRequest) FundRequestResponse {
	return FundRequestResponse{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		UserID:      r.UserID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Fee:         r.Fee,
		NetAmount:   r.NetAmount,
		Network:     r.Network,
		Address:     r.Address,
		TxHash:      r.TxHash,
		Status:      r.Status,
		ProcessedAt: r.ProcessedAt,
	}
}

type DepositParams struct {
	Amount  decimal.Decimal `binding:"dpos"                  json:"amount"`
	Network string          `binding:"required,max=32"       json:"network"`
	TxHash  string          `binding:"required,max_bytes=128" json:"txHash"`
}

// Deposit POST RouteGroup + DepositsRoute.
func (h *FundsHandler) Deposit(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params DepositParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, err := h.svs.RequestDeposit(reqCtx, currentUserID, service.DepositArgs{
		Amount:  params.Amount,
		Network: params.Network,
		TxHash:  params.TxHash,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFundRequestResponse(req))
}

type WithdrawalParams struct {
	Amount  decimal.Decimal `binding:"dpos"                   json:"amount"`
	Network string          `binding:"required,max=32"        json:"network"`
	Address string          `binding:"required,max_bytes=128" json:"address"`
}

// Withdraw POST RouteGroup + WithdrawalsRoute. The amount is debited right away, the fee is taken from it.
func (h *FundsHandler) Withdraw(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawalParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	req, err := h.svs.RequestWithdrawal(reqCtx, currentUserID, service.WithdrawalArgs{
		Amount:  params.Amount,
		Network: params.Network,
		Address: params.Address,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFundRequestResponse(req))
}

// Index GET RouteGroup + FundsRoute.
func (h *FundsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.svs.ListFundRequests(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	response := make([]FundRequestResponse, len(requests))
	for i := range requests {
		response[i] = newFundRequestResponse(&requests[i])
	}
	c.JSON(http.StatusOK, response)
}

// process returns an admin handler applying fn to the request in the :id path parameter.
func (h *FundsHandler) process(fn func(ctx context.Context, id int64) (*domain.FundRequest, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}

		reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
		defer cancel()

		req, err := fn(reqCtx, id)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, newFundRequestResponse(req))
	}
}

// ApproveDeposit POST AdminRouteGroup + DepositApproveRoute.
func (h *FundsHandler) ApproveDeposit() gin.HandlerFunc { return h.process(h.svs.ApproveDeposit) }

// RejectDeposit POST AdminRouteGroup + DepositRejectRoute.
func (h *FundsHandler) RejectDeposit() gin.HandlerFunc { return h.process(h.svs.RejectDeposit) }

// ApproveWithdrawal POST AdminRouteGroup + WithdrawalApproveRoute.
func (h *FundsHandler) ApproveWithdrawal() gin.HandlerFunc { return h.process(h.svs.ApproveWithdrawal) }

// RejectWithdrawal POST AdminRouteGroup + WithdrawalRejectRoute. Refunds the debited amount.
func (h *FundsHandler) RejectWithdrawal() gin.HandlerFunc { return h.process(h.svs.RejectWithdrawal) }
