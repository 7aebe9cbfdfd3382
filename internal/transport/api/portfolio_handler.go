package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

type PortfolioHandler struct {
	svs PortfolioServicer
}

func NewPortfolioHandler(svs PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{svs: svs}
}

type InvestmentResponse struct {
	ID              uuid.UUID               `json:"id"`
	PackageID       int64                   `json:"packageId"`
	PackageName     string                  `json:"packageName"`
	Amount          decimal.Decimal         `json:"amount"`
	DailyRate       decimal.Decimal         `json:"dailyRate"`
	DailyEarning    decimal.Decimal         `json:"dailyEarning"`
	DurationDays    int                     `json:"durationDays"`
	TotalReturn     decimal.Decimal         `json:"totalReturn"`
	TotalEarned     decimal.Decimal         `json:"totalEarned"`
	StartDate       time.Time               `json:"startDate"`
	EndDate         time.Time               `json:"endDate"`
	LastEarningDate *time.Time              `json:"lastEarningDate,omitempty"`
	Status          domain.InvestmentStatus `json:"status"`
}

func newInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:              inv.ID,
		PackageID:       inv.PackageID,
		PackageName:     inv.PackageName,
		Amount:          inv.Amount,
		DailyRate:       inv.DailyRate,
		DailyEarning:    inv.DailyEarning,
		DurationDays:    inv.DurationDays,
		TotalReturn:     inv.TotalReturn,
		TotalEarned:     inv.TotalEarned,
		StartDate:       inv.StartDate,
		EndDate:         inv.EndDate,
		LastEarningDate: inv.LastEarningDate,
		Status:          inv.Status,
	}
}

type CreateInvestmentParams struct {
	PackageID int64           `binding:"required,min=1" json:"packageId"`
	Amount    decimal.Decimal `binding:"dpos"           json:"amount"`
}

// Create POST RouteGroup + InvestmentsRoute.
func (h *PortfolioHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateInvestmentParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	inv, err := h.svs.CreateInvestment(reqCtx, currentUserID, params.PackageID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newInvestmentResponse(inv))
}

// Index GET RouteGroup + InvestmentsRoute.
func (h *PortfolioHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	investments, err := h.svs.ListInvestments(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if len(investments) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]InvestmentResponse, len(investments))
	for i := range investments {
		response[i] = newInvestmentResponse(&investments[i])
	}
	c.JSON(http.StatusOK, response)
}

type ClaimResponse struct {
	InvestmentID uuid.UUID       `json:"investmentId"`
	PackageName  string          `json:"packageName"`
	Days         int             `json:"days"`
	Amount       decimal.Decimal `json:"amount"`
}

type IncomeResponse struct {
	Claims       []ClaimResponse `json:"claims"`
	Total        decimal.Decimal `json:"total"`
	NextBoundary time.Time       `json:"nextBoundary"`
	Matured      []string        `json:"matured,omitempty"`
}

// Income GET RouteGroup + IncomeRoute. Shows what could be collected now.
func (h *PortfolioHandler) Income(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	preview, err := h.svs.PreviewIncome(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	claims := make([]ClaimResponse, len(preview.Claims))
	for i, claim := range preview.Claims {
		claims[i] = ClaimResponse{
			InvestmentID: claim.InvestmentID,
			PackageName:  claim.PackageName,
			Days:         claim.Days,
			Amount:       claim.Amount,
		}
	}
	c.JSON(http.StatusOK, IncomeResponse{
		Claims:       claims,
		Total:        preview.Total,
		NextBoundary: preview.NextBoundary,
		Matured:      preview.Matured,
	})
}

type CollectResponse struct {
	Status    string          `json:"status"`
	Collected decimal.Decimal `json:"collected"`
	Balance   decimal.Decimal `json:"balance"`
	Matured   []string        `json:"matured,omitempty"`
}

// Collect POST RouteGroup + CollectRoute.
func (h *PortfolioHandler) Collect(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.svs.CollectIncome(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, CollectResponse{
		Status:    "ok",
		Collected: res.Collected,
		Balance:   res.Balance,
		Matured:   res.Matured,
	})
}

type RedeemResponse struct {
	Status   string          `json:"status"`
	Redeemed decimal.Decimal `json:"redeemed"`
	Balance  decimal.Decimal `json:"balance"`
}

// Redeem POST RouteGroup + RedeemRoute.
func (h *PortfolioHandler) Redeem(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.svs.Redeem(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, RedeemResponse{Status: "ok", Redeemed: res.Redeemed, Balance: res.Balance})
}

type AssetsResponse struct {
	Balance           decimal.Decimal `json:"balance"`
	RedeemableBalance decimal.Decimal `json:"redeemableBalance"`
	InvestedPrincipal decimal.Decimal `json:"investedPrincipal"`
	TotalEarnings     decimal.Decimal `json:"totalEarnings"`
	InterestIncome    decimal.Decimal `json:"interestIncome"`
	TeamIncome        decimal.Decimal `json:"teamIncome"`
	TeamEarnings      decimal.Decimal `json:"teamEarnings"`
	BonusIncome       decimal.Decimal `json:"bonusIncome"`
	VIPLevel          int             `json:"vipLevel"`
	ActiveInvestments int             `json:"activeInvestments"`
	ClaimableNow      decimal.Decimal `json:"claimableNow"`
	NextBoundary      time.Time       `json:"nextBoundary"`
}

// Assets GET RouteGroup + AssetsRoute.
func (h *PortfolioHandler) Assets(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := h.svs.AssetSummary(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AssetsResponse{
		Balance:           summary.Balance,
		RedeemableBalance: summary.RedeemableBalance,
		InvestedPrincipal: summary.InvestedPrincipal,
		TotalEarnings:     summary.TotalEarnings,
		InterestIncome:    summary.InterestIncome,
		TeamIncome:        summary.TeamIncome,
		TeamEarnings:      summary.TeamEarnings,
		BonusIncome:       summary.BonusIncome,
		VIPLevel:          summary.VIPLevel,
		ActiveInvestments: summary.ActiveInvestments,
		ClaimableNow:      summary.ClaimableNow,
		NextBoundary:      summary.NextBoundary,
	})
}
