package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

type PackageHandler struct {
	svs PackageServicer
}

func NewPackageHandler(svs PackageServicer) *PackageHandler {
	return &PackageHandler{svs: svs}
}

type PackageResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	DailyRate        decimal.Decimal `json:"dailyRate"`
	DurationDays     int             `json:"durationDays"`
	MinAmount        decimal.Decimal `json:"minAmount"`
	MaxAmount        decimal.Decimal `json:"maxAmount"`
	RequiredVIPLevel int             `json:"requiredVipLevel"`
	IsActive         bool            `json:"isActive"`
}

func newPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{
		ID:               p.ID,
		Name:             p.Name,
		DailyRate:        p.DailyRate,
		DurationDays:     p.DurationDays,
		MinAmount:        p.MinAmount,
		MaxAmount:        p.MaxAmount,
		RequiredVIPLevel: p.RequiredVIPLevel,
		IsActive:         p.IsActive,
	}
}

// Index GET RouteGroup + PackagesRoute.
func (h *PackageHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	packages, err := h.svs.ListActive(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]PackageResponse, len(packages))
	for i := range packages {
		response[i] = newPackageResponse(&packages[i])
	}
	c.JSON(http.StatusOK, response)
}

type PackageParams struct {
	Name             string          `binding:"required,max=64"     json:"name"`
	DailyRate        decimal.Decimal `binding:"dpos"                json:"dailyRate"`
	DurationDays     int             `binding:"required,min=1"      json:"durationDays"`
	MinAmount        decimal.Decimal `binding:"dpos"                json:"minAmount"`
	MaxAmount        decimal.Decimal `binding:"dpos"                json:"maxAmount"`
	RequiredVIPLevel int             `binding:"min=0,max=5"         json:"requiredVipLevel"`
	IsActive         *bool           `binding:"required"            json:"isActive"`
}

func (p PackageParams) toDomain(id int64) domain.Package {
	return domain.Package{
		ID:               id,
		Name:             p.Name,
		DailyRate:        p.DailyRate,
		DurationDays:     p.DurationDays,
		MinAmount:        p.MinAmount,
		MaxAmount:        p.MaxAmount,
		RequiredVIPLevel: p.RequiredVIPLevel,
		IsActive:         *p.IsActive,
	}
}

// Create POST AdminRouteGroup + PackagesRoute.
func (h *PackageHandler) Create(c *gin.Context) {
	var params PackageParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	created, err := h.svs.Create(reqCtx, params.toDomain(0))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPackageResponse(created))
}

// Update PUT AdminRouteGroup + PackageRoute.
func (h *PackageHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var params PackageParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	updated, err := h.svs.Update(reqCtx, params.toDomain(id))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPackageResponse(updated))
}
