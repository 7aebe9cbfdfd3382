package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/transport/api/middlewares"
)

var errInvalidID = errors.New("invalid id")

// getUserIDFromContext returns the current user id set by middlewares.AuthRequired, or 0 when it is missing.
func getUserIDFromContext(c *gin.Context) int64 {
	v, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := v.(int64)
	if !ok {
		return 0
	}
	return userID
}

// bindJSON binds the request body into params. Validation failures abort with 422, malformed bodies with 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// idParam parses the :id path parameter. Aborts with 404 when it is not a positive integer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusNotFound, errInvalidID).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// noOpOutcomes are answered with 200 and an empty status instead of an error.
var noOpOutcomes = []error{ //nolint:gochecknoglobals
	domain.ErrNothingToCollect,
	domain.ErrNothingToRedeem,
	domain.ErrNothingToClaim,
}

var errorStatuses = []struct { //nolint:gochecknoglobals
	err    error
	status int
}{
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrAmountOutOfRange, http.StatusUnprocessableEntity},
	{domain.ErrPackageInactive, http.StatusUnprocessableEntity},
	{domain.ErrVIPLevelTooLow, http.StatusUnprocessableEntity},
	{domain.ErrInvalidReferralCode, http.StatusUnprocessableEntity},
	{domain.ErrInvalidContact, http.StatusUnprocessableEntity},
	{domain.ErrInvalidPackage, http.StatusUnprocessableEntity},
	{domain.ErrRecordNotFound, http.StatusNotFound},
	{domain.ErrNotEnoughBalance, http.StatusPaymentRequired},
	{domain.ErrDuplicateActivePackage, http.StatusConflict},
	{domain.ErrAlreadyProcessed, http.StatusConflict},
	{domain.ErrDuplicateKey, http.StatusConflict},
	{domain.ErrVersionConflict, http.StatusConflict},
}

// abortWithServiceError maps a service error to the response. Known domain errors are public and shown with
// their own message, anything else is a private 500.
func abortWithServiceError(c *gin.Context, err error) {
	for _, noOp := range noOpOutcomes {
		if errors.Is(err, noOp) {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"status": "empty", "message": noOp.Error()})
			return
		}
	}
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			_ = c.AbortWithError(es.status, es.err).SetType(gin.ErrorTypePublic)
			return
		}
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
