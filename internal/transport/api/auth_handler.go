package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Phone          *string `binding:"omitempty,min=6,max=32"           json:"phone"`
	Email          *string `binding:"omitempty,email,max=255"          json:"email"`
	Password       string  `binding:"required,min=6,max_bytes=72"      json:"password"`
	InvitationCode string  `binding:"omitempty,alphanum,min=4,max=16" json:"invitationCode"`
}

type UserResponse struct {
	ID             int64     `json:"id"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	InvitationCode string    `json:"invitationCode"`
	ReferredBy     *string   `json:"referredBy,omitempty"`
	VIPLevel       int       `json:"vipLevel"`
	IsAdmin        bool      `json:"isAdmin,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Phone:          u.Phone,
		Email:          u.Email,
		InvitationCode: u.InvitationCode,
		ReferredBy:     u.ReferredBy,
		VIPLevel:       u.VIPLevel,
		IsAdmin:        u.IsAdmin,
		CreatedAt:      u.CreatedAt,
	}
}

// Register POST RouteGroup + RegisterRoute. Registers a user and authenticates it.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Phone:          params.Phone,
		Email:          params.Email,
		Password:       params.Password,
		InvitationCode: params.InvitationCode,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this phone or email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user), "token": jwtToken})
}

type UserLoginParams struct {
	Login    string `binding:"required,max=255"             json:"login"`
	Password string `binding:"required,min=6,max_bytes=72" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Authenticates by phone or email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Login:    params.Login,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user), "token": token})
}
