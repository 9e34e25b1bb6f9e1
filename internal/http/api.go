package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"account-service/internal/domain"
	"account-service/internal/repository"
	"account-service/internal/service"
)

const accountContextKey = "account"

// Handler wires HTTP routes to the account service.
type Handler struct {
	accounts      service.AccountService
	registerLimit gin.HandlerFunc
}

// NewHandler builds a handler. registerPerMinute <= 0 disables rate
// limiting on the registration endpoint (used by automated tests).
func NewHandler(accounts service.AccountService, registerPerMinute int) *Handler {
	h := &Handler{accounts: accounts}
	if registerPerMinute > 0 {
		h.registerLimit = newRegisterLimiter(registerPerMinute).middleware()
	}
	return h
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	authGroup := router.Group("/auth")
	{
		if h.registerLimit != nil {
			authGroup.POST("/register", h.registerLimit, h.register)
		} else {
			authGroup.POST("/register", h.register)
		}
		authGroup.POST("/login", h.login)
	}

	users := router.Group("/users")
	users.Use(h.authenticate())
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
		users.DELETE("/me", h.deleteMe)
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, _, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		case errors.Is(err, service.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Password must be at least 8 characters"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	token, _, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// authenticate resolves the bearer token into a live account and stores it
// in the request context for the /users handlers.
func (h *Handler) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Could not validate credentials"})
			return
		}

		account, err := h.accounts.Resolve(c.Request.Context(), strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrAccountNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			case errors.Is(err, service.ErrAccountInactive):
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Inactive user"})
			case errors.Is(err, service.ErrUnauthenticated):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Could not validate credentials"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			}
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

func currentAccount(c *gin.Context) *domain.Account {
	v, _ := c.Get(accountContextKey)
	account, _ := v.(*domain.Account)
	return account
}

func (h *Handler) getMe(c *gin.Context) {
	c.JSON(http.StatusOK, accountToResponse(currentAccount(c)))
}

func (h *Handler) updateMe(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	account := currentAccount(c)
	updated, err := h.accounts.UpdateProfile(c.Request.Context(), account.ID, repository.AccountUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, accountToResponse(updated))
}

func (h *Handler) deleteMe(c *gin.Context) {
	account := currentAccount(c)
	if err := h.accounts.Delete(c.Request.Context(), account.ID); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func accountToResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Phone:     account.Phone,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
		UpdatedAt: account.UpdatedAt.Format(time.RFC3339),
	}
}
