package api

import (
	"errors"
	"net/http"

	"github.com/explorex/reservations/internal/auth"
	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/service/user"
	"github.com/explorex/reservations/internal/validation"
	"github.com/gin-gonic/gin"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type UserHandler struct {
	service user.UserUseCase
	tokens  *auth.Manager
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewUserHandler(service user.UserUseCase, tokens *auth.Manager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.GET("/user", h.list)
	router.POST("/user", h.create)
	router.GET("/user/:id", h.get)
	router.PATCH("/user/:id", h.update)
	router.DELETE("/user/:id", h.delete)

	router.POST("/login", h.login)
	router.GET("/userlogin", h.userLogin)
	router.POST("/refreshuserlogin", h.refreshUserLogin)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, errs := validation.User(payload)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving user"})
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, errs := validation.User(payload)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logged, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailed) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	pair, err := h.tokens.Issue(logged)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookie, pair.Access, int(h.tokens.AccessTTL().Seconds()), "/", "", true, true)
	c.SetCookie(refreshCookie, pair.Refresh, int(h.tokens.RefreshTTL().Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"user":         logged,
		"accessToken":  pair.Access,
		"refreshToken": pair.Refresh,
	})
}

func (h *UserHandler) userLogin(c *gin.Context) {
	token, err := c.Cookie(accessCookie)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access not authorized"})
		return
	}

	claims, err := h.tokens.VerifyAccess(token)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access not authorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       claims.UserID,
		"username": claims.Username,
		"email":    claims.Email,
	})
}

func (h *UserHandler) refreshUserLogin(c *gin.Context) {
	refresh, err := c.Cookie(refreshCookie)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access not authorized"})
		return
	}

	access, err := h.tokens.Refresh(refresh)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access not authorized"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookie, access, int(h.tokens.AccessTTL().Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"accessToken": access})
}
