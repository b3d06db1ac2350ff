package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/service/reservation"
	"github.com/explorex/reservations/internal/validation"
	"github.com/explorex/reservations/internal/verify"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service  reservation.ReservationUseCase
	verifier verify.Verifier
}

func NewReservationHandler(service reservation.ReservationUseCase, verifier verify.Verifier) *ReservationHandler {
	return &ReservationHandler{service: service, verifier: verifier}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.GET("/reservation", h.list)
	router.POST("/reservation", h.create)
	router.GET("/reservation/:id", h.get)
	router.PATCH("/reservation/:id", h.update)
	router.DELETE("/reservation/:id", h.delete)
}

func (h *ReservationHandler) list(c *gin.Context) {
	var state *int
	if raw := c.Query("state"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state"})
			return
		}
		state = &value
	}

	reservations, err := h.service.List(c.Request.Context(), state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// create runs the bot check first; validation and persistence only happen
// for verified requests.
func (h *ReservationHandler) create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, _ := payload["recaptchaToken"].(string)
	verified, err := h.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating reservation"})
		return
	}
	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reCAPTCHA"})
		return
	}

	input, errs := validation.Reservation(payload)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating reservation"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReservationHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving reservation"})
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *ReservationHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, errs := validation.Reservation(payload)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating reservation"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ReservationHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting reservation and associated passengers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation and associated passengers deleted successfully"})
}
