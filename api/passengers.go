package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/service/passenger"
	"github.com/explorex/reservations/internal/validation"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passenger.PassengerUseCase
}

func NewPassengerHandler(service passenger.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("/passenger", h.list)
	router.POST("/passenger", h.create)
	router.GET("/passenger/:id", h.get)
	router.GET("/passenger/reservation/:id", h.listByReservation)
	router.PATCH("/passenger/:id", h.update)
	router.DELETE("/passenger/:id", h.delete)
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving passengers"})
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, errs := validation.Passenger(payload)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, passenger.ErrUnknownReservation) {
			validationFailed(c, []validation.FieldError{{Field: "reservation_id", Message: err.Error()}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating passenger"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Passenger not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving passenger"})
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *PassengerHandler) listByReservation(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	passengers, err := h.service.ListByReservation(c.Request.Context(), reservationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving passengers"})
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, errs := validation.Passenger(payload)
	if errs != nil {
		validationFailed(c, errs)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Passenger not found"})
		case errors.Is(err, passenger.ErrUnknownReservation):
			validationFailed(c, []validation.FieldError{{Field: "reservation_id", Message: err.Error()}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating passenger"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PassengerHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Passenger not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting passenger"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passenger deleted successfully"})
}
