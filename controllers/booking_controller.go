package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-backend/dto"
	"booking-backend/services"
	"booking-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.MsgInvalidBody)
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONCreated(c, "Booking created successfully", "booking", dto.NewBookingResponse(booking))
}

// GetBooking (GET /bookings/:id)
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.FindBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "Reserva não encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": dto.NewBookingResponse(booking)})
}

// ConfirmBooking (POST /bookings/:id/confirm)
func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully", "booking": dto.NewBookingResponse(booking)})
}

// CancelBooking (POST /bookings/:id/cancel)
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": dto.NewBookingResponse(booking)})
}
