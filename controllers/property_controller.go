package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-backend/dto"
	"booking-backend/services"
	"booking-backend/utils"
)

const msgPropertyNotFound = "Propriedade não encontrada"

type PropertyController struct {
	PropertySvc *services.PropertyService
	BookingSvc  *services.BookingService
}

func NewPropertyController(svc *services.PropertyService, bookings *services.BookingService) *PropertyController {
	return &PropertyController{PropertySvc: svc, BookingSvc: bookings}
}

// CreateProperty (POST /properties)
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.MsgInvalidBody)
		return
	}

	property, err := ctrl.PropertySvc.CreateProperty(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONCreated(c, "Property created successfully", "property", dto.NewPropertyResponse(property))
}

// GetProperty (GET /properties/:id)
func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	property, err := ctrl.PropertySvc.FindPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if property == nil {
		utils.JSONError(c, http.StatusNotFound, msgPropertyNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": dto.NewPropertyResponse(property)})
}

// GetPropertyBookings (GET /properties/:id/bookings)
func (ctrl *PropertyController) GetPropertyBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.ListPropertyBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": dto.NewBookingResponses(bookings)})
}
