package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/rentals-service/internal/service"
)

type registerDriverRequest struct {
	Identifier      string `json:"identifier" binding:"required"`
	Name            string `json:"name" binding:"required"`
	LicenseNumber   string `json:"license_number" binding:"required"`
	LicenseCategory string `json:"license_category" binding:"required"`
}

func (h *Handler) registerDriver(c *gin.Context) {
	var req registerDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.fleet.RegisterDriver(c.Request.Context(), service.RegisterDriverInput{
		Identifier:      req.Identifier,
		Name:            req.Name,
		LicenseNumber:   req.LicenseNumber,
		LicenseCategory: req.LicenseCategory,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDriverResponse(*driver))
}

func (h *Handler) getDriver(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := h.fleet.GetDriver(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDriverResponse(*driver))
}

func (h *Handler) listDriverRentals(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	rentals, err := h.rentals.ListDriverRentals(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]rentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		resp = append(resp, toRentalResponse(rental))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *Handler) exportDriverRentals(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.documents.DriverStatement(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeXLSX, doc)
}

type registerVehicleRequest struct {
	Identifier   string `json:"identifier" binding:"required"`
	Year         int    `json:"year" binding:"required"`
	Model        string `json:"model" binding:"required"`
	LicensePlate string `json:"license_plate" binding:"required"`
}

func (h *Handler) registerVehicle(c *gin.Context) {
	var req registerVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.fleet.RegisterVehicle(c.Request.Context(), service.RegisterVehicleInput{
		Identifier:   req.Identifier,
		Year:         req.Year,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVehicleResponse(*vehicle))
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	vehicle, err := h.fleet.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.fleet.ListVehicles(c.Request.Context(), c.Query("plate"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]vehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		resp = append(resp, toVehicleResponse(vehicle))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": len(resp)})
}

type updatePlateRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
}

func (h *Handler) updateVehiclePlate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updatePlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.fleet.UpdateVehiclePlate(c.Request.Context(), id, req.LicensePlate)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

func (h *Handler) deactivateVehicle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.fleet.DeactivateVehicle(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
