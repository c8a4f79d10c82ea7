package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/rentals-service/internal/http/middleware"
	"github.com/nurpe/rentals-service/internal/model"
	"github.com/nurpe/rentals-service/internal/service"
)

type Handler struct {
	plans     *service.PlanService
	rentals   *service.RentalService
	fleet     *service.FleetService
	documents *service.DocumentService
	log       zerolog.Logger
}

func NewHandler(
	plans *service.PlanService,
	rentals *service.RentalService,
	fleet *service.FleetService,
	documents *service.DocumentService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		plans:     plans,
		rentals:   rentals,
		fleet:     fleet,
		documents: documents,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protected := router.Group("/")
	protected.Use(authMiddleware)
	admin := protected.Group("/")
	admin.Use(middleware.RequireRole(model.RoleAdmin))

	protected.GET("/plans", h.listPlans)
	protected.GET("/plans/:id", h.getPlan)
	admin.GET("/plans/export", h.exportPlans)
	admin.POST("/plans", h.createPlan)
	admin.PUT("/plans/:id", h.updatePlan)
	admin.POST("/plans/:id/activate", h.activatePlan)
	admin.POST("/plans/:id/deactivate", h.deactivatePlan)

	protected.POST("/rentals", h.createRental)
	protected.POST("/rentals/quote", h.quoteRental)
	protected.GET("/rentals/:id", h.getRental)
	protected.POST("/rentals/:id/return", h.returnRental)
	protected.POST("/rentals/:id/cancel", h.cancelRental)
	protected.GET("/rentals/:id/receipt", h.rentalReceipt)

	admin.POST("/drivers", h.registerDriver)
	protected.GET("/drivers/:id", h.getDriver)
	protected.GET("/drivers/:id/rentals", h.listDriverRentals)
	protected.GET("/drivers/:id/rentals/export", h.exportDriverRentals)

	admin.POST("/vehicles", h.registerVehicle)
	protected.GET("/vehicles", h.listVehicles)
	protected.GET("/vehicles/:id", h.getVehicle)
	admin.PUT("/vehicles/:id/plate", h.updateVehiclePlate)
	admin.DELETE("/vehicles/:id", h.deactivateVehicle)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func principalOrAbort(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func sendFile(c *gin.Context, contentType string, doc *service.Document) {
	c.Header("Content-Disposition", "attachment; filename=\""+doc.FileName+"\"")
	c.Data(http.StatusOK, contentType, doc.Content)
}

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
