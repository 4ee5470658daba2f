package controllers

import (
	"errors"
	"net/http"
	"option-pricer/interfaces"
	"option-pricer/middleware"
	"option-pricer/services"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ServiceName is reported by the health endpoint
const ServiceName = "option-pricer"

// PricingController handles option pricing endpoints
type PricingController struct {
	pricingService interfaces.PricingService
	defaultLocale  string
	logger         *logrus.Logger
}

// NewPricingController creates a new pricing controller
func NewPricingController(pricing interfaces.PricingService, defaultLocale string, logger *logrus.Logger) *PricingController {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &PricingController{
		pricingService: pricing,
		defaultLocale:  defaultLocale,
		logger:         logger,
	}
}

// RegisterRoutes binds the controller's handlers to r
func (pc *PricingController) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", pc.HandleRoot)
	r.GET("/health", pc.HandleHealth)
	r.POST("/api/price", pc.HandlePrice)
}

func (pc *PricingController) locale(c *gin.Context) string {
	return services.ResolveLocale(c.GetHeader("Accept-Language"), pc.defaultLocale)
}

// HandleRoot returns the welcome message
// GET /
func (pc *PricingController) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": services.Message(pc.locale(c), services.MsgWelcome),
	})
}

// HandleHealth reports liveness
// GET /health
func (pc *PricingController) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   ServiceName,
		"timestamp": time.Now().Unix(),
	})
}

// HandlePrice prices a European option
// POST /api/price
func (pc *PricingController) HandlePrice(c *gin.Context) {
	locale := pc.locale(c)

	var req interfaces.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pc.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Warn("Invalid pricing request body")
		if v, ok := services.DecodeViolation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": services.NewValidationError(locale, []interfaces.Violation{v}).Message,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": services.Message(locale, services.MsgMalformedBody),
		})
		return
	}

	result, err := pc.pricingService.Quote(c.Request.Context(), &req, locale)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"detail": verr.Message,
			})
			return
		}

		pc.logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("Pricing failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": services.Message(locale, services.MsgComputationFailed),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
