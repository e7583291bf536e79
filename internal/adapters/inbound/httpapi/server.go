// Package httpapi exposes the calculator over HTTP with gin.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nutricalc/nutricalc/internal/application"
	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/rs/cors"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	svc    *application.CalculateService
	logger *slog.Logger
}

// calculateRequest mirrors the calculator form: every value is a string and
// is parsed by domain.ParsePersonalInfo.
type calculateRequest struct {
	domain.RawPersonalInfo
	Exercises []domain.RawExerciseEntry `json:"exercises"`
}

// NewRouter builds the gin engine with all routes, wrapped in CORS handling
// for the given origins ("*" allows any). A nil logger discards.
func NewRouter(svc *application.CalculateService, logger *slog.Logger, allowedOrigins []string) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	h := &Handler{svc: svc, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	router.GET("/healthz", h.healthz)
	api := router.Group("/api")
	api.POST("/calculate", h.calculate)
	api.GET("/catalog/exercises", h.listExercises)
	api.GET("/catalog/meals", h.listMeals)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}

	info, err := domain.ParsePersonalInfo(req.RawPersonalInfo)
	if err != nil {
		apiError(c, statusFor(err), err.Error())
		return
	}

	entries := make([]domain.ExerciseEntry, 0, len(req.Exercises))
	for _, raw := range req.Exercises {
		e, err := domain.ParseExercise(raw)
		if err != nil {
			apiError(c, statusFor(err), err.Error())
			return
		}
		entries = append(entries, e)
	}

	calc, err := h.svc.Calculate(info, entries)
	if err != nil {
		apiError(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, calc)
}

func (h *Handler) listExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Exercises())
}

func (h *Handler) listMeals(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Meals())
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var missing *domain.MissingRequiredFieldError
	var invalid *domain.InvalidInputError
	var unsatisfiable *domain.MenuUnsatisfiableError
	switch {
	case errors.As(err, &missing), errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &unsatisfiable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
