// Package server exposes the HTTP/JSON surface over the registration
// and payment services.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kinderly/kinderly/internal/service"
)

// Server holds the dependencies for the HTTP handlers.
type Server struct {
	registration *service.RegistrationService
	payments     *service.PaymentService
}

// New creates a Server over the given services.
func New(registration *service.RegistrationService, payments *service.PaymentService) *Server {
	return &Server{
		registration: registration,
		payments:     payments,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), CORS(), Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/payments", s.AllocatePayment)
	router.GET("/payments", s.ListPayments)

	router.POST("/owner", s.RegisterOwner)
	router.GET("/owner/:id", s.GetOwner)

	router.POST("/guardians", s.RegisterGuardian)
	router.GET("/guardians", s.ListGuardians)
	router.GET("/guardians/:id", s.GetGuardian)

	router.POST("/children", s.RegisterChild)
	router.GET("/children", s.ListChildren)
	router.GET("/children/:id", s.GetChild)
	router.PUT("/children/:id", s.UpdateChild)

	router.POST("/fee-structure", s.RegisterFeeStructure)
	router.GET("/fee-structure", s.ListFeeStructures)
	router.GET("/fee-structure/:id", s.GetFeeStructure)

	return router
}

// errorBody is the JSON error payload: a machine-readable kind, a
// message, and for referential failures the offending child IDs.
type errorBody struct {
	Kind            service.Kind `json:"kind"`
	Message         string       `json:"message"`
	InvalidChildIDs []string     `json:"invalidChildIds,omitempty"`
}

// writeError maps a service error kind to an HTTP status and writes the
// error payload.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Message: err.Error()}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		body.Kind = svcErr.Kind
		body.InvalidChildIDs = svcErr.InvalidChildIDs
		switch svcErr.Kind {
		case service.KindValidation:
			status = http.StatusBadRequest
		case service.KindNotFound, service.KindInvalidChildIDs:
			status = http.StatusNotFound
		case service.KindConflict:
			status = http.StatusConflict
		}
	}

	c.JSON(status, gin.H{"error": body})
}

// writeBindError reports a malformed or incomplete request body.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{
		Kind:    service.KindValidation,
		Message: "invalid request body: " + err.Error(),
	}})
}
