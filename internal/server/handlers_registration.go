package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kinderly/kinderly/internal/models"
	"github.com/kinderly/kinderly/internal/service"
)

type contactRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

// RegisterOwner handles POST /owner
func (s *Server) RegisterOwner(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	owner, err := s.registration.RegisterOwner(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// GetOwner handles GET /owner/:id
func (s *Server) GetOwner(c *gin.Context) {
	owner, err := s.registration.GetOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, owner)
}

// RegisterGuardian handles POST /guardians
func (s *Server) RegisterGuardian(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	guardian, err := s.registration.RegisterGuardian(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guardian)
}

// ListGuardians handles GET /guardians
func (s *Server) ListGuardians(c *gin.Context) {
	guardians, err := s.registration.ListGuardians(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list guardians", "error", err)
		writeError(c, err)
		return
	}
	if guardians == nil {
		c.JSON(http.StatusOK, []*models.Guardian{})
		return
	}
	c.JSON(http.StatusOK, guardians)
}

// GetGuardian handles GET /guardians/:id
func (s *Server) GetGuardian(c *gin.Context) {
	guardian, err := s.registration.GetGuardian(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, guardian)
}

type registerChildRequest struct {
	Name       string `json:"name" binding:"required"`
	BirthDate  string `json:"birthDate" binding:"required"`
	GuardianID string `json:"guardianId" binding:"required"`
}

// RegisterChild handles POST /children
func (s *Server) RegisterChild(c *gin.Context) {
	var req registerChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	child, err := s.registration.RegisterChild(c.Request.Context(), req.Name, req.BirthDate, req.GuardianID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, child)
}

// ListChildren handles GET /children
func (s *Server) ListChildren(c *gin.Context) {
	children, err := s.registration.ListChildren(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list children", "error", err)
		writeError(c, err)
		return
	}
	if children == nil {
		c.JSON(http.StatusOK, []*models.Child{})
		return
	}
	c.JSON(http.StatusOK, children)
}

// GetChild handles GET /children/:id
func (s *Server) GetChild(c *gin.Context) {
	child, err := s.registration.GetChild(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}

// updateChildRequest carries the updatable child fields. Anything else
// in the body is ignored; identity and ownership never change here.
type updateChildRequest struct {
	Name      *string `json:"name"`
	BirthDate *string `json:"birthDate"`
}

// UpdateChild handles PUT /children/:id
func (s *Server) UpdateChild(c *gin.Context) {
	var req updateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	child, err := s.registration.UpdateChild(c.Request.Context(), c.Param("id"), service.ChildUpdate{
		Name:      req.Name,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, child)
}

type registerFeeStructureRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// RegisterFeeStructure handles POST /fee-structure
func (s *Server) RegisterFeeStructure(c *gin.Context) {
	var req registerFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	fee, err := s.registration.RegisterFeeStructure(c.Request.Context(), req.Name, req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fee)
}

// ListFeeStructures handles GET /fee-structure
func (s *Server) ListFeeStructures(c *gin.Context) {
	fees, err := s.registration.ListFeeStructures(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list fee structures", "error", err)
		writeError(c, err)
		return
	}
	if fees == nil {
		c.JSON(http.StatusOK, []*models.FeeStructure{})
		return
	}
	c.JSON(http.StatusOK, fees)
}

// GetFeeStructure handles GET /fee-structure/:id
func (s *Server) GetFeeStructure(c *gin.Context) {
	fee, err := s.registration.GetFeeStructure(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fee)
}
