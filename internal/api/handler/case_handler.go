package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/core/domain"
	"github.com/powerme/portal-api/internal/core/ports"
)

type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

type caseListResponse struct {
	Cases []domain.Case `json:"cases"`
}

type createCaseRequest struct {
	Subject     string `json:"subject"     validate:"required"`
	Description string `json:"description"`
}

type createCaseResponse struct {
	CaseID  string `json:"case_id"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// List returns all cases for a customer.
//
// @Summary      List customer cases
// @Tags         cases
// @Produce      json
// @Param        customer_id  path      string  true  "Customer ID"
// @Success      200          {object}  caseListResponse
// @Failure      403          {object}  errorResponse
// @Router       /customer/{customer_id}/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	cases, err := h.service.List(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caseListResponse{Cases: cases})
}

// Create opens a new support case for a customer.
//
// @Summary      Create a customer case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        customer_id  path      string             true  "Customer ID"
// @Param        body         body      createCaseRequest  true  "Case details"
// @Success      201          {object}  createCaseResponse
// @Failure      400          {object}  errorResponse
// @Router       /customer/{customer_id}/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), c.Param("customer_id"), req.Subject, req.Description)
	if err != nil {
		if err == domain.ErrBlankSubject {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createCaseResponse{
		CaseID:  created.ID,
		Message: "Case created successfully",
		Status:  created.Status,
	})
}
