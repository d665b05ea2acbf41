package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/powerme/portal-api/internal/core/domain"
	"github.com/powerme/portal-api/internal/core/ports"
)

type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type documentListResponse struct {
	Documents []domain.Document `json:"documents"`
}

// List returns all documents for a customer.
//
// @Summary      List customer documents
// @Tags         documents
// @Produce      json
// @Param        customer_id  path      string  true  "Customer ID"
// @Success      200          {object}  documentListResponse
// @Failure      403          {object}  errorResponse
// @Router       /customer/{customer_id}/documents [get]
func (h *DocumentHandler) List(c echo.Context) error {
	docs, err := h.service.List(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documentListResponse{Documents: docs})
}

// Upload accepts a multipart file and records its metadata. Only size and
// emptiness are validated; the content itself is Salesforce's concern.
//
// @Summary      Upload a customer document
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        customer_id  path      string  true  "Customer ID"
// @Param        file         formData  file    true  "Document file"
// @Success      201          {object}  domain.Document
// @Failure      400          {object}  errorResponse
// @Router       /customer/{customer_id}/documents [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "file is required"})
	}

	doc, err := h.service.Upload(c.Request().Context(), c.Param("customer_id"), ports.UploadInput{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		switch err {
		case domain.ErrEmptyUpload, domain.ErrUploadTooLarge:
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, doc)
}

// Download redirects to the stored download URL for a document.
//
// @Summary      Download a customer document
// @Tags         documents
// @Param        customer_id  path  string  true  "Customer ID"
// @Param        document_id  path  string  true  "Document ID"
// @Success      302
// @Failure      404  {object}  errorResponse
// @Router       /customer/{customer_id}/documents/{document_id}/download [get]
func (h *DocumentHandler) Download(c echo.Context) error {
	url, err := h.service.ResolveDownload(c.Request().Context(), c.Param("customer_id"), c.Param("document_id"))
	if err != nil {
		if err == domain.ErrDocumentNotFound {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.Redirect(http.StatusFound, url)
}
