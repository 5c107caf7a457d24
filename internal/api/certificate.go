package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portfolli/backend/internal/middleware"
	"github.com/portfolli/backend/internal/service"
)

// maxCertificateFileSize caps uploads at 5 MiB.
const maxCertificateFileSize = 5 << 20

type CertificateHandler struct {
	certificates *service.CertificateService
}

func NewCertificateHandler(certificates *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificates: certificates}
}

// ListMine returns the caller's certificates.
func (h *CertificateHandler) ListMine(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}

	certs, err := h.certificates.ListByUser(c.Request.Context(), ident.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
		return
	}

	c.JSON(http.StatusOK, certs)
}

// ListByUser returns any user's certificates. Public by design.
func (h *CertificateHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	certs, err := h.certificates.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
		return
	}

	c.JSON(http.StatusOK, certs)
}

// Create accepts a multipart form with certificate metadata and an optional
// PDF file.
func (h *CertificateHandler) Create(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	req := service.CreateCertificateRequest{
		Title:     title,
		Issuer:    c.PostForm("issuer"),
		IssueDate: c.PostForm("issue_date"),
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		if fileHeader.Size > maxCertificateFileSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(io.LimitReader(file, maxCertificateFileSize))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
			return
		}
		req.FileName = fileHeader.Filename
		req.ContentType = fileHeader.Header.Get("Content-Type")
		req.FileData = data
	}

	cert, err := h.certificates.Create(c.Request.Context(), ident.ID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create certificate"})
		return
	}

	c.JSON(http.StatusCreated, cert)
}

// Delete removes the caller's certificate. A certificate owned by someone
// else reads as not found.
func (h *CertificateHandler) Delete(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}

	if err := h.certificates.Delete(c.Request.Context(), ident.ID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete certificate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
