package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/services"
)

// ContactHandler handles the public contact form endpoint.
type ContactHandler struct {
	inquiryService services.IInquiryService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(inquiryService services.IInquiryService) *ContactHandler {
	return &ContactHandler{inquiryService: inquiryService}
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Telefono    string `json:"telefono"`
	Mensaje     string `json:"mensaje"`
	PropiedadID *int   `json:"propiedad_id"`
}

// Submit handles POST /v1/contacto.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}

	inquiry := &models.ContactInquiry{
		Nombre:      req.Nombre,
		Email:       req.Email,
		Telefono:    req.Telefono,
		Mensaje:     req.Mensaje,
		PropiedadID: req.PropiedadID,
	}

	created, err := h.inquiryService.SubmitInquiry(c.Request.Context(), inquiry)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo enviar la consulta"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}
