package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/config"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/display"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/services"
)

// PropertyHandler handles the public catalog endpoints.
type PropertyHandler struct {
	propertyService services.IPropertyService
	cfg             *config.Config
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.IPropertyService, cfg *config.Config) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, cfg: cfg}
}

// PropertyCard is a catalog entry with its derived display values.
type PropertyCard struct {
	models.Property
	PrecioFormateado string `json:"precio_formateado"`
}

// PropertyDetail is a full listing with every derived display value the
// detail page needs.
type PropertyDetail struct {
	models.Property
	PrecioFormateado string                 `json:"precio_formateado"`
	Galeria          []display.GalleryImage `json:"galeria"`
}

func (h *PropertyHandler) cards(properties []models.Property) []PropertyCard {
	cards := make([]PropertyCard, len(properties))
	for i := range properties {
		cards[i] = PropertyCard{
			Property:         properties[i],
			PrecioFormateado: display.PriceLabel(&properties[i]),
		}
	}
	return cards
}

// Search handles GET /v1/propiedades. The query string carries the filter
// state; absent parameters take their defaults.
func (h *PropertyHandler) Search(c *gin.Context) {
	filters := models.ParseFilters(c.Request.URL.Query())
	properties, err := h.propertyService.SearchProperties(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar propiedades"})
		return
	}
	c.JSON(http.StatusOK, h.cards(properties))
}

// Featured handles GET /v1/propiedades/destacadas.
func (h *PropertyHandler) Featured(c *gin.Context) {
	properties, err := h.propertyService.FetchFeatured(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar propiedades"})
		return
	}
	c.JSON(http.StatusOK, h.cards(properties))
}

// GetByID handles GET /v1/propiedades/:id.
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de propiedad inválido"})
		return
	}

	property, err := h.propertyService.FindPropertyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Propiedad no encontrada"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar la propiedad"})
		}
		return
	}

	c.JSON(http.StatusOK, PropertyDetail{
		Property:         *property,
		PrecioFormateado: display.PriceLabel(property),
		Galeria:          display.Gallery(property, h.cfg.PlaceholderImage),
	})
}
