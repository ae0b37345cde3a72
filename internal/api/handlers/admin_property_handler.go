package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/editor"
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/services"
)

// AdminPropertyHandler handles the authenticated admin panel endpoints.
type AdminPropertyHandler struct {
	propertyService services.IPropertyService
	inquiryService  services.IInquiryService
}

// NewAdminPropertyHandler creates a new AdminPropertyHandler.
func NewAdminPropertyHandler(propertyService services.IPropertyService, inquiryService services.IInquiryService) *AdminPropertyHandler {
	return &AdminPropertyHandler{propertyService: propertyService, inquiryService: inquiryService}
}

// PropertyForm is the admin form payload. Numeric fields arrive as the
// strings the form produces and are coerced server-side, mirroring the
// client behaviour.
type PropertyForm struct {
	Titulo             string   `json:"titulo"`
	Descripcion        string   `json:"descripcion"`
	Precio             string   `json:"precio"`
	Moneda             string   `json:"moneda"`
	Operacion          string   `json:"operacion"`
	Tipo               string   `json:"tipo"`
	Direccion          string   `json:"direccion"`
	Ciudad             string   `json:"ciudad"`
	Zona               string   `json:"zona"`
	CodigoPostal       string   `json:"codigo_postal"`
	Provincia          string   `json:"provincia"`
	Habitaciones       string   `json:"habitaciones"`
	Banos              string   `json:"baños"`
	SuperficieTotal    string   `json:"superficie_total"`
	SuperficieCubierta string   `json:"superficie_cubierta"`
	AnoConstruccion    string   `json:"año_construccion"`
	ImagenPrincipal    string   `json:"imagen_principal"`
	Imagenes           []string `json:"imagenes"`
	Caracteristicas    []string `json:"caracteristicas"`
	Destacada          bool     `json:"destacada"`
	Estado             string   `json:"estado"`
}

func (f *PropertyForm) apply(e *editor.Editor) {
	form := e.Form()
	form.Titulo = f.Titulo
	form.Descripcion = f.Descripcion
	form.Precio = f.Precio
	if f.Moneda != "" {
		form.Moneda = f.Moneda
	}
	if f.Operacion != "" {
		form.Operacion = f.Operacion
	}
	if f.Tipo != "" {
		form.Tipo = f.Tipo
	}
	form.Direccion = f.Direccion
	form.Ciudad = f.Ciudad
	form.Zona = f.Zona
	form.CodigoPostal = f.CodigoPostal
	if f.Provincia != "" {
		form.Provincia = f.Provincia
	}
	form.Habitaciones = f.Habitaciones
	form.Banos = f.Banos
	form.SuperficieTotal = f.SuperficieTotal
	form.SuperficieCubierta = f.SuperficieCubierta
	if f.AnoConstruccion != "" {
		form.AnoConstruccion = f.AnoConstruccion
	}
	form.Destacada = f.Destacada
	if f.Estado != "" {
		form.Estado = f.Estado
	}
	e.SetForm(form)

	e.ClearImages()
	images := f.Imagenes
	if f.ImagenPrincipal != "" {
		images = append([]string{f.ImagenPrincipal}, images...)
	}
	e.AddImages(images...)

	e.ClearCharacteristics()
	for _, ch := range f.Caracteristicas {
		e.AddCharacteristic(ch)
	}
}

// List handles GET /v1/admin/propiedades. Unlike the public catalog it
// returns every listing regardless of state.
func (h *AdminPropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.FetchProperties(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar propiedades"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Create handles POST /v1/admin/propiedades.
func (h *AdminPropertyHandler) Create(c *gin.Context) {
	var form PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}

	e := editor.New()
	e.Begin()
	form.apply(e)

	property, err := e.Submit()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.propertyService.CreateProperty(c.Request.Context(), property)
	_ = e.Complete(err)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la propiedad"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/admin/propiedades/:id.
func (h *AdminPropertyHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de propiedad inválido"})
		return
	}

	var form PropertyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}

	existing, err := h.propertyService.FindPropertyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Propiedad no encontrada"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar la propiedad"})
		}
		return
	}

	e := editor.New()
	e.Load(existing)
	form.apply(e)

	property, err := e.Submit()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.propertyService.UpdateProperty(c.Request.Context(), property)
	_ = e.Complete(err)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la propiedad"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ToggleEstado handles PATCH /v1/admin/propiedades/:id/estado.
func (h *AdminPropertyHandler) ToggleEstado(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de propiedad inválido"})
		return
	}

	updated, err := h.propertyService.ToggleEstado(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Propiedad no encontrada"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cambiar el estado"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/admin/propiedades/:id. Deletion is permanent
// and requires explicit confirmation.
func (h *AdminPropertyHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de propiedad inválido"})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La eliminación requiere confirmación"})
		return
	}

	if err := h.propertyService.DeleteProperty(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Propiedad no encontrada"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la propiedad"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListInquiries handles GET /v1/admin/consultas.
func (h *AdminPropertyHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.inquiryService.ListInquiries(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar consultas"})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// MarkInquiryRead handles PATCH /v1/admin/consultas/:id/leida.
func (h *AdminPropertyHandler) MarkInquiryRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id de consulta inválido"})
		return
	}

	var body struct {
		Leida bool `json:"leida"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la solicitud inválido"})
		return
	}

	if err := h.inquiryService.MarkInquiryRead(c.Request.Context(), id, body.Leida); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consulta no encontrada"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la consulta"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
