package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
)

func setupAdminRouter(propSvc *MockPropertyService, inqSvc *MockInquiryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdminPropertyHandler(propSvc, inqSvc)
	r := gin.New()
	r.GET("/v1/admin/propiedades", h.List)
	r.POST("/v1/admin/propiedades", h.Create)
	r.PUT("/v1/admin/propiedades/:id", h.Update)
	r.PATCH("/v1/admin/propiedades/:id/estado", h.ToggleEstado)
	r.DELETE("/v1/admin/propiedades/:id", h.Delete)
	r.GET("/v1/admin/consultas", h.ListInquiries)
	r.PATCH("/v1/admin/consultas/:id/leida", h.MarkInquiryRead)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCoercesFormValues(t *testing.T) {
	propSvc := new(MockPropertyService)
	propSvc.On("CreateProperty", mock.Anything, mock.MatchedBy(func(p *models.Property) bool {
		return p.Titulo == "Casa nueva" &&
			p.Precio == 185000 &&
			p.Habitaciones == 3 &&
			p.ImagenPrincipal == "main.jpg" &&
			len(p.Imagenes) == 1 && p.Imagenes[0] == "extra.jpg"
	})).Return(&models.Property{ID: 1, Titulo: "Casa nueva"}, nil)

	r := setupAdminRouter(propSvc, new(MockInquiryService))
	w := doRequest(r, http.MethodPost, "/v1/admin/propiedades", `{
		"titulo": "Casa nueva",
		"descripcion": "Una casa",
		"precio": "185000",
		"direccion": "Calle 1",
		"ciudad": "Córdoba",
		"habitaciones": "3",
		"imagen_principal": "main.jpg",
		"imagenes": ["extra.jpg"]
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	propSvc.AssertExpectations(t)
}

func TestCreateMissingRequiredField(t *testing.T) {
	propSvc := new(MockPropertyService)
	r := setupAdminRouter(propSvc, new(MockInquiryService))

	w := doRequest(r, http.MethodPost, "/v1/admin/propiedades", `{"titulo": "Sin precio"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	propSvc.AssertNotCalled(t, "CreateProperty", mock.Anything, mock.Anything)
}

func TestCreateDropsImagesBeyondCap(t *testing.T) {
	propSvc := new(MockPropertyService)
	propSvc.On("CreateProperty", mock.Anything, mock.MatchedBy(func(p *models.Property) bool {
		// Main image plus nine secondary ones; the rest are dropped.
		return p.ImagenPrincipal != "" && len(p.Imagenes) == 9
	})).Return(&models.Property{ID: 1}, nil)

	imagenes, _ := json.Marshal(func() []string {
		out := make([]string, 13)
		for i := range out {
			out[i] = "img.jpg"
		}
		return out
	}())

	r := setupAdminRouter(propSvc, new(MockInquiryService))
	w := doRequest(r, http.MethodPost, "/v1/admin/propiedades", `{
		"titulo": "Casa",
		"descripcion": "Una casa",
		"precio": "100",
		"direccion": "Calle 1",
		"ciudad": "Córdoba",
		"imagen_principal": "main.jpg",
		"imagenes": `+string(imagenes)+`
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	propSvc.AssertExpectations(t)
}

func TestUpdateLoadsExistingRecord(t *testing.T) {
	propSvc := new(MockPropertyService)
	propSvc.On("FindPropertyByID", mock.Anything, 7).Return(&models.Property{
		ID:          7,
		Titulo:      "Vieja",
		Descripcion: "Descripción original",
		Precio:      100,
		Direccion:   "Calle 1",
		Ciudad:      "Córdoba",
		Tipo:        models.TipoCasa,
		Operacion:   models.OperacionVenta,
		Moneda:      models.MonedaARS,
		Estado:      models.EstadoActiva,
	}, nil)
	propSvc.On("UpdateProperty", mock.Anything, mock.MatchedBy(func(p *models.Property) bool {
		return p.ID == 7 && p.Titulo == "Renovada"
	})).Return(&models.Property{ID: 7, Titulo: "Renovada"}, nil)

	r := setupAdminRouter(propSvc, new(MockInquiryService))
	w := doRequest(r, http.MethodPut, "/v1/admin/propiedades/7", `{
		"titulo": "Renovada",
		"descripcion": "Descripción original",
		"precio": "100",
		"direccion": "Calle 1",
		"ciudad": "Córdoba"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	propSvc.AssertExpectations(t)
}

func TestUpdateNotFound(t *testing.T) {
	propSvc := new(MockPropertyService)
	propSvc.On("FindPropertyByID", mock.Anything, 99).Return(nil, mongo.ErrNoDocuments)

	r := setupAdminRouter(propSvc, new(MockInquiryService))
	w := doRequest(r, http.MethodPut, "/v1/admin/propiedades/99", `{"titulo": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	propSvc := new(MockPropertyService)
	r := setupAdminRouter(propSvc, new(MockInquiryService))

	w := doRequest(r, http.MethodDelete, "/v1/admin/propiedades/7", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "confirmación")
	propSvc.AssertNotCalled(t, "DeleteProperty", mock.Anything, mock.Anything)
}

func TestDeleteWithConfirmation(t *testing.T) {
	propSvc := new(MockPropertyService)
	propSvc.On("DeleteProperty", mock.Anything, 7).Return(nil)

	r := setupAdminRouter(propSvc, new(MockInquiryService))
	w := doRequest(r, http.MethodDelete, "/v1/admin/propiedades/7?confirm=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	propSvc.AssertExpectations(t)
}

func TestToggleEstado(t *testing.T) {
	propSvc := new(MockPropertyService)
	propSvc.On("ToggleEstado", mock.Anything, 7).Return(&models.Property{ID: 7, Estado: models.EstadoPausada}, nil)

	r := setupAdminRouter(propSvc, new(MockInquiryService))
	w := doRequest(r, http.MethodPatch, "/v1/admin/propiedades/7/estado", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.EstadoPausada)
}

func TestMarkInquiryRead(t *testing.T) {
	inqSvc := new(MockInquiryService)
	inqSvc.On("MarkInquiryRead", mock.Anything, 3, true).Return(nil)

	r := setupAdminRouter(new(MockPropertyService), inqSvc)
	w := doRequest(r, http.MethodPatch, "/v1/admin/consultas/3/leida", `{"leida": true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	inqSvc.AssertExpectations(t)
}
