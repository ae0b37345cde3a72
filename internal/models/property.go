package models

import (
	"errors"
	"time"
)

// Property types.
const (
	TipoCasa         = "casa"
	TipoDepartamento = "departamento"
	TipoTerreno      = "terreno"
	TipoLocal        = "local"
	TipoOficina      = "oficina"
)

// Operations.
const (
	OperacionVenta    = "venta"
	OperacionAlquiler = "alquiler"
)

// Currencies.
const (
	MonedaARS = "ARS"
	MonedaUSD = "USD"
)

// Listing states.
const (
	EstadoActiva    = "activa"
	EstadoPausada   = "pausada"
	EstadoVendida   = "vendida"
	EstadoAlquilada = "alquilada"
)

// Property is a real-estate listing. Field names mirror the store's Spanish
// column names. The id and publication date are assigned by the store on
// insert, never by callers.
type Property struct {
	ID                 int       `bson:"id" json:"id"`
	Titulo             string    `bson:"titulo" json:"titulo"`
	Descripcion        string    `bson:"descripcion" json:"descripcion"`
	Precio             float64   `bson:"precio" json:"precio"`
	Moneda             string    `bson:"moneda" json:"moneda"`
	Operacion          string    `bson:"operacion" json:"operacion"`
	Tipo               string    `bson:"tipo" json:"tipo"`
	Direccion          string    `bson:"direccion" json:"direccion"`
	Ciudad             string    `bson:"ciudad" json:"ciudad"`
	Zona               string    `bson:"zona,omitempty" json:"zona,omitempty"`
	CodigoPostal       string    `bson:"codigo_postal,omitempty" json:"codigo_postal,omitempty"`
	Provincia          string    `bson:"provincia,omitempty" json:"provincia,omitempty"`
	Lat                *float64  `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng                *float64  `bson:"lng,omitempty" json:"lng,omitempty"`
	Habitaciones       int       `bson:"habitaciones,omitempty" json:"habitaciones"`
	Banos              int       `bson:"baños,omitempty" json:"baños"`
	SuperficieTotal    float64   `bson:"superficie_total,omitempty" json:"superficie_total"`
	SuperficieCubierta float64   `bson:"superficie_cubierta,omitempty" json:"superficie_cubierta"`
	AnoConstruccion    int       `bson:"año_construccion,omitempty" json:"año_construccion,omitempty"`
	ImagenPrincipal    string    `bson:"imagen_principal,omitempty" json:"imagen_principal,omitempty"`
	Imagenes           CommaList `bson:"imagenes,omitempty" json:"imagenes,omitempty"`
	Caracteristicas    CommaList `bson:"caracteristicas,omitempty" json:"caracteristicas,omitempty"`
	Destacada          bool      `bson:"destacada" json:"destacada"`
	Estado             string    `bson:"estado" json:"estado"`
	FechaPublicacion   time.Time `bson:"fecha_publicacion" json:"fecha_publicacion"`
}

// Required-field errors reported before a listing reaches the store.
var (
	ErrTituloRequerido      = errors.New("el título es requerido")
	ErrDescripcionRequerida = errors.New("la descripción es requerida")
	ErrPrecioRequerido      = errors.New("el precio es requerido")
	ErrDireccionRequerida   = errors.New("la dirección es requerida")
	ErrCiudadRequerida      = errors.New("la ciudad es requerida")
	ErrTipoRequerido        = errors.New("el tipo de propiedad es requerido")
	ErrOperacionRequerida   = errors.New("la operación es requerida")
)

// ValidateRequired checks the mandatory listing fields. Everything else is
// optional and defaults apply on insert.
func (p *Property) ValidateRequired() error {
	switch {
	case p.Titulo == "":
		return ErrTituloRequerido
	case p.Descripcion == "":
		return ErrDescripcionRequerida
	case p.Precio <= 0:
		return ErrPrecioRequerido
	case p.Direccion == "":
		return ErrDireccionRequerida
	case p.Ciudad == "":
		return ErrCiudadRequerida
	case p.Tipo == "":
		return ErrTipoRequerido
	case p.Operacion == "":
		return ErrOperacionRequerida
	}
	return nil
}
