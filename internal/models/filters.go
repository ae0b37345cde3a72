package models

import (
	"net/url"
	"strconv"
)

// Sentinel values meaning "no restriction" for the enum filters.
const (
	TipoTodos      = "todos"
	OperacionTodas = "todas"
)

// DefaultPrecioMax is the upper price bound used when none is set.
const DefaultPrecioMax = 100000000

// PropertyFilters is the committed search state. Sentinel and zero values
// mean the corresponding dimension is unrestricted.
type PropertyFilters struct {
	Tipo         string
	Operacion    string
	PrecioMin    float64
	PrecioMax    float64
	Habitaciones int
	Ciudad       string
	Zona         string
}

// DefaultFilters returns the unrestricted filter state.
func DefaultFilters() PropertyFilters {
	return PropertyFilters{
		Tipo:      TipoTodos,
		Operacion: OperacionTodas,
		PrecioMax: DefaultPrecioMax,
	}
}

// IsDefault reports whether no dimension restricts the result set.
func (f PropertyFilters) IsDefault() bool {
	return f == DefaultFilters()
}

// ParseFilters decodes filters from URL query values. Absent or malformed
// parameters fall back to their defaults, so any URL yields a valid state.
func ParseFilters(values url.Values) PropertyFilters {
	f := DefaultFilters()
	if v := values.Get("tipo"); v != "" {
		f.Tipo = v
	}
	if v := values.Get("operacion"); v != "" {
		f.Operacion = v
	}
	if v := values.Get("precioMin"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.PrecioMin = n
		}
	}
	if v := values.Get("precioMax"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.PrecioMax = n
		}
	}
	if v := values.Get("habitaciones"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Habitaciones = n
		}
	}
	f.Ciudad = values.Get("ciudad")
	f.Zona = values.Get("zona")
	return f
}

// Values encodes the filters as URL query values, emitting only the fields
// that differ from their defaults so that parse(encode(f)) == f and the
// default state encodes to an empty query.
func (f PropertyFilters) Values() url.Values {
	values := url.Values{}
	if f.Tipo != TipoTodos {
		values.Set("tipo", f.Tipo)
	}
	if f.Operacion != OperacionTodas {
		values.Set("operacion", f.Operacion)
	}
	if f.PrecioMin != 0 {
		values.Set("precioMin", strconv.FormatFloat(f.PrecioMin, 'f', -1, 64))
	}
	if f.PrecioMax != DefaultPrecioMax {
		values.Set("precioMax", strconv.FormatFloat(f.PrecioMax, 'f', -1, 64))
	}
	if f.Habitaciones != 0 {
		values.Set("habitaciones", strconv.Itoa(f.Habitaciones))
	}
	if f.Ciudad != "" {
		values.Set("ciudad", f.Ciudad)
	}
	if f.Zona != "" {
		values.Set("zona", f.Zona)
	}
	return values
}
