package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProperty() Property {
	return Property{
		Titulo:      "Casa en Nueva Córdoba",
		Descripcion: "Amplia casa de tres dormitorios",
		Precio:      150000,
		Direccion:   "Av. Siempre Viva 123",
		Ciudad:      "Córdoba",
		Tipo:        TipoCasa,
		Operacion:   OperacionVenta,
	}
}

func TestValidateRequired(t *testing.T) {
	p := validProperty()
	assert.NoError(t, p.ValidateRequired())

	cases := []struct {
		name   string
		mutate func(*Property)
		want   error
	}{
		{"titulo", func(p *Property) { p.Titulo = "" }, ErrTituloRequerido},
		{"descripcion", func(p *Property) { p.Descripcion = "" }, ErrDescripcionRequerida},
		{"precio", func(p *Property) { p.Precio = 0 }, ErrPrecioRequerido},
		{"direccion", func(p *Property) { p.Direccion = "" }, ErrDireccionRequerida},
		{"ciudad", func(p *Property) { p.Ciudad = "" }, ErrCiudadRequerida},
		{"tipo", func(p *Property) { p.Tipo = "" }, ErrTipoRequerido},
		{"operacion", func(p *Property) { p.Operacion = "" }, ErrOperacionRequerida},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProperty()
			tc.mutate(&p)
			assert.ErrorIs(t, p.ValidateRequired(), tc.want)
		})
	}
}
