// Package display derives presentation values from a listing: formatted
// prices, the image gallery with fallbacks, and attribute visibility.
package display

import (
	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esAR = message.NewPrinter(language.MustParse("es-AR"))

// FormatPrice renders an amount with es-AR thousands grouping and the
// currency marker: "U$S 150.000" for USD, "$ 150.000" otherwise.
func FormatPrice(precio float64, moneda string) string {
	grouped := esAR.Sprint(number.Decimal(precio, number.MaxFractionDigits(2)))
	if moneda == models.MonedaUSD {
		return "U$S " + grouped
	}
	return "$ " + grouped
}

// PriceLabel is the full price line for a listing, with the monthly marker
// for rentals.
func PriceLabel(p *models.Property) string {
	label := FormatPrice(p.Precio, p.Moneda)
	if p.Operacion == models.OperacionAlquiler {
		label += "/mes"
	}
	return label
}

// GalleryImage is one gallery entry. Fallback is substituted once when Src
// fails to load; the placeholder itself never falls back again.
type GalleryImage struct {
	Src      string `json:"src"`
	Fallback string `json:"fallback,omitempty"`
}

// Gallery builds the ordered image list for a listing: the main image first,
// then the secondary images. A listing with no images yields an empty
// gallery.
func Gallery(p *models.Property, placeholder string) []GalleryImage {
	srcs := make([]string, 0, len(p.Imagenes)+1)
	if p.ImagenPrincipal != "" {
		srcs = append(srcs, p.ImagenPrincipal)
	}
	srcs = append(srcs, p.Imagenes...)

	gallery := make([]GalleryImage, len(srcs))
	for i, src := range srcs {
		img := GalleryImage{Src: src}
		if src != placeholder {
			img.Fallback = placeholder
		}
		gallery[i] = img
	}
	return gallery
}

// ShowNumber reports whether an optional integer attribute should be shown.
// Zero means the attribute was never specified.
func ShowNumber(n int) bool {
	return n > 0
}

// ShowArea reports whether an optional surface attribute should be shown.
func ShowArea(m2 float64) bool {
	return m2 > 0
}
