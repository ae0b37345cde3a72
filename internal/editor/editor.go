// Package editor models an admin form session for creating or editing a
// listing: field staging, the bounded image set with its main slot, and the
// submit lifecycle.
package editor

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
)

// Phase is the lifecycle state of a form session.
type Phase int

const (
	Idle Phase = iota
	Editing
	Submitting
	Succeeded
	Failed
)

// MaxImages bounds the image set, main image included.
const MaxImages = 10

var (
	ErrNotEditing    = errors.New("no hay una edición en curso")
	ErrNotSubmitting = errors.New("no hay un envío en curso")
)

// Form holds the staged field values. Numeric fields are kept as the strings
// the form produces and coerced on submit.
type Form struct {
	Titulo             string
	Descripcion        string
	Precio             string
	Moneda             string
	Operacion          string
	Tipo               string
	Direccion          string
	Ciudad             string
	Zona               string
	CodigoPostal       string
	Provincia          string
	Habitaciones       string
	Banos              string
	SuperficieTotal    string
	SuperficieCubierta string
	AnoConstruccion    string
	Destacada          bool
	Estado             string
}

// Editor is a single admin form session. It is not safe for concurrent use;
// each session belongs to one form.
type Editor struct {
	phase Phase
	form  Form

	imagenPrincipal string
	imagenes        []string
	caracteristicas []string

	editingID int
	lastErr   error
}

// New returns an idle editor.
func New() *Editor {
	return &Editor{}
}

// Phase returns the current lifecycle phase.
func (e *Editor) Phase() Phase { return e.phase }

// Err returns the failure recorded by the last Complete, if any.
func (e *Editor) Err() error { return e.lastErr }

// Form returns the staged field values.
func (e *Editor) Form() Form { return e.form }

// SetForm replaces the staged field values.
func (e *Editor) SetForm(f Form) { e.form = f }

// EditingID returns the id of the listing being edited, or 0 for a new one.
func (e *Editor) EditingID() int { return e.editingID }

// Begin starts a session for a new listing with the insert defaults
// pre-selected.
func (e *Editor) Begin() {
	*e = Editor{
		phase: Editing,
		form: Form{
			Moneda:          models.MonedaARS,
			Operacion:       models.OperacionVenta,
			Tipo:            models.TipoCasa,
			Provincia:       "Córdoba",
			Estado:          models.EstadoActiva,
			AnoConstruccion: strconv.Itoa(time.Now().Year()),
		},
	}
}

// Load starts a session editing an existing listing, pre-populating every
// field from the stored record.
func (e *Editor) Load(p *models.Property) {
	*e = Editor{
		phase:     Editing,
		editingID: p.ID,
		form: Form{
			Titulo:             p.Titulo,
			Descripcion:        p.Descripcion,
			Precio:             formatNumber(p.Precio),
			Moneda:             p.Moneda,
			Operacion:          p.Operacion,
			Tipo:               p.Tipo,
			Direccion:          p.Direccion,
			Ciudad:             p.Ciudad,
			Zona:               p.Zona,
			CodigoPostal:       p.CodigoPostal,
			Provincia:          p.Provincia,
			Habitaciones:       formatInt(p.Habitaciones),
			Banos:              formatInt(p.Banos),
			SuperficieTotal:    formatNumber(p.SuperficieTotal),
			SuperficieCubierta: formatNumber(p.SuperficieCubierta),
			AnoConstruccion:    formatInt(p.AnoConstruccion),
			Destacada:          p.Destacada,
			Estado:             p.Estado,
		},
		imagenPrincipal: p.ImagenPrincipal,
		imagenes:        append([]string(nil), p.Imagenes...),
		caracteristicas: append([]string(nil), p.Caracteristicas...),
	}
}

// ImageCount counts every held image, the main slot included.
func (e *Editor) ImageCount() int {
	n := len(e.imagenes)
	if e.imagenPrincipal != "" {
		n++
	}
	return n
}

// MainImage returns the image in the privileged main slot.
func (e *Editor) MainImage() string { return e.imagenPrincipal }

// Images returns the secondary images in order.
func (e *Editor) Images() []string { return e.imagenes }

// Characteristics returns the staged characteristics in order.
func (e *Editor) Characteristics() []string { return e.caracteristicas }

// AddImages appends uploads until the cap is reached. The first image ever
// added becomes the main image. Uploads beyond the cap are dropped without
// error; the number actually added is returned.
func (e *Editor) AddImages(srcs ...string) int {
	added := 0
	for _, src := range srcs {
		if e.ImageCount() >= MaxImages {
			break
		}
		if e.imagenPrincipal == "" {
			e.imagenPrincipal = src
		} else {
			e.imagenes = append(e.imagenes, src)
		}
		added++
	}
	return added
}

// PromoteImage moves the secondary image at i into the main slot. The image
// previously in the slot is replaced, not demoted.
func (e *Editor) PromoteImage(i int) {
	if i < 0 || i >= len(e.imagenes) {
		return
	}
	e.imagenPrincipal = e.imagenes[i]
	e.imagenes = append(e.imagenes[:i], e.imagenes[i+1:]...)
}

// RemoveImage drops the secondary image at i.
func (e *Editor) RemoveImage(i int) {
	if i < 0 || i >= len(e.imagenes) {
		return
	}
	e.imagenes = append(e.imagenes[:i], e.imagenes[i+1:]...)
}

// ClearImages empties the whole image set, main slot included.
func (e *Editor) ClearImages() {
	e.imagenPrincipal = ""
	e.imagenes = nil
}

// ClearCharacteristics empties the staged characteristics.
func (e *Editor) ClearCharacteristics() {
	e.caracteristicas = nil
}

// RemoveMainImage clears the main slot.
func (e *Editor) RemoveMainImage() {
	e.imagenPrincipal = ""
}

// AddCharacteristic appends a non-blank characteristic; blanks are ignored.
func (e *Editor) AddCharacteristic(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	e.caracteristicas = append(e.caracteristicas, s)
}

// RemoveCharacteristic drops the characteristic at i.
func (e *Editor) RemoveCharacteristic(i int) {
	if i < 0 || i >= len(e.caracteristicas) {
		return
	}
	e.caracteristicas = append(e.caracteristicas[:i], e.caracteristicas[i+1:]...)
}

// Submit coerces the staged fields into a listing and moves the session to
// Submitting. A validation failure keeps the session in Editing with the
// staged values intact and returns the field error.
func (e *Editor) Submit() (*models.Property, error) {
	if e.phase != Editing {
		return nil, ErrNotEditing
	}

	p := &models.Property{
		ID:                 e.editingID,
		Titulo:             strings.TrimSpace(e.form.Titulo),
		Descripcion:        strings.TrimSpace(e.form.Descripcion),
		Precio:             parseNumber(e.form.Precio),
		Moneda:             e.form.Moneda,
		Operacion:          e.form.Operacion,
		Tipo:               e.form.Tipo,
		Direccion:          strings.TrimSpace(e.form.Direccion),
		Ciudad:             strings.TrimSpace(e.form.Ciudad),
		Zona:               strings.TrimSpace(e.form.Zona),
		CodigoPostal:       strings.TrimSpace(e.form.CodigoPostal),
		Provincia:          e.form.Provincia,
		Habitaciones:       parseInt(e.form.Habitaciones),
		Banos:              parseInt(e.form.Banos),
		SuperficieTotal:    parseNumber(e.form.SuperficieTotal),
		SuperficieCubierta: parseNumber(e.form.SuperficieCubierta),
		AnoConstruccion:    parseInt(e.form.AnoConstruccion),
		ImagenPrincipal:    e.imagenPrincipal,
		Imagenes:           models.CommaList(append([]string(nil), e.imagenes...)),
		Caracteristicas:    models.CommaList(append([]string(nil), e.caracteristicas...)),
		Destacada:          e.form.Destacada,
		Estado:             e.form.Estado,
	}

	if err := p.ValidateRequired(); err != nil {
		return nil, err
	}
	e.phase = Submitting
	return p, nil
}

// Complete records the outcome of the submit the editor is waiting on.
func (e *Editor) Complete(err error) error {
	if e.phase != Submitting {
		return ErrNotSubmitting
	}
	e.lastErr = err
	if err != nil {
		e.phase = Failed
		return nil
	}
	e.phase = Succeeded
	return nil
}

// Resume returns a failed session to Editing so the admin can retry.
func (e *Editor) Resume() {
	if e.phase == Failed {
		e.phase = Editing
	}
}

// Reset discards the session.
func (e *Editor) Reset() {
	*e = Editor{}
}

func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func formatNumber(n float64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
