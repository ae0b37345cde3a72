// Package search holds the catalog's filter state: committed filters drive
// fetches immediately, while the price range is staged until applied.
package search

import (
	"net/url"
	"sync"

	"github.com/Nikolino98/cordoba-casas-connect-main/internal/models"
)

// FetchFunc starts a search for the given filter state. The sequence number
// identifies the request so late responses can be told apart from current
// ones.
type FetchFunc func(seq uint64, filters models.PropertyFilters)

// Controller manages the committed filter state for a catalog view. Every
// commit bumps the fetch sequence and triggers a new fetch; responses for
// older sequences are discarded on delivery.
type Controller struct {
	mu      sync.Mutex
	filters models.PropertyFilters

	stagedMin float64
	stagedMax float64

	seq     uint64
	fetch   FetchFunc
	results []models.Property
}

// NewController builds a controller whose initial state is parsed from the
// page URL. Absent parameters take their defaults.
func NewController(values url.Values, fetch FetchFunc) *Controller {
	f := models.ParseFilters(values)
	return &Controller{
		filters:   f,
		stagedMin: f.PrecioMin,
		stagedMax: f.PrecioMax,
		fetch:     fetch,
	}
}

// Filters returns the committed filter state.
func (c *Controller) Filters() models.PropertyFilters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// URLValues returns the query values the page URL should carry for the
// committed state. Defaults are omitted.
func (c *Controller) URLValues() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.Values()
}

// Results returns the most recently delivered, non-stale result set.
func (c *Controller) Results() []models.Property {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// Refresh re-runs the fetch for the committed state without changing it.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commitLocked()
}

func (c *Controller) SetTipo(tipo string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Tipo = tipo
	c.commitLocked()
}

func (c *Controller) SetOperacion(operacion string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Operacion = operacion
	c.commitLocked()
}

func (c *Controller) SetHabitaciones(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Habitaciones = n
	c.commitLocked()
}

func (c *Controller) SetCiudad(ciudad string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Ciudad = ciudad
	c.commitLocked()
}

func (c *Controller) SetZona(zona string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Zona = zona
	c.commitLocked()
}

// StagePriceRange records a candidate price range without committing it.
// The committed state and the URL are untouched until ApplyPriceRange.
func (c *Controller) StagePriceRange(min, max float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stagedMin = min
	c.stagedMax = max
}

// StagedPriceRange returns the candidate range currently being edited.
func (c *Controller) StagedPriceRange() (min, max float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stagedMin, c.stagedMax
}

// ApplyPriceRange commits the staged range and triggers a fetch.
func (c *Controller) ApplyPriceRange() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.PrecioMin = c.stagedMin
	c.filters.PrecioMax = c.stagedMax
	c.commitLocked()
}

// Clear resets every dimension, the staged range and the URL in one step.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = models.DefaultFilters()
	c.stagedMin = c.filters.PrecioMin
	c.stagedMax = c.filters.PrecioMax
	c.commitLocked()
}

// Deliver hands a fetch response back to the controller. Responses whose
// sequence is not the latest are stale and dropped; the reported bool tells
// the caller whether the results were accepted.
func (c *Controller) Deliver(seq uint64, results []models.Property) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return false
	}
	c.results = results
	return true
}

func (c *Controller) commitLocked() {
	c.seq++
	if c.fetch != nil {
		c.fetch(c.seq, c.filters)
	}
}
