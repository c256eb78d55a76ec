// Package engine applies logged activity to the progress document: it
// advances training cycles, counts streak days, accumulates ruck mileage
// and decides when badges are awarded.
//
// The engine holds no locks. Callers must serialize operations on a given
// document (the store's Update does this).
package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/abhisek/olympus/internal/badges"
	"github.com/abhisek/olympus/internal/catalog"
	"github.com/abhisek/olympus/internal/clock"
	"github.com/abhisek/olympus/internal/route"
	"github.com/abhisek/olympus/internal/state"
)

// LaurelEvery is the number of active days per weekly laurel.
const LaurelEvery = 7

// Engine owns the mutation rules over a state.State.
type Engine struct {
	catalog *catalog.Catalog
	route   *route.Route
	factory *badges.Factory
	clock   clock.Clock
	log     logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to date entries (default: system clock).
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the logger (default: the logrus standard logger).
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine over immutable tables.
func New(cat *catalog.Catalog, rt *route.Route, factory *badges.Factory, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		route:   rt,
		factory: factory,
		clock:   clock.Real{},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the training catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Route returns the ruck route the engine was built with.
func (e *Engine) Route() *route.Route { return e.route }

func (e *Engine) today() state.Date {
	return state.DateOf(e.clock.Now())
}

// award appends a badge record and logs it.
func (e *Engine) award(st *state.State, b state.Badge) {
	st.AddBadge(b)
	e.log.WithFields(logrus.Fields{
		"kind":  b.Kind,
		"badge": b.Name,
		"id":    b.ID,
	}).Info("badge awarded")
}
