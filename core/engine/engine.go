// Package engine provides the API-primary tariff comparison engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"tariff-compare/core/catalog"
	"tariff-compare/core/ranking"
	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
	"tariff-compare/internal/logging"
)

// VendorRepository persists the user's custom vendors. Implementations are
// fail-open: Load always returns a usable slice.
type VendorRepository interface {
	Save(ctx context.Context, plans []types.VendorPlan) types.StoreStatus
	Load(ctx context.Context) ([]types.VendorPlan, types.StoreStatus)
}

// Engine combines the default catalog with the stored custom vendors and
// ranks them. It holds no vendor state of its own; every call loads a fresh
// snapshot from the repository.
type Engine struct {
	defaults func() []types.VendorPlan
	store    VendorRepository
	logger   *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithDefaults replaces the built-in default catalog
func WithDefaults(fn func() []types.VendorPlan) Option {
	return func(e *Engine) {
		e.defaults = fn
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine over store
func New(store VendorRepository, opts ...Option) *Engine {
	e := &Engine{
		defaults: catalog.Defaults,
		store:    store,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrNop(e.logger)
	return e
}

// Defaults returns the default catalog
func (e *Engine) Defaults() []types.VendorPlan {
	return e.defaults()
}

// Custom returns the stored custom vendors
func (e *Engine) Custom(ctx context.Context) ([]types.VendorPlan, types.StoreStatus) {
	plans, status := e.store.Load(ctx)
	e.logger.Debug("custom vendors loaded",
		zap.Int("count", len(plans)),
		zap.String("status", status.Outcome.String()),
	)
	return plans, status
}

// Vendors returns the defaults followed by the custom vendors
func (e *Engine) Vendors(ctx context.Context) ([]types.VendorPlan, types.StoreStatus) {
	custom, status := e.Custom(ctx)
	return catalog.Combine(e.defaults(), custom), status
}

// AddCustom appends p to the custom vendors and saves the whole list
func (e *Engine) AddCustom(ctx context.Context, p types.VendorPlan) types.StoreStatus {
	return e.ImportCustom(ctx, []types.VendorPlan{p})
}

// ImportCustom appends plans to the custom vendors and saves the whole list.
// When the stored list could not be read nothing is saved, so an unreachable
// backend is never overwritten with a partial list. A corrupt list is
// replaced.
func (e *Engine) ImportCustom(ctx context.Context, plans []types.VendorPlan) types.StoreStatus {
	c, status := e.collection(ctx)
	if status.Outcome == types.StoreFailed {
		return status
	}
	for _, p := range plans {
		c.Add(p)
	}
	return e.store.Save(ctx, c.Plans())
}

// RemoveCustom removes the custom vendor at index and saves the rest.
// An out-of-range index is a TypeNotFound error and nothing is saved.
func (e *Engine) RemoveCustom(ctx context.Context, index int) (types.VendorPlan, types.StoreStatus, error) {
	c, status := e.collection(ctx)
	if status.Outcome == types.StoreFailed {
		return types.VendorPlan{}, status, nil
	}

	removed, err := c.RemoveAt(index)
	if err != nil {
		return types.VendorPlan{}, status, errors.NotFound("custom vendor", strconv.Itoa(index))
	}
	return removed, e.store.Save(ctx, c.Plans()), nil
}

// ReplaceCustom swaps the custom vendor at index for p. The edited plan
// moves to the end of the list. An out-of-range index is a TypeNotFound
// error and nothing is saved.
func (e *Engine) ReplaceCustom(ctx context.Context, index int, p types.VendorPlan) (types.StoreStatus, error) {
	c, status := e.collection(ctx)
	if status.Outcome == types.StoreFailed {
		return status, nil
	}

	if err := c.Replace(index, p); err != nil {
		return status, errors.NotFound("custom vendor", strconv.Itoa(index))
	}
	return e.store.Save(ctx, c.Plans()), nil
}

func (e *Engine) collection(ctx context.Context) (*catalog.Collection, types.StoreStatus) {
	custom, status := e.Custom(ctx)
	return catalog.NewCollection(custom), status
}

// RankAt ranks every vendor at quantity, cheapest first
func (e *Engine) RankAt(ctx context.Context, quantity float64) ([]types.PricedPlan, types.StoreStatus) {
	plans, status := e.Vendors(ctx)
	return ranking.RankAt(plans, quantity), status
}

// RankAllLevels ranks every vendor at each ladder quantity
func (e *Engine) RankAllLevels(ctx context.Context) ([]types.ConsumptionBucket, types.StoreStatus) {
	plans, status := e.Vendors(ctx)
	return ranking.RankAllLevels(plans), status
}
