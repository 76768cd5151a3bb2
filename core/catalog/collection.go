package catalog

import (
	"strconv"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

// Collection is the ordered set of user-added plans. Plans are values and
// are never edited in place: replacing one removes it and appends the new
// version.
type Collection struct {
	plans []types.VendorPlan
}

// NewCollection creates a collection holding a copy of plans
func NewCollection(plans []types.VendorPlan) *Collection {
	c := &Collection{plans: make([]types.VendorPlan, 0, len(plans))}
	c.plans = append(c.plans, plans...)
	return c
}

// Plans returns a copy of the plans in order
func (c *Collection) Plans() []types.VendorPlan {
	out := make([]types.VendorPlan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Len returns the number of plans
func (c *Collection) Len() int {
	return len(c.plans)
}

// Add appends a plan. Duplicates are kept.
func (c *Collection) Add(p types.VendorPlan) {
	c.plans = append(c.plans, p)
}

// RemoveAt removes the plan at index i
func (c *Collection) RemoveAt(i int) (types.VendorPlan, error) {
	if i < 0 || i >= len(c.plans) {
		return types.VendorPlan{}, errors.NotFound("custom vendor", strconv.Itoa(i))
	}
	removed := c.plans[i]
	c.plans = append(c.plans[:i:i], c.plans[i+1:]...)
	return removed, nil
}

// Replace removes the plan at index i and appends p
func (c *Collection) Replace(i int, p types.VendorPlan) error {
	if _, err := c.RemoveAt(i); err != nil {
		return err
	}
	c.Add(p)
	return nil
}
