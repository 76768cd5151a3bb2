package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff-compare/core/types"
	"tariff-compare/internal/errors"
)

func named(vendor, plan string) types.VendorPlan {
	return types.VendorPlan{VendorName: vendor, PlanName: plan, FixedFee: 1, UnitRate: 0.1}
}

func names(plans []types.VendorPlan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.VendorName + "/" + p.PlanName
	}
	return out
}

func TestCollectionAddKeepsDuplicates(t *testing.T) {
	c := NewCollection(nil)
	c.Add(named("A", "x"))
	c.Add(named("A", "x"))
	assert.Equal(t, 2, c.Len())
}

func TestCollectionRemoveAt(t *testing.T) {
	c := NewCollection([]types.VendorPlan{named("A", "1"), named("B", "2"), named("C", "3")})
	snapshot := c.Plans()

	removed, err := c.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.VendorName)
	assert.Equal(t, []string{"A/1", "C/3"}, names(c.Plans()))
	// earlier snapshots are unaffected
	assert.Equal(t, []string{"A/1", "B/2", "C/3"}, names(snapshot))

	_, err = c.RemoveAt(5)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
	_, err = c.RemoveAt(-1)
	assert.Error(t, err)
}

func TestCollectionReplaceMovesToEnd(t *testing.T) {
	c := NewCollection([]types.VendorPlan{named("A", "1"), named("B", "2")})
	require.NoError(t, c.Replace(0, named("A", "1b")))
	assert.Equal(t, []string{"B/2", "A/1b"}, names(c.Plans()))

	assert.Error(t, c.Replace(7, named("X", "x")))
}

func TestNewCollectionCopiesInput(t *testing.T) {
	in := []types.VendorPlan{named("A", "1")}
	c := NewCollection(in)
	in[0].VendorName = "changed"
	assert.Equal(t, "A", c.Plans()[0].VendorName)
}
