package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	ids := c.ProductIDs()
	require.Len(t, ids, 6)
	assert.Equal(t, "912828F62", ids[0])
	assert.Equal(t, "912810RZ3", ids[5])

	bond, err := c.GetData("9128283F5")
	require.NoError(t, err)
	assert.Equal(t, "T", bond.Ticker)
	assert.Equal(t, 0.0255, bond.Coupon)

	_, err = c.GetData("missing")
	require.Error(t, err)
}

func TestBondsByTicker(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.BondsByTicker("T"), 6)
	assert.Empty(t, c.BondsByTicker("B"))
}

func TestSectorsCoverEveryProductOnce(t *testing.T) {
	c := DefaultCatalog()

	seen := map[string]int{}
	for _, sector := range Sectors() {
		for _, id := range sector.ProductIDs {
			seen[id]++
			_, err := c.GetData(id)
			require.NoError(t, err, "sector %s references unknown product %s", sector.Name, id)
		}
	}

	for _, id := range c.ProductIDs() {
		assert.Equal(t, 1, seen[id], "product %s", id)
	}
}
