package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/asnmemo/pkg/models"
)

func TestDefaultCatalogHasUniqueIDs(t *testing.T) {
	cat := Default()
	require.NotZero(t, cat.Len())

	seen := make(map[string]bool)
	for _, n := range cat.All() {
		id := n.ID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		assert.NotEmpty(t, n.Name)
		assert.NotEmpty(t, string(n.Tier))
	}
}

func TestDefaultCatalogCoversAllTiers(t *testing.T) {
	cat := Default()
	for _, tier := range models.Tiers {
		assert.NotEmpty(t, cat.ByTier(tier), "no networks for tier %s", tier)
	}
}

func TestNewRejectsDuplicateASNs(t *testing.T) {
	_, err := New([]models.Network{
		{ASN: 3356, Name: "Lumen Technologies", Tier: models.TierOne},
		{ASN: 3356, Name: "Imposter", Tier: models.TierTwo},
	})
	require.Error(t, err)
}

func TestLookupAndOrdering(t *testing.T) {
	cat, err := New([]models.Network{
		{ASN: 174, Name: "Cogent Communications", Tier: models.TierOne},
		{ASN: 13335, Name: "Cloudflare", Tier: models.TierCDN},
	})
	require.NoError(t, err)

	n, ok := cat.ByID("13335")
	require.True(t, ok)
	assert.Equal(t, "Cloudflare", n.Name)

	_, ok = cat.ByID("999999")
	assert.False(t, ok)

	assert.Equal(t, 0, cat.Index("174"))
	assert.Equal(t, 1, cat.Index("13335"))
	// Unknown IDs sort after every catalog entry
	assert.Equal(t, cat.Len(), cat.Index("999999"))
}

func TestByTierPreservesCatalogOrder(t *testing.T) {
	cat := Default()
	all := cat.All()

	pos := make(map[string]int, len(all))
	for i, n := range all {
		pos[n.ID()] = i
	}
	for _, tier := range models.Tiers {
		prev := -1
		for _, n := range cat.ByTier(tier) {
			assert.Greater(t, pos[n.ID()], prev)
			prev = pos[n.ID()]
		}
	}
}
