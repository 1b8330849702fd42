// Package catalog holds the static network catalog: an ordered, immutable
// list of networks and their AS numbers, grouped by tier. The catalog is
// the source of truth for card identity and for the deterministic ordering
// used by the scheduler.
package catalog

import (
	"fmt"

	"github.com/example/asnmemo/pkg/models"
)

// Catalog is an ordered, read-only collection of networks
type Catalog struct {
	networks []models.Network
	byID     map[string]int // card ID -> index in networks
}

// New builds a catalog from the given networks, preserving their order.
// Duplicate IDs are a data error.
func New(networks []models.Network) (*Catalog, error) {
	byID := make(map[string]int, len(networks))
	for i, n := range networks {
		id := n.ID()
		if _, ok := byID[id]; ok {
			return nil, fmt.Errorf("duplicate ASN in catalog: %s", id)
		}
		byID[id] = i
	}
	return &Catalog{networks: networks, byID: byID}, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(networks)
	if err != nil {
		// The built-in table is validated by tests; reaching this means
		// the binary itself is broken.
		panic(err)
	}
	return c
}

// All returns every network in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []models.Network {
	return c.networks
}

// Len returns the number of networks
func (c *Catalog) Len() int {
	return len(c.networks)
}

// ByID looks up a network by its card ID
func (c *Catalog) ByID(id string) (models.Network, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Network{}, false
	}
	return c.networks[i], true
}

// Index returns the catalog position of a card ID. Unknown IDs sort last.
func (c *Catalog) Index(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return len(c.networks)
}

// ByTier returns the networks of one tier, in catalog order
func (c *Catalog) ByTier(tier models.Tier) []models.Network {
	var out []models.Network
	for _, n := range c.networks {
		if n.Tier == tier {
			out = append(out, n)
		}
	}
	return out
}
