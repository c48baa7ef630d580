package rates

// Catalog is an immutable lookup of rate tiers by id, built once at startup.
type Catalog struct {
	tiers map[string]*Tier
	order []string
}

// NewCatalog builds a catalog from the given tiers. Later tiers with a
// duplicate id replace earlier ones.
func NewCatalog(tiers ...*Tier) (*Catalog, error) {
	c := &Catalog{
		tiers: make(map[string]*Tier, len(tiers)),
	}

	for _, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.tiers[tier.ID()]; !exists {
			c.order = append(c.order, tier.ID())
		}
		c.tiers[tier.ID()] = tier
	}

	return c, nil
}

// Get looks up a tier by id.
func (c *Catalog) Get(id string) (*Tier, bool) {
	tier, ok := c.tiers[id]
	return tier, ok
}

// All returns the tiers in registration order.
func (c *Catalog) All() []*Tier {
	all := make([]*Tier, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.tiers[id])
	}
	return all
}
