package models

import "strconv"

// Tier classifies a network by its role in the global routing hierarchy
type Tier string

const (
	TierOne   Tier = "Tier 1"
	TierTwo   Tier = "Tier 2"
	TierThree Tier = "Tier 3"
	TierCDN   Tier = "CDN"
	TierCloud Tier = "Cloud Provider"
	TierIXP   Tier = "Internet Exchange"
)

// Tiers lists all tiers in display order
var Tiers = []Tier{TierOne, TierTwo, TierThree, TierCDN, TierCloud, TierIXP}

// Network represents one memorizable fact: a network and its AS number
type Network struct {
	ASN            int      `json:"asn"`
	Name           string   `json:"name"`
	Tier           Tier     `json:"tier"`
	Headquarters   string   `json:"headquarters,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	Facts          []string `json:"facts,omitempty"`
}

// ID returns the stable identifier used as the progress snapshot key
func (n Network) ID() string {
	return strconv.Itoa(n.ASN)
}
