package domain

// Currency describes one gateway currency.
// ISO is the gateway's numeric identifier (ISO-4217 for fiat, 1000+ for crypto assets).
type Currency struct {
	ISO       int      `json:"iso"`
	Alpha     string   `json:"alpha"` // ticker, e.g. "BTC"
	Name      string   `json:"name"`
	Precision int      `json:"precision"` // fractional digits of the smallest unit, 0..18
	Nodes     []string `json:"nodes,omitempty"`
}

// HasNode reports whether the currency is reachable through the given alias node (e.g. "usdt-eth").
// Comparison is exact; callers normalize case.
func (c Currency) HasNode(node string) bool {
	for _, n := range c.Nodes {
		if n == node {
			return true
		}
	}
	return false
}
