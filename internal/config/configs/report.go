package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report configures business defaults of the reporting core.
type Report struct {
	// DefaultRoutingRate is the per-message routing cost applied when no
	// row override or versioned rate covers a send date. Parsed as a
	// decimal string to keep exact arithmetic.
	DefaultRoutingRate string `env:"DEFAULT_ROUTING_RATE" envDefault:"0.00035"`
	// ShareTTL is how long public share links stay valid.
	ShareTTL time.Duration `env:"SHARE_TTL" envDefault:"720h"`
}

// FallbackRate parses DefaultRoutingRate. Malformed values fall back to
// zero cost rather than failing startup config parsing; Validate surfaces
// them ahead of time.
func (c Report) FallbackRate() decimal.Decimal {
	d, err := decimal.NewFromString(c.DefaultRoutingRate)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Validate reports a malformed DefaultRoutingRate.
func (c Report) Validate() error {
	_, err := decimal.NewFromString(c.DefaultRoutingRate)
	return err
}
