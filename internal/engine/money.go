package engine

import (
	"encoding/json"
	"fmt"
	"math"
)

// Cents is a monetary amount in hundredths of a currency unit. All
// arithmetic inside the engine is integer arithmetic on this type;
// decimals exist only at the JSON edge, where amounts are plain
// numbers with two fractional digits.
type Cents int64

// CentsFromAmount converts a decimal currency amount to cents using
// half-up rounding.
func CentsFromAmount(v float64) Cents {
	return Cents(math.Floor(v*100 + 0.5))
}

// Amount converts back to a decimal currency amount.
func (c Cents) Amount() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return fmt.Sprintf("%.2f", c.Amount())
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", c.Amount())), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal amount: %w", err)
	}

	*c = CentsFromAmount(v)

	return nil
}
