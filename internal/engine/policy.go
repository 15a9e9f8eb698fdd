package engine

// Policy carries the pricing constants that are configuration rather
// than code: the redemption value of one loyalty point and the tax
// rate applied to the post-discount total. A zero PointValue disables
// redemption entirely.
type Policy struct {
	PointValue Cents
	TaxRate    float64
}

func DefaultPolicy() Policy {
	return Policy{
		PointValue: 1, // one cent per point
		TaxRate:    0,
	}
}

// PolicyFromConfig builds a Policy from the decimal unit value and tax
// rate the environment supplies.
func PolicyFromConfig(pointUnitValue, taxRate float64) Policy {
	return Policy{
		PointValue: CentsFromAmount(pointUnitValue),
		TaxRate:    taxRate,
	}
}
