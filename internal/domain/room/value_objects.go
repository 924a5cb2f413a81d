package room

import "hotelhub/internal/pkg/errs"

var (
	ErrInvalidPrice    = errs.New("price must be greater than zero")
	ErrInvalidDiscount = errs.New("discount must be between 0 and 100")
)

type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if v <= 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: v}, nil
}

func (p Price) Value() float64 { return p.value }

// Discount is a percentage off the nightly price.
type Discount struct {
	percent float64
}

func NewDiscount(percent float64) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{percent: percent}, nil
}

func (d Discount) Percent() float64 { return d.percent }

// Apply returns the discounted unit price.
func (d Discount) Apply(p Price) float64 {
	return p.Value() - (p.Value()/100)*d.percent
}
