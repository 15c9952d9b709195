package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProduct is returned when a product fails validation.
var ErrInvalidProduct = errors.New("invalid product")

// Product is one auction listing.
type Product struct {
	ID          string    `json:"id"            yaml:"id"            validate:"required"`
	Name        string    `json:"name"          yaml:"name"          validate:"required,min=2,max=255"`
	Description string    `json:"description"   yaml:"description"   validate:"required,min=10"`
	OpenPrice   float64   `json:"open_price"    yaml:"open_price"    validate:"gt=0"`
	PricePerBid float64   `json:"price_per_bid" yaml:"price_per_bid" validate:"gt=0"`
	CreatedAt   time.Time `json:"created_at"    yaml:"created_at"`
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the product's field constraints.
func (p Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w %q: %s fails %q", ErrInvalidProduct, p.ID, fe.Field(), fe.ActualTag())
		}
		return fmt.Errorf("%w %q: %w", ErrInvalidProduct, p.ID, err)
	}
	return nil
}
