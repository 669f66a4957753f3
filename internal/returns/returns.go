// Package returns defines the return request model shared by the wizard,
// the submission client, and the API handler.
package returns

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/myokyal/loopify/internal/catalog"
)

// Collection methods.
const (
	MethodDropoff = "dropoff"
	MethodShip    = "ship"
)

// Request statuses.
const (
	StatusPending = "pending"
)

var validate = validator.New()

// ShippingAddress is the user-entered destination for prepaid shipping.
// Postal codes are five digits.
type ShippingAddress struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required,len=5,numeric"`
	Country string `json:"country"`
}

// Validate checks the address field formats.
func (a ShippingAddress) Validate() error {
	if err := validate.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("shipping %s: failed %s validation", f.Field(), f.Tag())
		}
		return err
	}
	return nil
}

// Selection is the wizard's item and collection choice. It mirrors the
// "selected" object the frontend submits.
type Selection struct {
	Category     string                `json:"category"`
	Item         string                `json:"item"`
	Condition    string                `json:"condition"`
	Method       string                `json:"method"`
	Dropoff      *catalog.DropoffPoint `json:"dropoff,omitempty"`
	RewardType   string                `json:"rewardType,omitempty"`
	RewardAmount int                   `json:"rewardAmount"`
}

// Request is a complete return request. Immutable once submitted; the
// store assigns ID, Status and CreatedAt on persistence.
type Request struct {
	ID        string           `json:"id,omitempty"`
	Selection Selection        `json:"selected"`
	Shipping  *ShippingAddress `json:"shipping,omitempty"`
	Photo     string           `json:"photo,omitempty"` // data-URL-encoded image
	PhotoURL  string           `json:"photoUrl,omitempty"`
	Status    string           `json:"status,omitempty"`
	CreatedAt time.Time        `json:"createdAt,omitempty"`
}

// Validate enforces the submission invariant: the item selection is
// complete and exactly one collection detail set is populated, matching
// the chosen method.
func (r Request) Validate() error {
	if r.Selection.Category == "" || r.Selection.Item == "" || r.Selection.Condition == "" {
		return errors.New("incomplete item selection")
	}
	if _, ok := catalog.FindItem(r.Selection.Category, r.Selection.Item); !ok {
		return fmt.Errorf("unknown item %s/%s", r.Selection.Category, r.Selection.Item)
	}

	switch r.Selection.Method {
	case MethodDropoff:
		if r.Selection.Dropoff == nil {
			return errors.New("dropoff method requires a selected location")
		}
		if r.Shipping != nil {
			return errors.New("dropoff method must not carry a shipping address")
		}
	case MethodShip:
		if r.Shipping == nil {
			return errors.New("ship method requires a shipping address")
		}
		if r.Selection.Dropoff != nil {
			return errors.New("ship method must not carry a dropoff location")
		}
		if err := r.Shipping.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown collection method %q", r.Selection.Method)
	}
	return nil
}
