package returns

import (
	"strings"
	"testing"

	"github.com/myokyal/loopify/internal/catalog"
)

func validShipping() *ShippingAddress {
	return &ShippingAddress{
		Name:    "Aye Chan",
		Email:   "aye@example.com",
		Street:  "12 Bogyoke Road",
		City:    "Yangon",
		Zip:     "11181",
		Country: "MM",
	}
}

func dropoffRequest() Request {
	point, _ := catalog.FindDropoffPoint("City Mart Yangon")
	return Request{
		Selection: Selection{
			Category:     "electronics",
			Item:         "phone",
			Condition:    "like-new",
			Method:       MethodDropoff,
			Dropoff:      &point,
			RewardAmount: 30000,
		},
	}
}

func shipRequest() Request {
	return Request{
		Selection: Selection{
			Category:     "clothing",
			Item:         "jeans",
			Condition:    "good",
			Method:       MethodShip,
			RewardAmount: 3500,
		},
		Shipping: validShipping(),
	}
}

func TestRequestValidate_OK(t *testing.T) {
	if err := dropoffRequest().Validate(); err != nil {
		t.Errorf("dropoff request should validate: %v", err)
	}
	if err := shipRequest().Validate(); err != nil {
		t.Errorf("ship request should validate: %v", err)
	}
}

func TestRequestValidate_ExactlyOneDetailSet(t *testing.T) {
	// Both detail sets populated.
	both := dropoffRequest()
	both.Shipping = validShipping()
	if err := both.Validate(); err == nil {
		t.Error("dropoff request with shipping address should fail")
	}

	// Neither populated.
	neither := dropoffRequest()
	neither.Selection.Dropoff = nil
	if err := neither.Validate(); err == nil {
		t.Error("dropoff request without location should fail")
	}

	ship := shipRequest()
	point, _ := catalog.FindDropoffPoint("Ocean Mandalay")
	ship.Selection.Dropoff = &point
	if err := ship.Validate(); err == nil {
		t.Error("ship request with dropoff location should fail")
	}
}

func TestRequestValidate_IncompleteSelection(t *testing.T) {
	r := dropoffRequest()
	r.Selection.Condition = ""
	if err := r.Validate(); err == nil {
		t.Error("missing condition should fail")
	}

	r = dropoffRequest()
	r.Selection.Item = "toaster"
	if err := r.Validate(); err == nil {
		t.Error("unknown item should fail")
	}

	r = dropoffRequest()
	r.Selection.Method = "carrier-pigeon"
	if err := r.Validate(); err == nil {
		t.Error("unknown method should fail")
	}
}

func TestShippingAddressValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShippingAddress)
		field  string
	}{
		{"missing name", func(a *ShippingAddress) { a.Name = "" }, "Name"},
		{"bad email", func(a *ShippingAddress) { a.Email = "not-an-email" }, "Email"},
		{"missing street", func(a *ShippingAddress) { a.Street = "" }, "Street"},
		{"missing city", func(a *ShippingAddress) { a.City = "" }, "City"},
		{"short zip", func(a *ShippingAddress) { a.Zip = "111" }, "Zip"},
		{"non-numeric zip", func(a *ShippingAddress) { a.Zip = "1118a" }, "Zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validShipping()
			tt.mutate(a)
			err := a.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name field %s", err, tt.field)
			}
		})
	}

	if err := validShipping().Validate(); err != nil {
		t.Errorf("valid address should pass: %v", err)
	}
}
