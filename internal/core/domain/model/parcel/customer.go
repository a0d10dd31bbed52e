package parcel

import (
	"errors"

	"agencysim/internal/pkg/errs"
	"agencysim/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer factory function.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the value object holding the recipient details required at
// parcel creation. All three fields are mandatory: the simulated agency needs
// a name to address, a phone for the courier call and a street address for
// the delivery attempt.
type Customer struct {
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated Customer. Each field is required.
func NewCustomer(name, phone, address string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the recipient's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the recipient's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the recipient's street address.
func (c Customer) Address() string {
	return c.address
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer_address")
	}
	c.address = address
	return nil
}
