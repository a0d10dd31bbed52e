// Package commands contains write operations that mutate parcel state.
// Commands validate their input at construction; handlers orchestrate the
// store, the domain model and the webhook notifier.
package commands

import (
	"errors"
	"fmt"

	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/pkg/errs"
	"agencysim/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a request to register a new parcel with the
// simulated agency. Order reference, customer details and a positive price
// are required; destination, product list and webhook URL are optional.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	customer    parcel.Customer
	destination parcel.Destination
	productList []string
	price       float64
	webhookURL  string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel. Returns an
// error when the order reference is missing, the customer is not properly
// constructed or the price is not positive.
func NewCreateParcelCommand(
	orderID string,
	customer parcel.Customer,
	destination parcel.Destination,
	productList []string,
	price float64,
	webhookURL string,
) (CreateParcelCommand, error) {
	createCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setOrderID(orderID),
		createCommand.setCustomer(customer),
		createCommand.setPrice(price),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	createCommand.destination = destination
	createCommand.productList = append([]string{}, productList...)
	createCommand.webhookURL = webhookURL

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order reference.
func (c CreateParcelCommand) OrderID() string {
	return c.orderID
}

// Customer returns the recipient details.
func (c CreateParcelCommand) Customer() parcel.Customer {
	return c.customer
}

// Destination returns the delivery region.
func (c CreateParcelCommand) Destination() parcel.Destination {
	return c.destination
}

// ProductList returns the ordered product items.
func (c CreateParcelCommand) ProductList() []string {
	return append([]string{}, c.productList...)
}

// Price returns the order total, mirrored into the COD amount at creation.
func (c CreateParcelCommand) Price() float64 {
	return c.price
}

// WebhookURL returns the notification URL, empty when not requested.
func (c CreateParcelCommand) WebhookURL() string {
	return c.webhookURL
}

func (c *CreateParcelCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order_id")
	}
	c.orderID = orderID
	return nil
}

func (c *CreateParcelCommand) setCustomer(customer parcel.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateParcelCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	c.price = price
	return nil
}
