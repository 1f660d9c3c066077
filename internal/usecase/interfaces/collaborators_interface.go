package interfaces

import (
	"context"
	"errors"

	"fieldservice/internal/domain/entities"
)

// ErrPostalCodeNotFound is returned by IPostalCodeLookup when the code does not exist.
var ErrPostalCodeNotFound = errors.New("postal code not found")

// IServiceRequestParser turns a free-text service description into a service type and
// technical notes. It is optional: callers must cope with it being absent.
type IServiceRequestParser interface {
	Parse(ctx context.Context, description string) (entities.ParsedServiceRequest, error)
}

// IPostalCodeLookup resolves a Brazilian postal code (CEP) into an address.
type IPostalCodeLookup interface {
	Lookup(ctx context.Context, zipCode string) (entities.PostalAddress, error)
}
