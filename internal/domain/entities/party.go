package entities

import (
	"errors"
	"fmt"
	"strings"
)

// PartyType discriminates the two shapes a Client or User may take: a natural person
// (pessoa física, CPF) or a legal entity (pessoa jurídica, CNPJ).
type PartyType string

const (
	PartyTypeIndividual   PartyType = "pessoaFisica"
	PartyTypeOrganization PartyType = "pessoaJuridica"
)

// UnknownClientName is snapshotted when a referenced client carries no display name.
const UnknownClientName = "Unknown Client"

var (
	ErrUnknownPartyType  = errors.New("unknown party type")
	ErrPartyShape        = errors.New("party payload does not match its type")
	ErrPartyNameRequired = errors.New("party name is required")
)

func (t PartyType) Valid() bool {
	return t == PartyTypeIndividual || t == PartyTypeOrganization
}

func ParsePartyType(v string) (PartyType, error) {
	t := PartyType(strings.TrimSpace(v))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPartyType, v)
	}
	return t, nil
}

// Address is the postal address shared by both party shapes.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// Line renders the address the way service-order locations are prefilled:
// "street, number, neighborhood, city - state, zip", skipping empty parts.
func (a Address) Line() string {
	region := joinNonEmpty(" - ", a.City, a.State)
	return joinNonEmpty(", ", a.Street, a.Number, a.Neighborhood, region, a.ZipCode)
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

// checkPartyShape enforces that exactly one payload is present and that it matches t.
func checkPartyShape(t PartyType, hasOrganization, hasIndividual bool, name string) error {
	switch t {
	case PartyTypeOrganization:
		if !hasOrganization || hasIndividual {
			return fmt.Errorf("%w: %s", ErrPartyShape, t)
		}
	case PartyTypeIndividual:
		if !hasIndividual || hasOrganization {
			return fmt.Errorf("%w: %s", ErrPartyShape, t)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPartyType, string(t))
	}
	if strings.TrimSpace(name) == "" {
		return ErrPartyNameRequired
	}
	return nil
}
