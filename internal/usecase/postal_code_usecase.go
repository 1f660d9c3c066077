package usecase

import (
	"context"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"strings"
	"unicode"
)

var (
	ErrInvalidZipCode          = errors.New("invalid zip code")
	ErrPostalLookupUnavailable = errors.New("postal code lookup is not configured")
)

type IPostalCodeUseCase interface {
	Lookup(ctx context.Context, zipCode string) (entities.PostalAddress, error)
}

type PostalCodeUseCase struct {
	lookup interfaces.IPostalCodeLookup
}

var _ IPostalCodeUseCase = (*PostalCodeUseCase)(nil)

func NewPostalCodeUseCase(lookup interfaces.IPostalCodeLookup) *PostalCodeUseCase {
	return &PostalCodeUseCase{lookup: lookup}
}

// Lookup accepts "01001-000" or "01001000" and queries the collaborator with the eight digits.
func (u *PostalCodeUseCase) Lookup(ctx context.Context, zipCode string) (entities.PostalAddress, error) {
	digits := NormalizeZipCode(zipCode)
	if len(digits) != 8 {
		return entities.PostalAddress{}, ErrInvalidZipCode
	}
	if u.lookup == nil {
		return entities.PostalAddress{}, ErrPostalLookupUnavailable
	}
	return u.lookup.Lookup(ctx, digits)
}

// NormalizeZipCode strips everything but digits; it returns "" when other characters
// than digits, '-', '.' or spaces are present.
func NormalizeZipCode(zipCode string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(zipCode) {
		switch {
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
		case r == '-' || r == '.' || r == ' ':
		default:
			return ""
		}
	}
	return b.String()
}
