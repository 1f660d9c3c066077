package entities

import (
	"errors"
	"testing"
)

func TestClient_Validate(t *testing.T) {
	t.Run("individual", func(t *testing.T) {
		c := NewIndividualClient("", Address{}, ClientIndividual{FullName: "Ana", CPF: "111"})
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("organization", func(t *testing.T) {
		c := NewOrganizationClient("contato@techsolutions.com", Address{}, ClientOrganization{LegalName: "Tech Solutions Ltda."})
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("payload does not match type", func(t *testing.T) {
		c := Client{Type: PartyTypeOrganization, Individual: &ClientIndividual{FullName: "Ana"}}
		if err := c.Validate(); !errors.Is(err, ErrPartyShape) {
			t.Fatalf("expected ErrPartyShape, got %v", err)
		}
	})

	t.Run("both payloads", func(t *testing.T) {
		c := Client{
			Type:         PartyTypeIndividual,
			Individual:   &ClientIndividual{FullName: "Ana"},
			Organization: &ClientOrganization{LegalName: "X"},
		}
		if err := c.Validate(); !errors.Is(err, ErrPartyShape) {
			t.Fatalf("expected ErrPartyShape, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		c := NewIndividualClient("", Address{}, ClientIndividual{FullName: "  "})
		if err := c.Validate(); !errors.Is(err, ErrPartyNameRequired) {
			t.Fatalf("expected ErrPartyNameRequired, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		c := Client{Type: "alien"}
		if err := c.Validate(); !errors.Is(err, ErrUnknownPartyType) {
			t.Fatalf("expected ErrUnknownPartyType, got %v", err)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		c := NewIndividualClient("not-an-email", Address{}, ClientIndividual{FullName: "Ana"})
		if err := c.Validate(); err == nil {
			t.Fatalf("expected email validation error")
		}
	})
}

func TestClient_SnapshotName(t *testing.T) {
	org := NewOrganizationClient("", Address{}, ClientOrganization{LegalName: "Razão"})
	if got := org.SnapshotName(); got != "Razão" {
		t.Fatalf("expected legal name, got %q", got)
	}
	ind := NewIndividualClient("", Address{}, ClientIndividual{FullName: "Fernanda Costa"})
	if got := ind.SnapshotName(); got != "Fernanda Costa" {
		t.Fatalf("expected full name, got %q", got)
	}
	if got := (Client{}).SnapshotName(); got != UnknownClientName {
		t.Fatalf("expected %q, got %q", UnknownClientName, got)
	}
}

func TestClient_Clone(t *testing.T) {
	c := NewIndividualClient("", Address{}, ClientIndividual{FullName: "Ana"})
	cp := c.Clone()
	cp.Individual.FullName = "Bia"
	if c.Individual.FullName != "Ana" {
		t.Fatalf("clone shares payload with original")
	}
}

func TestAddress_Line(t *testing.T) {
	tests := []struct {
		name string
		a    Address
		want string
	}{
		{
			name: "full address",
			a:    Address{Street: "Rua das Inovações", Number: "123", Complement: "Andar 10", Neighborhood: "Centro", City: "São Paulo", State: "SP", ZipCode: "01000-000"},
			want: "Rua das Inovações, 123, Centro, São Paulo - SP, 01000-000",
		},
		{
			name: "missing parts are skipped",
			a:    Address{Street: "Rua A", Number: "10", City: "Recife"},
			want: "Rua A, 10, Recife",
		},
		{
			name: "state without city",
			a:    Address{Street: "Rua A", State: "PE"},
			want: "Rua A, PE",
		},
		{name: "empty", a: Address{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Line(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUser_Validate(t *testing.T) {
	u := User{Type: PartyTypeIndividual, Username: "carlos", Role: UserRoleTechnician, Individual: &UserIndividual{FullName: "Carlos Ferreira"}}
	if err := u.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u.Role = "Root"
	if err := u.Validate(); err == nil {
		t.Fatalf("expected role validation error")
	}

	pj := User{Type: PartyTypeOrganization, Role: UserRoleTechnician, Individual: &UserIndividual{FullName: "x"}}
	if err := pj.Validate(); !errors.Is(err, ErrPartyShape) {
		t.Fatalf("expected ErrPartyShape, got %v", err)
	}
}

func TestProduct_Validate(t *testing.T) {
	p := Product{Name: "Cabo CAT6", Category: ProductCategoryNetworks, UnitOfMeasure: UnitOfMeasureMeter, QuantityInStock: 500, CostPrice: dec("1.8"), SellingPrice: dec("3.5")}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.QuantityInStock = -1
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for negative stock")
	}
	p.QuantityInStock = 1
	p.SellingPrice = dec("-0.01")
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for negative price")
	}
}
