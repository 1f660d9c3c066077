package response

import (
	"encoding/json"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
)

func TestFromQuotePayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromQuotePayment(entities.QuotePayment{
		ID:           "pay-1",
		QuoteID:      "qt-001",
		QuoteNumber:  "ORC-0001",
		Amount:       250,
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: raw,
		MPPayload:    map[string]interface{}{"a": "b"},
	})
	if res.PaymentID != "pay-1" || res.QuoteID != "qt-001" || res.QuoteNumber != "ORC-0001" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.Amount != 250 {
		t.Fatalf("unexpected values: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromClient(t *testing.T) {
	org := FromClient(entities.NewOrganizationClient("x@y.com", entities.Address{City: "Rio"}, entities.ClientOrganization{LegalName: "ACME", Phone: "21"}))
	if org.Name != "ACME" || org.RazaoSocial != "ACME" || org.Phone != "21" || org.City != "Rio" || org.NomeCompleto != "" {
		t.Fatalf("unexpected organization response: %+v", org)
	}

	body, err := json.Marshal(FromClient(entities.NewIndividualClient("", entities.Address{}, entities.ClientIndividual{FullName: "Ana"})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(body, &m)
	if m["nomeCompleto"] != "Ana" || m["type"] != "pessoaFisica" {
		t.Fatalf("unexpected individual body: %s", body)
	}
	if _, ok := m["razaoSocial"]; ok {
		t.Fatalf("organization fields must be omitted: %s", body)
	}
}

func TestFromUser(t *testing.T) {
	res := FromUser(entities.User{
		ID: "user-1", Type: entities.PartyTypeIndividual, Username: "carlos", Role: entities.UserRoleTechnician,
		Status: entities.UserStatusActive, Individual: &entities.UserIndividual{FullName: "Carlos Ferreira"},
	})
	if res.Name != "Carlos Ferreira" || res.Role != "Técnico" || res.Status != "Ativo" || res.Username != "carlos" {
		t.Fatalf("unexpected user response: %+v", res)
	}
}

func TestListHelpersNeverReturnNull(t *testing.T) {
	if FromProducts(nil) == nil || FromServiceOrders(nil) == nil || FromQuotes(nil) == nil {
		t.Fatalf("expected empty slices")
	}
	if len(FromClients(nil)) != 0 || FromUsers(nil) == nil || FromQuotePayments(nil) == nil {
		t.Fatalf("expected empty slices")
	}
}
