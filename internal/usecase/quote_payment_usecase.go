package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
	"time"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotAccepted               = errors.New("quote not accepted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IQuotePaymentUseCase charges accepted quotes and lists their payments.
type IQuotePaymentUseCase interface {
	Pay(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo    interfaces.IQuotePaymentRepository
	store   interfaces.IRecordStore
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, store interfaces.IRecordStore, gateway interfaces.IPaymentGateway) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, store: store, gateway: gateway, now: time.Now}
}

// Pay charges the quote total through the gateway. The quote is the source of truth for
// the amount and reference; the caller's payload only contributes payment method and payer.
func (u *QuotePaymentUseCase) Pay(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.QuotePayment, error) {
	log.Printf("[quote-payment][usecase] pay start raw_quote_id=%q payload_len=%d", quoteID, len(mpPayload))
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[quote-payment][usecase] invalid payload (not-object) quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		log.Printf("[quote-payment][usecase] gateway not configured quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.store.GetQuoteByID(ctx, quoteID)
	if err != nil {
		log.Printf("[quote-payment][usecase] failed loading quote quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		log.Printf("[quote-payment][usecase] quote not found quote_id=%s", quoteID)
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		log.Printf("[quote-payment][usecase] quote not accepted quote_id=%s status=%s", quoteID, q.Status)
		return entities.QuotePayment{}, ErrQuoteNotAccepted
	}
	log.Printf("[quote-payment][usecase] quote loaded quote_id=%s number=%s total=%s", q.ID, q.QuoteNumber, q.Total.StringFixed(2))

	reqMap["external_reference"] = q.QuoteNumber
	reqMap["transaction_amount"] = q.Total
	if !hasNonEmptyString(reqMap, "description") {
		reqMap["description"] = fmt.Sprintf("Orçamento %s - %s", q.QuoteNumber, q.ClientName)
	}
	u.ensurePayer(ctx, reqMap, q.ClientID)

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[quote-payment][usecase] payment gateway failed quote_id=%s err=%v", quoteID, err)
		return entities.QuotePayment{}, classifyGatewayError(err)
	}
	log.Printf("[quote-payment][usecase] payment gateway success quote_id=%s provider_payment_id=%s provider_status=%s", quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[quote-payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.QuotePayment{
		ID:           providerPaymentID,
		QuoteID:      q.ID,
		QuoteNumber:  q.QuoteNumber,
		Amount:       q.Total.InexactFloat64(),
		Date:         u.now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[quote-payment][usecase] repository create failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.QuotePayment{}, err
	}
	log.Printf("[quote-payment][usecase] pay success quote_id=%s payment_id=%s status=%s", quoteID, created.ID, created.Status)
	return created, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// ensurePayer fills payer.email from the quoted client when the caller sent no payer.
func (u *QuotePaymentUseCase) ensurePayer(ctx context.Context, m map[string]any, clientID string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	client, err := u.store.GetClientByID(ctx, clientID)
	if err != nil || client.Email == "" {
		return
	}
	payer["email"] = client.Email
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps Mercado Pago error bodies to sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
