package bootstrap

import (
	"context"
	"fmt"
	"log"

	"fieldservice/internal/adapter/facade"
	"fieldservice/internal/adapter/persistence/localstate"
	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/config"
	"fieldservice/internal/infrastructure/ai"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/infrastructure/payments"
	"fieldservice/internal/infrastructure/postalcode"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Container holds every wired component of one process.
type Container struct {
	Store     *memory.RecordStore
	LoginFlag interfaces.ILoginFlagStore

	Clients       *usecase.ClientUseCase
	Users         *usecase.UserUseCase
	Products      *usecase.ProductUseCase
	ServiceOrders *usecase.ServiceOrderUseCase
	Quotes        *usecase.QuoteUseCase
	QuotePayments *usecase.QuotePaymentUseCase
	PostalCodes   *usecase.PostalCodeUseCase

	API *facade.API
}

// Build wires the record store, use cases, optional collaborators and the facade
// according to cfg. Optional collaborators that fail to initialize are left out.
// facadeOpts are applied after the configured latency.
func Build(ctx context.Context, cfg config.Config, facadeOpts ...facade.Option) (*Container, error) {
	store := memory.NewRecordStore(memory.WithSeedData(), memory.WithPasswordCost(cfg.PasswordHashCost))

	var ddb *dynamodb.Client
	if cfg.UsesDynamoDB() {
		var err error
		ddb, err = database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to dynamodb: %w", err)
		}
	}

	loginFlag := loginFlagStore(cfg, ddb)

	var paymentRepo interfaces.IQuotePaymentRepository = memory.NewQuotePaymentRepository()
	if cfg.PaymentsStore == config.StoreDynamoDB {
		paymentRepo = repository.NewQuotePaymentDynamoRepository(ddb, cfg.PaymentsTable)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.GatewayConfig{
		AccessToken: cfg.MercadoPagoAccessToken,
		Mock:        cfg.PaymentGatewayMock,
	})
	if err != nil {
		log.Printf("[bootstrap] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var parser interfaces.IServiceRequestParser
	gemini, err := ai.NewGeminiServiceRequestParser(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[bootstrap] service request parser not configured: %v", err)
	} else if gemini != nil {
		parser = gemini
	}

	lookup := postalcode.NewViaCEPClient(cfg.PostalCodeBaseURL, cfg.PostalCodeCacheTTL, nil)

	c := &Container{
		Store:         store,
		LoginFlag:     loginFlag,
		Clients:       usecase.NewClientUseCase(store),
		Users:         usecase.NewUserUseCase(store),
		Products:      usecase.NewProductUseCase(store),
		ServiceOrders: usecase.NewServiceOrderUseCase(store, parser),
		Quotes:        usecase.NewQuoteUseCase(store),
		QuotePayments: usecase.NewQuotePaymentUseCase(paymentRepo, store, gateway),
		PostalCodes:   usecase.NewPostalCodeUseCase(lookup),
	}
	c.API = facade.New(facade.UseCases{
		Clients:       c.Clients,
		Users:         c.Users,
		Products:      c.Products,
		ServiceOrders: c.ServiceOrders,
		Quotes:        c.Quotes,
	}, append([]facade.Option{facade.WithLatency(cfg.APILatency)}, facadeOpts...)...)

	return c, nil
}

func loginFlagStore(cfg config.Config, ddb *dynamodb.Client) interfaces.ILoginFlagStore {
	switch cfg.SessionStore {
	case config.StoreDynamoDB:
		return repository.NewLoginFlagDynamoRepository(ddb, cfg.SessionTable, cfg.SessionKey)
	case config.StoreFile:
		return localstate.NewLoginFlagFileStore(cfg.SessionFile, cfg.SessionKey)
	default:
		return memory.NewLoginFlagStore()
	}
}
