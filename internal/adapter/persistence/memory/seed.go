package memory

import (
	"log"
	"time"

	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var money = decimal.RequireFromString

// loadSeed fills an empty store with the demo dataset. Dates are relative to the store clock.
// Collections are listed newest first, matching what the create paths produce.
func loadSeed(s *RecordStore) {
	now := s.now()
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
	completedAt := day(-1)

	s.clients = []entities.Client{
		{
			ID: "cli-1", Type: entities.PartyTypeOrganization, Email: "contato@techsolutions.com",
			Address: entities.Address{Street: "Rua das Inovações", Number: "123", Complement: "Andar 10", Neighborhood: "Centro", City: "São Paulo", State: "SP", ZipCode: "01001-000"},
			Organization: &entities.ClientOrganization{
				LegalName: "Tech Solutions & Inovações Ltda.", TradeName: "Tech Solutions", CNPJ: "12.345.678/0001-99",
				StateRegistration: "111.222.333.444", ContactName: "Ana", Phone: "(11) 98765-4321",
			},
		},
		{
			ID: "cli-2", Type: entities.PartyTypeOrganization, Email: "joao.silva@jsinstalacoes.com",
			Address: entities.Address{Street: "Av. Principal", Number: "456", Complement: "Loja B", Neighborhood: "Copacabana", City: "Rio de Janeiro", State: "RJ", ZipCode: "22020-002"},
			Organization: &entities.ClientOrganization{
				LegalName: "João da Silva MEI", TradeName: "JS Instalações", CNPJ: "23.456.789/0001-11",
				StateRegistration: "Isento", ContactName: "João da Silva", Phone: "(21) 91234-5678",
			},
		},
		{
			ID: "cli-3", Type: entities.PartyTypeOrganization, Email: "compras@superoliveira.com",
			Address: entities.Address{Street: "Praça Central", Number: "789", Neighborhood: "Savassi", City: "Belo Horizonte", State: "MG", ZipCode: "30130-141"},
			Organization: &entities.ClientOrganization{
				LegalName: "Comércio de Alimentos Oliveira Ltda.", TradeName: "Supermercado Oliveira", CNPJ: "98.765.432/0001-22",
				StateRegistration: "555.666.777.888", ContactName: "Maria Oliveira", Phone: "(31) 95555-4444",
			},
		},
		{
			ID: "cli-4", Type: entities.PartyTypeIndividual, Email: "fernanda.costa@email.com",
			Address: entities.Address{Street: "Rua das Flores", Number: "50", Complement: "Apto 202", Neighborhood: "Jardins", City: "São Paulo", State: "SP", ZipCode: "01401-001"},
			Individual: &entities.ClientIndividual{
				FullName: "Fernanda Costa", CPF: "123.456.789-00", RG: "22.333.444-5", BirthDate: "1990-05-15",
				Sex: "Feminino", MobilePhone: "(11) 98888-7777",
			},
		},
	}

	s.users = []entities.User{
		{
			ID: "user-admin", Type: entities.PartyTypeIndividual, Username: "administrador", Email: "admin@fieldservice.com",
			Role: entities.UserRoleAdmin, Status: entities.UserStatusActive,
			Individual: &entities.UserIndividual{FullName: "Administrador do Sistema"},
		},
		{
			ID: "user-1", Type: entities.PartyTypeIndividual, Username: "carlos", Email: "carlos.ferreira@fieldservice.com",
			Phone: "(11) 99999-1111", Role: entities.UserRoleTechnician, Status: entities.UserStatusActive,
			Individual: &entities.UserIndividual{FullName: "Carlos Ferreira", TechnicianIDNumber: "TEC-001", CPF: "111.222.333-44", RG: "12.345.678-9"},
		},
		{
			ID: "user-2", Type: entities.PartyTypeIndividual, Username: "ana", Email: "ana.souza@fieldservice.com",
			Phone: "(21) 98888-2222", Role: entities.UserRoleTechnician, Status: entities.UserStatusActive,
			Individual: &entities.UserIndividual{FullName: "Ana Souza", TechnicianIDNumber: "TEC-002", CPF: "222.333.444-55", RG: "23.456.789-0"},
		},
		{
			ID: "user-3", Type: entities.PartyTypeIndividual, Username: "mariana", Email: "mariana.lima@fieldservice.com",
			Phone: "(31) 97777-3333", Role: entities.UserRoleAdmin, Status: entities.UserStatusInactive,
			Individual: &entities.UserIndividual{FullName: "Mariana Lima"},
		},
		{
			ID: "user-4", Type: entities.PartyTypeOrganization, Username: "abc.ti", Email: "contato@abcti.com",
			Phone: "(11) 5555-6666", Role: entities.UserRoleTechnician, Status: entities.UserStatusActive,
			Organization: &entities.UserOrganization{LegalName: "ABC Terceirização de TI", CNPJ: "11.222.333/0001-44"},
		},
	}

	passwords := map[string]string{
		"administrador": "112233",
		"carlos":        "123",
		"ana":           "123",
		"mariana":       "123",
		"abc.ti":        "123",
	}
	for username, password := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
		if err != nil {
			log.Printf("[seed][memory] failed to hash credential username=%s err=%v", username, err)
			continue
		}
		s.credentials[username] = hash
	}

	s.products = []entities.Product{
		{ID: "prod-1", SKU: "TEL-001", Name: "Telefone IP Intelbras TIP 125i", Description: "Telefone IP com suporte a 1 conta SIP, PoE e alta qualidade de voz.", Category: entities.ProductCategoryTelephony, UnitOfMeasure: entities.UnitOfMeasureUnit, QuantityInStock: 25, CostPrice: money("250.00"), SellingPrice: money("349.90"), Supplier: "Intelbras S/A"},
		{ID: "prod-2", SKU: "CAB-001", Name: "Cabo de Rede CAT6 Furukawa", Description: "Cabo de rede para instalações de alta performance.", Category: entities.ProductCategoryNetworks, UnitOfMeasure: entities.UnitOfMeasureMeter, QuantityInStock: 500, CostPrice: money("1.80"), SellingPrice: money("3.50"), Supplier: "Distribuidora Cabos Mil"},
		{ID: "prod-3", SKU: "CEN-001", Name: "Central Telefônica Intelbras Modulare+", Description: "Central PABX analógica para pequenas empresas.", Category: entities.ProductCategoryTelephony, UnitOfMeasure: entities.UnitOfMeasurePiece, QuantityInStock: 5, CostPrice: money("450.00"), SellingPrice: money("629.90"), Supplier: "Intelbras S/A"},
		{ID: "prod-4", SKU: "SEG-002", Name: "Câmera IP Giga Security GS0246", Description: "Câmera IP Bullet com infravermelho e resolução Full HD.", Category: entities.ProductCategorySecurity, UnitOfMeasure: entities.UnitOfMeasureUnit, QuantityInStock: 15, CostPrice: money("280.00"), SellingPrice: money("419.99"), Supplier: "Giga Security"},
		{ID: "prod-5", SKU: "CON-001", Name: "Conector RJ45 CAT6 Blindado", Description: "Conector para montagem de cabos de rede CAT6.", Category: entities.ProductCategoryNetworks, UnitOfMeasure: entities.UnitOfMeasureBox, QuantityInStock: 10, CostPrice: money("80.00"), SellingPrice: money("150.00"), Supplier: "Distribuidora Cabos Mil"},
	}

	s.orders = []entities.ServiceOrder{
		{
			ID: "os-001", ClientID: "cli-1", ClientName: "Tech Solutions & Inovações Ltda.", ServiceType: "Manutenção de Servidor",
			Location: "Rua das Inovações, 123, São Paulo, SP", ScheduledDate: day(2),
			Notes: "Verificar performance do servidor principal e fazer limpeza de logs.", Status: entities.ServiceOrderStatusPending, Technician: "Carlos",
		},
		{
			ID: "os-002", ClientID: "cli-2", ClientName: "João da Silva MEI", ServiceType: "Instalação de Câmeras",
			Location: "Av. Principal, 456, Rio de Janeiro, RJ", ScheduledDate: now,
			Notes: "Instalar 4 câmeras de segurança na área externa da residência.", Status: entities.ServiceOrderStatusInProgress, Technician: "Ana",
		},
		{
			ID: "os-003", ClientID: "cli-3", ClientName: "Comércio de Alimentos Oliveira Ltda.", ServiceType: "Reparo de Rede Wi-Fi",
			Location: "Praça Central, 789, Belo Horizonte, MG", ScheduledDate: day(-1),
			Notes: "Sinal de Wi-Fi fraco no segundo andar.", Status: entities.ServiceOrderStatusCompleted, Technician: "Carlos", CompletedAt: &completedAt,
		},
	}

	s.quotes = []entities.Quote{
		{
			ID: "qt-001", QuoteNumber: "ORC-0001", ClientID: "cli-1", ClientName: "Tech Solutions & Inovações Ltda.",
			QuoteDate: day(-10), ValidUntil: day(20),
			Items: []entities.QuoteItem{
				{ID: "item-1", Description: "Instalação e configuração de 10 câmeras de segurança Intelbras Full HD", Quantity: decimal.NewFromInt(1), UnitPrice: money("4500")},
				{ID: "item-2", Description: "Licença anual de software de monitoramento", Quantity: decimal.NewFromInt(1), UnitPrice: money("800")},
			},
			Discount:             money("150"),
			Observations:         "Infraestrutura de cabos não inclusa.",
			CommercialConditions: "Garantia de 12 meses para equipamentos. Pagamento em 3x no boleto.",
			Status:               entities.QuoteStatusSent,
		},
		{
			ID: "qt-002", QuoteNumber: "ORC-0002", ClientID: "cli-4", ClientName: "Fernanda Costa",
			QuoteDate: day(-2), ValidUntil: day(28),
			Items: []entities.QuoteItem{
				{ID: "item-3", Description: "Consultoria e configuração de rede Wi-Fi Mesh", Quantity: decimal.NewFromInt(1), UnitPrice: money("600")},
			},
			Observations:         "Visita técnica para análise do ambiente e recomendação de equipamentos.",
			CommercialConditions: "Pagamento via PIX na conclusão do serviço.",
			Status:               entities.QuoteStatusDraft,
		},
	}

	for i := range s.quotes {
		s.quotes[i].RecomputeTotals()
		if seq, err := entities.ParseQuoteNumber(s.quotes[i].QuoteNumber); err == nil && seq > s.quoteSeq {
			s.quoteSeq = seq
		}
	}
}
