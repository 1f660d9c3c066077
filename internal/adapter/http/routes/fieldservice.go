package routes

import (
	"fieldservice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathAuth          = "/auth"
	PathClients       = "/clients"
	PathUsers         = "/users"
	PathProducts      = "/products"
	PathServiceOrders = "/service-orders"
	PathQuotes        = "/quotes"
	PathPostalCodes   = "/postal-codes"
)

type fieldServiceHandlers struct {
	auth          *handlers.AuthHandler
	clients       *handlers.ClientHandler
	users         *handlers.UserHandler
	products      *handlers.ProductHandler
	serviceOrders *handlers.ServiceOrderHandler
	quotes        *handlers.QuoteHandler
	quotePayments *handlers.QuotePaymentHandler
	postalCodes   *handlers.PostalCodeHandler
}

func addFieldServiceRoutes(rg *gin.RouterGroup, h fieldServiceHandlers) {
	rg.POST(PathAuth+"/login", h.auth.Login)

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.clients.ListClients)
		clients.POST("", h.clients.CreateClient)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("", h.users.ListUsers)
		users.POST("", h.users.CreateUser)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.products.ListProducts)
		products.POST("", h.products.CreateProduct)
	}

	orders := rg.Group(PathServiceOrders)
	{
		orders.GET("", h.serviceOrders.ListServiceOrders)
		orders.POST("", h.serviceOrders.CreateServiceOrder)
		orders.POST("/parse", h.serviceOrders.ParseServiceRequest)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.quotes.ListQuotes)
		quotes.POST("", h.quotes.CreateQuote)
		quotes.GET("/:id", h.quotes.GetQuote)
		quotes.PATCH("/:id/send", h.quotes.SendQuote)
		quotes.PATCH("/:id/accept", h.quotes.AcceptQuote)
		quotes.PATCH("/:id/reject", h.quotes.RejectQuote)

		quotes.POST("/:id/payments", h.quotePayments.CreatePayment)
		quotes.GET("/:id/payments", h.quotePayments.ListPayments)
		quotes.GET("/:id/payments/latest", h.quotePayments.GetLatestPayment)
	}

	rg.GET(PathPostalCodes+"/:zip", h.postalCodes.LookupPostalCode)
}
