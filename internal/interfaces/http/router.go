package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturia-api/internal/application/auth"
	"github.com/jhoicas/Facturia-api/internal/application/billing"
	"github.com/jhoicas/Facturia-api/internal/application/reports"
	"github.com/jhoicas/Facturia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ClientUC  *billing.ClientUseCase
	InvoiceUC *billing.InvoiceUseCase
	PaymentUC *billing.PaymentUseCase
	PDFUC     *billing.PDFUseCase
	SendUC    *billing.SendUseCase
	ReportUC  *reports.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, deps.SendUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Get("/:id/export/pdf", invoiceHandler.ExportPDF)
	invoices.Post("/:invoiceId/payments", paymentHandler.Add)

	// Payments (protegido; eliminar pagos es solo de admin)
	payments := protected.Group("/payments")
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.Get)
	payments.Delete("/:id", RequireRole(entity.RoleAdmin), paymentHandler.Delete)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/monthly-sales", reportHandler.MonthlySales)
	reportsGroup.Get("/sales-by-year", reportHandler.SalesByYear)
	reportsGroup.Get("/outstanding", reportHandler.Outstanding)
}
