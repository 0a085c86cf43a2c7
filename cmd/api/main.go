package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Facturia-api/internal/application/auth"
	"github.com/jhoicas/Facturia-api/internal/application/billing"
	"github.com/jhoicas/Facturia-api/internal/application/reports"
	infraemail "github.com/jhoicas/Facturia-api/internal/infrastructure/email"
	infrapdf "github.com/jhoicas/Facturia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Facturia-api/internal/interfaces/http"
	"github.com/jhoicas/Facturia-api/pkg/config"
	"github.com/jhoicas/Facturia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	company := billing.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Email:   cfg.Company.Email,
		Phone:   cfg.Company.Phone,
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := billing.NewClientUseCase(clientRepo, invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, clientRepo, paymentRepo)
	paymentUC := billing.NewPaymentUseCase(txRunner, paymentRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, pdfGenerator, company)

	// Sin SMTP_HOST el envío por correo queda deshabilitado: POST /send responde 503.
	var sender billing.EmailSender
	if cfg.SMTP.Host != "" {
		sender = infraemail.NewGomailSender(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP sin configurar: envío de facturas por correo deshabilitado")
	}
	sendUC := billing.NewSendUseCase(invoiceRepo, clientRepo, paymentRepo, pdfUC, sender, company)

	reportUC := reports.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ClientUC:  clientUC,
		InvoiceUC: invoiceUC,
		PaymentUC: paymentUC,
		PDFUC:     pdfUC,
		SendUC:    sendUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
