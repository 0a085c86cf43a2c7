// Package email implementa el envío de facturas por correo SMTP con el PDF adjunto.
package email

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/Facturia-api/internal/application/billing"
	"github.com/jhoicas/Facturia-api/pkg/config"
)

var _ billing.EmailSender = (*GomailSender)(nil)

// GomailSender implementa billing.EmailSender sobre SMTP.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el sender desde la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendInvoice envía el correo con el PDF adjunto. Respeta la cancelación del
// contexto antes de abrir la conexión SMTP; el envío en sí es bloqueante.
func (s *GomailSender) SendInvoice(ctx context.Context, to, subject, htmlBody string, pdf []byte, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", to, err)
	}
	return nil
}
