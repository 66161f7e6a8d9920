// Package mail implementa el envío de correos transaccionales por SMTP:
// la cotización en PDF al cliente y el aviso de asignación al proveedor.
package mail

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/ports"
	"github.com/eonlogistics/eon-ops-api/pkg/config"
)

// GomailMailer implementa ports.Mailer sobre SMTP con SSL implícito (puerto 465).
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer construye el mailer a partir de la configuración SMTP.
func NewGomailMailer(cfg config.SMTPConfig) *GomailMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	// Gmail y la mayoría de los proveedores usan SSL implícito en el 465.
	d.SSL = cfg.Port == 465
	return &GomailMailer{dialer: d, from: cfg.User}
}

// Send envía un correo HTML con adjuntos opcionales.
// Respeta la cancelación del contexto antes de abrir la conexión SMTP.
func (m *GomailMailer) Send(ctx context.Context, to, subject, body string, attachments ...ports.Attachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.from == "" {
		return fmt.Errorf("mail: SMTP_USER no configurado")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	for _, att := range attachments {
		content := att.Content
		msg.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.MIMEType},
			}),
		)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar a %s: %w", to, err)
	}
	return nil
}
