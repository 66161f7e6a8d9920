package ports

import "context"

// Attachment archivo adjunto de un correo.
type Attachment struct {
	Filename string
	MIMEType string
	Content  []byte
}

// Mailer define el puerto de salida para notificaciones por correo
// (cotización en PDF al cliente, aviso de asignación al proveedor).
type Mailer interface {
	Send(ctx context.Context, to, subject, body string, attachments ...Attachment) error
}
