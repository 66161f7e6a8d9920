package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleCliente   = "cliente"
	RoleProveedor = "proveedor"
)

// User representa un usuario del portal: staff, cliente o proveedor.
type User struct {
	ID           string
	Name         string // nombre visible; las cotizaciones referencian al cliente por este nombre
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCliente, RoleProveedor:
		return true
	}
	return false
}
