package repository

import "github.com/eonlogistics/eon-ops-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del portal.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	// GetByName busca por nombre visible; las cotizaciones referencian al cliente
	// y al proveedor por nombre, así que el correo se resuelve por aquí.
	GetByName(name string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
