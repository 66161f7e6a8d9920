package entity

import "github.com/shopspring/decimal"

// ProviderRoute asocia un proveedor con una ruta y tipo de unidad que atiende.
// PriceFactor multiplica el precio cotizado para generar la oferta automática
// al crear una cotización sobre esa ruta.
type ProviderRoute struct {
	ID          string
	Provider    string
	Origin      string
	Destination string
	UnitType    string
	PriceFactor decimal.Decimal
}
