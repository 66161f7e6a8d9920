package dhl

import "encoding/json"

// Estructuras del endpoint /rates de MyDHL API (subconjunto que usamos).
// Los carriers reales devuelven datos parciales o inconsistentes con frecuencia,
// por eso los campos numéricos ambiguos se capturan crudos y se interpretan después.

// RateResponse respuesta cruda del endpoint /rates.
type RateResponse struct {
	Products []Product `json:"products"`
}

// Product una opción de servicio del carrier con sus precios y capacidad de entrega.
type Product struct {
	ProductCode          string                `json:"productCode"`
	ProductName          string                `json:"productName"`
	TotalPrice           []ProductPrice        `json:"totalPrice"`
	DeliveryCapabilities *DeliveryCapabilities `json:"deliveryCapabilities"`

	// Raw conserva el registro original para auditoría; no viene del JSON.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodifica el producto y guarda además el registro crudo.
func (p *Product) UnmarshalJSON(b []byte) error {
	type alias Product
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = Product(a)
	p.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// ProductPrice un precio en una moneda. Price llega como número JSON;
// json.Number permite distinguir "ausente" ("") de cero real.
type ProductPrice struct {
	Price    json.Number `json:"price"`
	Currency string      `json:"priceCurrency"`
}

// DeliveryCapabilities metadata de entrega. TotalTransitDays puede llegar como
// número o como string numérica según el tenant, por eso se captura crudo.
type DeliveryCapabilities struct {
	EstimatedDeliveryDateAndTime string          `json:"estimatedDeliveryDateAndTime"`
	TotalTransitDays             json.RawMessage `json:"totalTransitDays"`
}
