package entity

type DeliveryType string

const (
	DeliveryEntrega  DeliveryType = "Entrega"
	DeliveryRetirada DeliveryType = "Retirada"
)

// Valid reports whether t is a known delivery type.
func (t DeliveryType) Valid() bool {
	return t == DeliveryEntrega || t == DeliveryRetirada
}

type PaymentMethod string

const (
	PaymentDebito   PaymentMethod = "Cartão de Débito"
	PaymentCredito  PaymentMethod = "Cartão de Crédito"
	PaymentPix      PaymentMethod = "Pix"
	PaymentDinheiro PaymentMethod = "Dinheiro"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentDebito, PaymentCredito, PaymentPix, PaymentDinheiro:
		return true
	}
	return false
}

type CustomerInfo struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	StreetAndNumber  string `json:"streetAndNumber"`
	Neighborhood     string `json:"neighborhood"`
	ApartmentDetails string `json:"apartmentDetails,omitempty"`
	Landmark         string `json:"landmark,omitempty"`
}
