package models

// Payment method variants accepted at checkout.
const (
	PaymentMethodCreditCard = "credit-card"
	PaymentMethodPayPal     = "paypal"
	PaymentMethodBank       = "bank"
)

// CustomerDetails is the contact/shipping half of the checkout form.
// The json tag names double as the field keys in validation error maps.
type CustomerDetails struct {
	FirstName  string `json:"firstName" validate:"notblank"`
	LastName   string `json:"lastName" validate:"notblank"`
	Email      string `json:"email" validate:"notblank,simple_email"`
	Address    string `json:"address" validate:"notblank"`
	City       string `json:"city" validate:"notblank"`
	PostalCode string `json:"postalCode" validate:"notblank"`
}

// PaymentDetails is the payment half of the checkout form. Only the fields
// belonging to the selected Method are validated; the rest are ignored.
type PaymentDetails struct {
	Method      string `json:"method"`
	CardName    string `json:"cardName"`
	CardNumber  string `json:"cardNumber"`
	ExpiryDate  string `json:"expiryDate"`
	CVV         string `json:"cvv"`
	PayPalEmail string `json:"paypalEmail"`
	BankAccount string `json:"bankAccount"`
	BankCode    string `json:"bankCode"`
}
