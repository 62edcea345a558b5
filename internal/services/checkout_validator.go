package services

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"storefront/internal/models"
)

// The email check is deliberately shallow: local@domain.tld shaped, nothing more.
var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3}$`)
)

// CheckoutValidator validates the checkout form. It is state-free: given the
// customer and payment forms it produces two field-indexed failure maps, one
// per form. Every field is evaluated independently (full-form validation,
// not fail-fast), and only the fields of the selected payment method are
// checked; fields of unselected methods are ignored entirely.
type CheckoutValidator struct {
	validate *validator.Validate
}

// NewCheckoutValidator creates a CheckoutValidator with the custom
// validations registered.
func NewCheckoutValidator() *CheckoutValidator {
	v := validator.New()

	// Failure maps are keyed by the form field names, which live in json tags.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerPattern := func(tag string, pattern *regexp.Regexp) {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
		}
	}

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	registerPattern("simple_email", emailPattern)
	registerPattern("card_number", cardNumberPattern)
	registerPattern("card_expiry", cardExpiryPattern)
	registerPattern("card_cvv", cardCVVPattern)

	return &CheckoutValidator{validate: v}
}

// Per-method shadow forms. Validating the selected method's form, and only
// that form, is what keeps unselected fields out of the failure set.
type creditCardForm struct {
	CardName   string `json:"cardName" validate:"notblank"`
	CardNumber string `json:"cardNumber" validate:"card_number"`
	ExpiryDate string `json:"expiryDate" validate:"card_expiry"`
	CVV        string `json:"cvv" validate:"card_cvv"`
}

type paypalForm struct {
	PayPalEmail string `json:"paypalEmail" validate:"notblank,simple_email"`
}

type bankForm struct {
	BankAccount string `json:"bankAccount" validate:"notblank"`
	BankCode    string `json:"bankCode" validate:"notblank"`
}

// Validate runs the full-form checkout validation and returns the customer
// and payment failure maps. Validation passes iff both maps are empty.
func (cv *CheckoutValidator) Validate(customer models.CustomerDetails, payment models.PaymentDetails) (map[string]string, map[string]string) {
	customerErrs := cv.collect(customer)

	var paymentErrs map[string]string
	switch payment.Method {
	case models.PaymentMethodCreditCard:
		paymentErrs = cv.collect(creditCardForm{
			CardName:   payment.CardName,
			CardNumber: payment.CardNumber,
			ExpiryDate: payment.ExpiryDate,
			CVV:        payment.CVV,
		})
	case models.PaymentMethodPayPal:
		paymentErrs = cv.collect(paypalForm{PayPalEmail: payment.PayPalEmail})
	case models.PaymentMethodBank:
		paymentErrs = cv.collect(bankForm{
			BankAccount: payment.BankAccount,
			BankCode:    payment.BankCode,
		})
	default:
		paymentErrs = map[string]string{
			"method": "Payment method must be one of credit-card, paypal, bank",
		}
	}

	return customerErrs, paymentErrs
}

func (cv *CheckoutValidator) collect(form interface{}) map[string]string {
	failures := make(map[string]string)
	err := cv.validate.Struct(form)
	if err == nil {
		return failures
	}
	for _, fe := range err.(validator.ValidationErrors) {
		failures[fe.Field()] = fieldMessage(fe.Field(), fe.Tag())
	}
	return failures
}

// fieldMessage maps a failed field/tag pair to its inline user-facing message.
func fieldMessage(field, tag string) string {
	if tag == "simple_email" {
		return "Invalid email format"
	}
	switch field {
	case "firstName":
		return "First name is required"
	case "lastName":
		return "Last name is required"
	case "email":
		return "Email is required"
	case "address":
		return "Address is required"
	case "city":
		return "City is required"
	case "postalCode":
		return "Postal code is required"
	case "cardName":
		return "Cardholder name required"
	case "cardNumber":
		return "Card number must be 16 digits"
	case "expiryDate":
		return "Expiry must be MM/YY"
	case "cvv":
		return "CVV must be 3 digits"
	case "paypalEmail":
		return "PayPal email required"
	case "bankAccount":
		return "Account number required"
	case "bankCode":
		return "Bank code required"
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", field, tag)
}
