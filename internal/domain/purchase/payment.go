package purchase

import "errors"

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// PaymentMethod is a closed variant over the supported settlement rails.
// The settlement engine dispatches on the concrete type instead of
// probing for method-specific fields on the request.
type PaymentMethod interface {
	Method() Method
	sealed()
}

// Card settles synchronously through the external gateway.
type Card struct{}

func (Card) Method() Method { return MethodCard }
func (Card) sealed()        {}

// Wallet redirects the buyer to an external wallet checkout page.
type Wallet struct {
	Provider string
}

func (Wallet) Method() Method { return MethodWallet }
func (Wallet) sealed()        {}

// BankTransfer produces a manual payment guide with a transfer reference
// code and QR payload; completion happens out of band.
type BankTransfer struct {
	Bank string
	Note string
}

func (BankTransfer) Method() Method { return MethodBankTransfer }
func (BankTransfer) sealed()        {}
