package constants

// Payment method values as stored on drafts and in the ledger.
const (
	PaymentCard = "card"
	PaymentCash = "cash"
	PaymentApp  = "app"
)
