package models

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentConfirmRequest is posted by the client once the provider reports a
// successful charge.
type PaymentConfirmRequest struct {
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
	Price         float64 `json:"price"`
}
