package payment

// CaptureRequest is the payload for charging an order total. Amount is in the
// smallest currency unit.
type CaptureRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,len=3"`
}

// CaptureResult carries the provider's charge reference back to the client.
type CaptureResult struct {
	ChargeID string `json:"charge_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
