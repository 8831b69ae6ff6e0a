package exchange

type APIKeyPair struct {
	Domain    string `json:"domain"`
	ApiKey    string `json:"apiKey"`
	SecretKey string `json:"secretKey"`
}

const (
	OrderStatusOpen      = "Open"
	OrderStatusCancelled = "Cancelled"
	OrderStatusFilled    = "Filled"

	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"
)
