package exchange

type Order struct {
	OrderNumber  uint64
	CurrencyPair string
	Type         string

	Status string

	Rate         float64 // order price
	Amount       float64 // order amount
	FilledRate   float64
	FilledAmount float64

	Timestamp int64
}

type Ticker struct {
	Last          float64
	LowestAsk     float64
	HighestBid    float64
	PercentChange float64
	BaseVolume    float64
	QuoteVolume   float64
	High24hr      float64
	Low24hr       float64
}

type Candle struct {
	Timestamp uint64
	Open      float64
	Close     float64
	High      float64
	Low       float64
	Volume    float64
}
