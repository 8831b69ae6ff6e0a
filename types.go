package poloniex

import "encoding/json"

// from api results; numeric fields arrive as strings unless noted

type RawTicker struct {
	ID            int64  `json:"id"`
	Last          string `json:"last"`
	LowestAsk     string `json:"lowestAsk"`
	HighestBid    string `json:"highestBid"`
	PercentChange string `json:"percentChange"`
	BaseVolume    string `json:"baseVolume"`
	QuoteVolume   string `json:"quoteVolume"`
	IsFrozen      string `json:"isFrozen"`
	High24hr      string `json:"high24hr"`
	Low24hr       string `json:"low24hr"`
}

// entries are [price string, amount float]
type rawOrderBook struct {
	Asks     [][2]interface{} `json:"asks"`
	Bids     [][2]interface{} `json:"bids"`
	IsFrozen string           `json:"isFrozen"`
	Seq      int64            `json:"seq"`
}

type OrderBookItem struct {
	Price  float64
	Amount float64
}

type OrderBook struct {
	Asks     []OrderBookItem
	Bids     []OrderBookItem
	IsFrozen bool
	Seq      int64
}

type RawPublicTrade struct {
	GlobalTradeID uint64 `json:"globalTradeID"`
	TradeID       uint64 `json:"tradeID"`
	Date          string `json:"date"`
	Type          string `json:"type"`
	Rate          string `json:"rate"`
	Amount        string `json:"amount"`
	Total         string `json:"total"`
}

type RawCandle struct {
	Date            int64   `json:"date"`
	High            float64 `json:"high"`
	Low             float64 `json:"low"`
	Open            float64 `json:"open"`
	Close           float64 `json:"close"`
	Volume          float64 `json:"volume"`
	QuoteVolume     float64 `json:"quoteVolume"`
	WeightedAverage float64 `json:"weightedAverage"`
}

type RawCurrency struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TxFee          string `json:"txFee"`
	MinConf        int64  `json:"minConf"`
	DepositAddress string `json:"depositAddress"`
	Disabled       int    `json:"disabled"`
	Delisted       int    `json:"delisted"`
	Frozen         int    `json:"frozen"`
}

type RawLoanOrder struct {
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
	RangeMin int    `json:"rangeMin"`
	RangeMax int    `json:"rangeMax"`
}

type LoanOrders struct {
	Offers  []RawLoanOrder `json:"offers"`
	Demands []RawLoanOrder `json:"demands"`
}

type CompleteBalance struct {
	Available string `json:"available"`
	OnOrders  string `json:"onOrders"`
	BtcValue  string `json:"btcValue"`
}

type DepositsWithdrawals struct {
	Deposits    []RawDeposit    `json:"deposits"`
	Withdrawals []RawWithdrawal `json:"withdrawals"`
}

type RawDeposit struct {
	Currency      string `json:"currency"`
	Address       string `json:"address"`
	Amount        string `json:"amount"`
	Confirmations int    `json:"confirmations"`
	TxID          string `json:"txid"`
	Timestamp     int64  `json:"timestamp"`
	Status        string `json:"status"`
}

type RawWithdrawal struct {
	WithdrawalNumber uint64 `json:"withdrawalNumber"`
	Currency         string `json:"currency"`
	Address          string `json:"address"`
	Amount           string `json:"amount"`
	Timestamp        int64  `json:"timestamp"`
	Status           string `json:"status"`
	IPAddress        string `json:"ipAddress"`
}

type RawOpenOrder struct {
	OrderNumber    string `json:"orderNumber"`
	Type           string `json:"type"`
	Rate           string `json:"rate"`
	StartingAmount string `json:"startingAmount"`
	Amount         string `json:"amount"`
	Total          string `json:"total"`
	Date           string `json:"date"`
	Margin         int    `json:"margin"`
}

type RawPrivateTrade struct {
	GlobalTradeID uint64 `json:"globalTradeID"`
	TradeID       string `json:"tradeID"`
	Date          string `json:"date"`
	Rate          string `json:"rate"`
	Amount        string `json:"amount"`
	Total         string `json:"total"`
	Fee           string `json:"fee"`
	OrderNumber   string `json:"orderNumber"`
	Type          string `json:"type"`
	Category      string `json:"category"`
}

type RawOrderTrade struct {
	GlobalTradeID uint64 `json:"globalTradeID"`
	TradeID       uint64 `json:"tradeID"`
	CurrencyPair  string `json:"currencyPair"`
	Type          string `json:"type"`
	Rate          string `json:"rate"`
	Amount        string `json:"amount"`
	Total         string `json:"total"`
	Fee           string `json:"fee"`
	Date          string `json:"date"`
}

// success/result envelope of returnOrderStatus; Result is either the
// order map or an error object
type rawOrderStatus struct {
	Result  json.RawMessage `json:"result"`
	Success int             `json:"success"`
}

type RawOrderStatus struct {
	Status         string `json:"status"`
	Rate           string `json:"rate"`
	Amount         string `json:"amount"`
	CurrencyPair   string `json:"currencyPair"`
	Date           string `json:"date"`
	Total          string `json:"total"`
	Type           string `json:"type"`
	StartingAmount string `json:"startingAmount"`
}

type ResultingTrade struct {
	Amount  string `json:"amount"`
	Date    string `json:"date"`
	Rate    string `json:"rate"`
	Total   string `json:"total"`
	TradeID string `json:"tradeID"`
	Type    string `json:"type"`
}

type OrderResponse struct {
	OrderNumber     string           `json:"orderNumber"`
	ResultingTrades []ResultingTrade `json:"resultingTrades"`
	Fee             string           `json:"fee"`
	CurrencyPair    string           `json:"currencyPair"`
}

type MoveOrderResponse struct {
	Success         int                         `json:"success"`
	Error           string                      `json:"error"`
	OrderNumber     string                      `json:"orderNumber"`
	ResultingTrades map[string][]ResultingTrade `json:"resultingTrades"`
}

type GenericResponse struct {
	Success  int    `json:"success"`
	Error    string `json:"error"`
	Response string `json:"response"`
}

type FeeInfo struct {
	MakerFee        string `json:"makerFee"`
	TakerFee        string `json:"takerFee"`
	ThirtyDayVolume string `json:"thirtyDayVolume"`
	NextTier        string `json:"nextTier"`
}

type AvailableAccountBalances struct {
	Exchange map[string]string `json:"exchange"`
	Margin   map[string]string `json:"margin"`
	Lending  map[string]string `json:"lending"`
}

type MarginSummary struct {
	TotalValue         string `json:"totalValue"`
	ProfitLoss         string `json:"pl"`
	LendingFees        string `json:"lendingFees"`
	NetValue           string `json:"netValue"`
	TotalBorrowedValue string `json:"totalBorrowedValue"`
	CurrentMargin      string `json:"currentMargin"`
}

type MarginPosition struct {
	Amount           string  `json:"amount"`
	Total            string  `json:"total"`
	BasePrice        string  `json:"basePrice"`
	LiquidationPrice float64 `json:"liquidationPrice"`
	ProfitLoss       string  `json:"pl"`
	LendingFees      string  `json:"lendingFees"`
	Type             string  `json:"type"`
}

type LoanOffer struct {
	ID        uint64 `json:"id"`
	Rate      string `json:"rate"`
	Amount    string `json:"amount"`
	Duration  int    `json:"duration"`
	AutoRenew int    `json:"autoRenew"`
	Date      string `json:"date"`
}

type CreateLoanOfferResponse struct {
	Success int    `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	OrderID int64  `json:"orderID"`
}

type Loan struct {
	ID        uint64 `json:"id"`
	Currency  string `json:"currency"`
	Rate      string `json:"rate"`
	Amount    string `json:"amount"`
	Range     int    `json:"range"`
	AutoRenew int    `json:"autoRenew"`
	Date      string `json:"date"`
	Fees      string `json:"fees"`
}

type ActiveLoans struct {
	Provided []Loan `json:"provided"`
	Used     []Loan `json:"used"`
}

type LendingHistory struct {
	ID       uint64 `json:"id"`
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
	Duration string `json:"duration"`
	Interest string `json:"interest"`
	Fee      string `json:"fee"`
	Earned   string `json:"earned"`
	Open     string `json:"open"`
	Close    string `json:"close"`
}
