package poloniex

const DefaultHost = "https://poloniex.com"

const Version = "1.0.0"

const (
	GET  = "GET"
	POST = "POST"
)

const (
	publicPath  = "/public"
	tradingPath = "/tradingApi"
)

// public api commands
const (
	CommandTicker       = "returnTicker"
	CommandVolume24h    = "return24hVolume"
	CommandOrderBook    = "returnOrderBook"
	CommandTradeHistory = "returnTradeHistory"
	CommandChartData    = "returnChartData"
	CommandCurrencies   = "returnCurrencies"
	CommandLoanOrders   = "returnLoanOrders"
)

// trading api commands
const (
	CommandBalances            = "returnBalances"
	CommandCompleteBalances    = "returnCompleteBalances"
	CommandDepositAddresses    = "returnDepositAddresses"
	CommandGenerateNewAddress  = "generateNewAddress"
	CommandDepositsWithdrawals = "returnDepositsWithdrawals"
	CommandOpenOrders          = "returnOpenOrders"
	CommandOrderTrades         = "returnOrderTrades"
	CommandOrderStatus         = "returnOrderStatus"
	CommandBuy                 = "buy"
	CommandSell                = "sell"
	CommandCancelOrder         = "cancelOrder"
	CommandMoveOrder           = "moveOrder"
	CommandWithdraw            = "withdraw"
	CommandFeeInfo             = "returnFeeInfo"
	CommandAvailableBalances   = "returnAvailableAccountBalances"
	CommandTradableBalances    = "returnTradableBalances"
	CommandTransferBalance     = "transferBalance"
	CommandMarginSummary       = "returnMarginAccountSummary"
	CommandMarginBuy           = "marginBuy"
	CommandMarginSell          = "marginSell"
	CommandMarginPosition      = "getMarginPosition"
	CommandCloseMarginPosition = "closeMarginPosition"
	CommandCreateLoanOffer     = "createLoanOffer"
	CommandCancelLoanOffer     = "cancelLoanOffer"
	CommandOpenLoanOffers      = "returnOpenLoanOffers"
	CommandActiveLoans         = "returnActiveLoans"
	CommandLendingHistory      = "returnLendingHistory"
	CommandToggleAutoRenew     = "toggleAutoRenew"
)

const (
	USDT_BTC = "USDT_BTC"
	USDT_ETH = "USDT_ETH"
	BTC_ETH  = "BTC_ETH"
	BTC_XMR  = "BTC_XMR"

	BTC  = "BTC"
	ETH  = "ETH"
	XMR  = "XMR"
	USDT = "USDT"
)

// candle periods accepted by returnChartData, in seconds
const (
	Period5Min  = 300
	Period15Min = 900
	Period30Min = 1800
	Period2Hour = 7200
	Period4Hour = 14400
	PeriodDay   = 86400
)

const (
	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"
)

const (
	AccountExchange = "exchange"
	AccountMargin   = "margin"
	AccountLending  = "lending"
)
