package poloniex

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xyths/hs/convert"
	"github.com/xyths/poloniex/exchange"
)

// Balances returns the fund balance of every currency, as strings.
func (p *Poloniex) Balances() (map[string]string, error) {
	var result map[string]string
	err := p.SendPrivate(CommandBalances, nil, &result)
	return result, err
}

// AvailableBalance returns non-zero balances as decimals.
func (p *Poloniex) AvailableBalance() (map[string]decimal.Decimal, error) {
	raw, err := p.Balances()
	if err != nil {
		return nil, err
	}
	balances := make(map[string]decimal.Decimal)
	for currency, amount := range raw {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, errors.Wrapf(err, "bad balance for %s", currency)
		}
		if !d.IsZero() {
			balances[currency] = d
		}
	}
	return balances, nil
}

// CompleteBalances returns balances with on-order and BTC-value
// breakdowns, for all accounts.
func (p *Poloniex) CompleteBalances() (map[string]CompleteBalance, error) {
	values := url.Values{}
	values.Set("account", "all")
	var result map[string]CompleteBalance
	err := p.SendPrivate(CommandCompleteBalances, values, &result)
	return result, err
}

// DepositAddresses returns the deposit address of each enabled
// currency.
func (p *Poloniex) DepositAddresses() (map[string]string, error) {
	var result map[string]string
	err := p.SendPrivate(CommandDepositAddresses, nil, &result)
	return result, err
}

// GenerateNewAddress creates a deposit address for a currency.
func (p *Poloniex) GenerateNewAddress(currency string) (string, error) {
	values := url.Values{}
	values.Set("currency", currency)
	var res GenericResponse
	if err := p.SendPrivate(CommandGenerateNewAddress, values, &res); err != nil {
		return "", err
	}
	if res.Success != 1 {
		return "", errors.New(res.Error)
	}
	return res.Response, nil
}

// DepositsWithdrawals returns deposit and withdrawal history between
// start and end, unix seconds.
func (p *Poloniex) DepositsWithdrawals(start, end int64) (*DepositsWithdrawals, error) {
	values := url.Values{}
	values.Set("start", strconv.FormatInt(start, 10))
	values.Set("end", strconv.FormatInt(end, 10))
	var result DepositsWithdrawals
	err := p.SendPrivate(CommandDepositsWithdrawals, values, &result)
	return &result, err
}

// OpenOrders returns open orders of one market.
func (p *Poloniex) OpenOrders(currencyPair string) ([]RawOpenOrder, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	var result []RawOpenOrder
	err := p.SendPrivate(CommandOpenOrders, values, &result)
	return result, err
}

// OpenOrdersAll returns open orders of every market.
func (p *Poloniex) OpenOrdersAll() (map[string][]RawOpenOrder, error) {
	values := url.Values{}
	values.Set("currencyPair", "all")
	var result map[string][]RawOpenOrder
	err := p.SendPrivate(CommandOpenOrders, values, &result)
	return result, err
}

// MyTradeHistory returns the account's trades of one market. limit 0
// means the server default.
func (p *Poloniex) MyTradeHistory(currencyPair string, start, end int64, limit int) ([]RawPrivateTrade, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	if start > 0 {
		values.Set("start", strconv.FormatInt(start, 10))
	}
	if end > 0 {
		values.Set("end", strconv.FormatInt(end, 10))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	var result []RawPrivateTrade
	err := p.SendPrivate(CommandTradeHistory, values, &result)
	return result, err
}

// OrderTrades returns all trades involving one order. The api answers
// with an object on error and an array on success, so probe the first
// byte before decoding.
func (p *Poloniex) OrderTrades(orderNumber uint64) ([]RawOrderTrade, error) {
	values := url.Values{}
	values.Set("orderNumber", strconv.FormatUint(orderNumber, 10))
	var raw json.RawMessage
	if err := p.SendPrivate(CommandOrderTrades, values, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errors.Errorf("unexpected response: %s", string(raw))
	}
	var trades []RawOrderTrade
	err := json.Unmarshal(raw, &trades)
	return trades, err
}

// OrderStatus returns the status of one open order.
func (p *Poloniex) OrderStatus(orderNumber uint64) (*RawOrderStatus, error) {
	values := url.Values{}
	values.Set("orderNumber", strconv.FormatUint(orderNumber, 10))
	var raw rawOrderStatus
	if err := p.SendPrivate(CommandOrderStatus, values, &raw); err != nil {
		return nil, err
	}
	if raw.Success != 1 {
		var res GenericResponse
		if err := json.Unmarshal(raw.Result, &res); err != nil {
			return nil, errors.Wrap(err, "decode order status error")
		}
		return nil, errors.New(res.Error)
	}
	var status map[string]RawOrderStatus
	if err := json.Unmarshal(raw.Result, &status); err != nil {
		return nil, errors.Wrap(err, "decode order status")
	}
	for _, s := range status {
		return &s, nil
	}
	return nil, errors.New("empty order status")
}

// GetOrder returns the normalized status of one order.
func (p *Poloniex) GetOrder(orderNumber uint64) (order exchange.Order, err error) {
	status, err := p.OrderStatus(orderNumber)
	if err != nil {
		return
	}
	order.OrderNumber = orderNumber
	order.CurrencyPair = status.CurrencyPair
	order.Type = status.Type
	order.Status = status.Status
	order.Rate = convert.StrToFloat64(status.Rate)
	order.Amount = convert.StrToFloat64(status.StartingAmount)
	return
}

// PlaceOrder places a limit order. side is CommandBuy or CommandSell;
// the flags map to the api's fillOrKill, immediateOrCancel and
// postOnly switches.
func (p *Poloniex) PlaceOrder(side, currencyPair string, rate, amount decimal.Decimal, fillOrKill, immediateOrCancel, postOnly bool) (*OrderResponse, error) {
	if side != CommandBuy && side != CommandSell {
		return nil, errors.Errorf("bad order side %q", side)
	}
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	values.Set("rate", rate.String())
	values.Set("amount", amount.String())
	if fillOrKill {
		values.Set("fillOrKill", "1")
	}
	if immediateOrCancel {
		values.Set("immediateOrCancel", "1")
	}
	if postOnly {
		values.Set("postOnly", "1")
	}
	var result OrderResponse
	err := p.SendPrivate(side, values, &result)
	return &result, err
}

// Buy places a plain limit buy order.
func (p *Poloniex) Buy(currencyPair string, rate, amount decimal.Decimal) (*OrderResponse, error) {
	return p.PlaceOrder(CommandBuy, currencyPair, rate, amount, false, false, false)
}

// Sell places a plain limit sell order.
func (p *Poloniex) Sell(currencyPair string, rate, amount decimal.Decimal) (*OrderResponse, error) {
	return p.PlaceOrder(CommandSell, currencyPair, rate, amount, false, false, false)
}

// CancelOrder cancels an order by number.
func (p *Poloniex) CancelOrder(orderNumber uint64) (bool, error) {
	values := url.Values{}
	values.Set("orderNumber", strconv.FormatUint(orderNumber, 10))
	var res GenericResponse
	if err := p.SendPrivate(CommandCancelOrder, values, &res); err != nil {
		return false, err
	}
	if res.Success != 1 {
		return false, errors.New(res.Error)
	}
	return true, nil
}

// MoveOrder cancels an order and immediately replaces it at a new
// rate. A zero amount keeps the old one.
func (p *Poloniex) MoveOrder(orderNumber uint64, rate, amount decimal.Decimal, postOnly, immediateOrCancel bool) (*MoveOrderResponse, error) {
	if orderNumber == 0 {
		return nil, errors.New("order number cannot be zero")
	}
	if rate.IsZero() {
		return nil, errors.New("rate cannot be zero")
	}
	values := url.Values{}
	values.Set("orderNumber", strconv.FormatUint(orderNumber, 10))
	values.Set("rate", rate.String())
	if !amount.IsZero() {
		values.Set("amount", amount.String())
	}
	if postOnly {
		values.Set("postOnly", "1")
	}
	if immediateOrCancel {
		values.Set("immediateOrCancel", "1")
	}
	var result MoveOrderResponse
	if err := p.SendPrivate(CommandMoveOrder, values, &result); err != nil {
		return nil, err
	}
	if result.Success != 1 {
		return nil, errors.New(result.Error)
	}
	return &result, nil
}

// Withdraw sends amount of currency to address and returns the
// server's confirmation message.
func (p *Poloniex) Withdraw(currency string, amount decimal.Decimal, address string) (string, error) {
	values := url.Values{}
	values.Set("currency", currency)
	values.Set("amount", amount.String())
	values.Set("address", address)
	var res GenericResponse
	if err := p.SendPrivate(CommandWithdraw, values, &res); err != nil {
		return "", err
	}
	return res.Response, nil
}

// FeeInfo returns the account's maker/taker fees and 30-day volume.
func (p *Poloniex) FeeInfo() (*FeeInfo, error) {
	var result FeeInfo
	err := p.SendPrivate(CommandFeeInfo, nil, &result)
	return &result, err
}

// AvailableAccountBalances returns balances split by account.
func (p *Poloniex) AvailableAccountBalances() (*AvailableAccountBalances, error) {
	var result AvailableAccountBalances
	err := p.SendPrivate(CommandAvailableBalances, nil, &result)
	return &result, err
}

// TradableBalances returns margin-tradable balances per market.
func (p *Poloniex) TradableBalances() (map[string]map[string]string, error) {
	var result map[string]map[string]string
	err := p.SendPrivate(CommandTradableBalances, nil, &result)
	return result, err
}

// TransferBalance moves funds between the exchange, margin and
// lending accounts.
func (p *Poloniex) TransferBalance(currency string, amount decimal.Decimal, from, to string) (bool, error) {
	values := url.Values{}
	values.Set("currency", currency)
	values.Set("amount", amount.String())
	values.Set("fromAccount", from)
	values.Set("toAccount", to)
	var res GenericResponse
	if err := p.SendPrivate(CommandTransferBalance, values, &res); err != nil {
		return false, err
	}
	if res.Success != 1 {
		return false, errors.New(res.Error)
	}
	return true, nil
}

// MarginAccountSummary returns a summary of the margin account.
func (p *Poloniex) MarginAccountSummary() (*MarginSummary, error) {
	var result MarginSummary
	err := p.SendPrivate(CommandMarginSummary, nil, &result)
	return &result, err
}

// MarginBuy places a margin buy order. A zero lendingRate accepts any
// rate.
func (p *Poloniex) MarginBuy(currencyPair string, rate, amount, lendingRate decimal.Decimal) (*OrderResponse, error) {
	return p.marginOrder(CommandMarginBuy, currencyPair, rate, amount, lendingRate)
}

// MarginSell places a margin sell order.
func (p *Poloniex) MarginSell(currencyPair string, rate, amount, lendingRate decimal.Decimal) (*OrderResponse, error) {
	return p.marginOrder(CommandMarginSell, currencyPair, rate, amount, lendingRate)
}

func (p *Poloniex) marginOrder(command, currencyPair string, rate, amount, lendingRate decimal.Decimal) (*OrderResponse, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	values.Set("rate", rate.String())
	values.Set("amount", amount.String())
	if !lendingRate.IsZero() {
		values.Set("lendingRate", lendingRate.String())
	}
	var result OrderResponse
	err := p.SendPrivate(command, values, &result)
	return &result, err
}

// MarginPosition returns the margin position of one market.
func (p *Poloniex) MarginPosition(currencyPair string) (*MarginPosition, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	var result MarginPosition
	err := p.SendPrivate(CommandMarginPosition, values, &result)
	return &result, err
}

// CloseMarginPosition closes the margin position of one market at
// market price.
func (p *Poloniex) CloseMarginPosition(currencyPair string) (bool, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	var res GenericResponse
	if err := p.SendPrivate(CommandCloseMarginPosition, values, &res); err != nil {
		return false, err
	}
	if res.Success != 1 {
		return false, errors.New(res.Error)
	}
	return true, nil
}

// CreateLoanOffer places a loan offer and returns its order id.
// duration is in days.
func (p *Poloniex) CreateLoanOffer(currency string, amount, lendingRate decimal.Decimal, duration int, autoRenew bool) (int64, error) {
	values := url.Values{}
	values.Set("currency", currency)
	values.Set("amount", amount.String())
	values.Set("duration", strconv.Itoa(duration))
	values.Set("lendingRate", lendingRate.String())
	if autoRenew {
		values.Set("autoRenew", "1")
	} else {
		values.Set("autoRenew", "0")
	}
	var res CreateLoanOfferResponse
	if err := p.SendPrivate(CommandCreateLoanOffer, values, &res); err != nil {
		return 0, err
	}
	if res.Success != 1 {
		return 0, errors.New(res.Error)
	}
	return res.OrderID, nil
}

// CancelLoanOffer cancels a loan offer by order id.
func (p *Poloniex) CancelLoanOffer(orderID int64) (bool, error) {
	values := url.Values{}
	values.Set("orderNumber", strconv.FormatInt(orderID, 10))
	var res GenericResponse
	if err := p.SendPrivate(CommandCancelLoanOffer, values, &res); err != nil {
		return false, err
	}
	if res.Success != 1 {
		return false, errors.New(res.Error)
	}
	return true, nil
}

// OpenLoanOffers returns the account's open loan offers per currency.
func (p *Poloniex) OpenLoanOffers() (map[string][]LoanOffer, error) {
	var result map[string][]LoanOffer
	err := p.SendPrivate(CommandOpenLoanOffers, nil, &result)
	return result, err
}

// ActiveLoans returns loans provided and used by the account.
func (p *Poloniex) ActiveLoans() (*ActiveLoans, error) {
	var result ActiveLoans
	err := p.SendPrivate(CommandActiveLoans, nil, &result)
	return &result, err
}

// LendingHistory returns settled loans between start and end, unix
// seconds; 0 means unset.
func (p *Poloniex) LendingHistory(start, end int64) ([]LendingHistory, error) {
	values := url.Values{}
	if start > 0 {
		values.Set("start", strconv.FormatInt(start, 10))
	}
	if end > 0 {
		values.Set("end", strconv.FormatInt(end, 10))
	}
	var result []LendingHistory
	err := p.SendPrivate(CommandLendingHistory, values, &result)
	return result, err
}

// ToggleAutoRenew flips the auto-renew switch of an active loan.
func (p *Poloniex) ToggleAutoRenew(orderNumber uint64) (bool, error) {
	values := url.Values{}
	values.Set("orderNumber", strconv.FormatUint(orderNumber, 10))
	var res GenericResponse
	if err := p.SendPrivate(CommandToggleAutoRenew, values, &res); err != nil {
		return false, err
	}
	if res.Success != 1 {
		return false, errors.New(res.Error)
	}
	return true, nil
}
