package poloniex

import (
	"net/url"
	"strconv"

	"github.com/xyths/hs/convert"
	"github.com/xyths/poloniex/exchange"
)

// Tickers returns the raw ticker for every market.
func (p *Poloniex) Tickers() (map[string]RawTicker, error) {
	var result map[string]RawTicker
	err := p.SendPublic(CommandTicker, nil, &result)
	return result, err
}

// Ticker returns the normalized ticker of one market.
func (p *Poloniex) Ticker(currencyPair string) (*exchange.Ticker, error) {
	tickers, err := p.Tickers()
	if err != nil {
		return nil, err
	}
	t, ok := tickers[currencyPair]
	if !ok {
		return nil, errUnknownPair(currencyPair)
	}
	return &exchange.Ticker{
		Last:          convert.StrToFloat64(t.Last),
		LowestAsk:     convert.StrToFloat64(t.LowestAsk),
		HighestBid:    convert.StrToFloat64(t.HighestBid),
		PercentChange: convert.StrToFloat64(t.PercentChange),
		BaseVolume:    convert.StrToFloat64(t.BaseVolume),
		QuoteVolume:   convert.StrToFloat64(t.QuoteVolume),
		High24hr:      convert.StrToFloat64(t.High24hr),
		Low24hr:       convert.StrToFloat64(t.Low24hr),
	}, nil
}

// Volume24h returns 24-hour volume per market, plus the totals the
// api appends alongside them.
func (p *Poloniex) Volume24h() (map[string]interface{}, error) {
	var result map[string]interface{}
	err := p.SendPublic(CommandVolume24h, nil, &result)
	return result, err
}

// OrderBook returns the book of one market. depth 0 means the server
// default.
func (p *Poloniex) OrderBook(currencyPair string, depth int) (*OrderBook, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	if depth > 0 {
		values.Set("depth", strconv.Itoa(depth))
	}
	var raw rawOrderBook
	if err := p.SendPublic(CommandOrderBook, values, &raw); err != nil {
		return nil, err
	}
	return parseOrderBook(&raw)
}

// OrderBooks returns the books of all markets.
func (p *Poloniex) OrderBooks(depth int) (map[string]*OrderBook, error) {
	values := url.Values{}
	values.Set("currencyPair", "all")
	if depth > 0 {
		values.Set("depth", strconv.Itoa(depth))
	}
	var raw map[string]rawOrderBook
	if err := p.SendPublic(CommandOrderBook, values, &raw); err != nil {
		return nil, err
	}
	books := make(map[string]*OrderBook, len(raw))
	for pair, r := range raw {
		book, err := parseOrderBook(&r)
		if err != nil {
			return nil, err
		}
		books[pair] = book
	}
	return books, nil
}

// TradeHistory returns public trades of one market. start and end are
// unix seconds; 0 means unset.
func (p *Poloniex) TradeHistory(currencyPair string, start, end int64) ([]RawPublicTrade, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	if start > 0 {
		values.Set("start", strconv.FormatInt(start, 10))
	}
	if end > 0 {
		values.Set("end", strconv.FormatInt(end, 10))
	}
	var result []RawPublicTrade
	err := p.SendPublic(CommandTradeHistory, values, &result)
	return result, err
}

// Candles returns normalized candles. period is one of the Period
// constants, in seconds.
func (p *Poloniex) Candles(currencyPair string, period int, start, end int64) ([]exchange.Candle, error) {
	values := url.Values{}
	values.Set("currencyPair", currencyPair)
	values.Set("period", strconv.Itoa(period))
	if start > 0 {
		values.Set("start", strconv.FormatInt(start, 10))
	}
	if end > 0 {
		values.Set("end", strconv.FormatInt(end, 10))
	}
	var raw []RawCandle
	if err := p.SendPublic(CommandChartData, values, &raw); err != nil {
		return nil, err
	}
	var candles []exchange.Candle
	for _, c := range raw {
		candles = append(candles, exchange.Candle{
			Timestamp: uint64(c.Date),
			Open:      c.Open,
			Close:     c.Close,
			High:      c.High,
			Low:       c.Low,
			Volume:    c.Volume,
		})
	}
	return candles, nil
}

// Currencies returns information about all listed currencies.
func (p *Poloniex) Currencies() (map[string]RawCurrency, error) {
	var result map[string]RawCurrency
	err := p.SendPublic(CommandCurrencies, nil, &result)
	return result, err
}

// LoanOrders returns the public loan offers and demands of a currency.
func (p *Poloniex) LoanOrders(currency string) (*LoanOrders, error) {
	values := url.Values{}
	values.Set("currency", currency)
	var result LoanOrders
	err := p.SendPublic(CommandLoanOrders, values, &result)
	return &result, err
}
