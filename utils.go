package poloniex

import (
	"strconv"

	"github.com/pkg/errors"
)

func errUnknownPair(currencyPair string) error {
	return errors.Errorf("unknown currency pair %q", currencyPair)
}

// book entries arrive as ["0.00001853", 527.14]; price is a string,
// amount a number
func parseBookEntry(entry [2]interface{}) (item OrderBookItem, err error) {
	price, ok := entry[0].(string)
	if !ok {
		return item, errors.Errorf("order book price is %T, want string", entry[0])
	}
	item.Price, err = strconv.ParseFloat(price, 64)
	if err != nil {
		return item, errors.Wrap(err, "parse order book price")
	}
	amount, ok := entry[1].(float64)
	if !ok {
		return item, errors.Errorf("order book amount is %T, want number", entry[1])
	}
	item.Amount = amount
	return item, nil
}

func parseOrderBook(raw *rawOrderBook) (*OrderBook, error) {
	book := &OrderBook{
		IsFrozen: raw.IsFrozen != "0",
		Seq:      raw.Seq,
	}
	for _, entry := range raw.Asks {
		item, err := parseBookEntry(entry)
		if err != nil {
			return nil, err
		}
		book.Asks = append(book.Asks, item)
	}
	for _, entry := range raw.Bids {
		item, err := parseBookEntry(entry)
		if err != nil {
			return nil, err
		}
		book.Bids = append(book.Bids, item)
	}
	return book, nil
}
