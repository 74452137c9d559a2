package models

import "github.com/shopspring/decimal"

func init() {
	// prices are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}
