package queries

import "github.com/shopspring/decimal"

type GetBalanceQuery struct {
	AccountNumber int64
}

type GetBalanceResult struct {
	AccountNumber int64
	Balance       decimal.Decimal
}
