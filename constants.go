package main

// Period types
const (
	monthlyPeriodType = "month"
	annualPeriodType  = "year"
)

const standardMargin = 2

// Session states
type sessionState int

const (
	overviewState sessionState = iota
	transactions
	newTransaction
	editTransaction
	configView
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case overviewState:
		return "overview"
	case transactions:
		return "transactions"
	case newTransaction:
		return "new transaction"
	case editTransaction:
		return "edit transaction"
	case configView:
		return "configuration"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
