package domain

// AccountClassification defines the fundamental accounting type of an account.
type AccountClassification string

const (
	Asset     AccountClassification = "ASSET"
	Liability AccountClassification = "LIABILITY"
	Equity    AccountClassification = "EQUITY"
	Revenue   AccountClassification = "REVENUE"
	Expense   AccountClassification = "EXPENSE"
)

// AccountSide is the side on which an account's balance normally increases.
type AccountSide string

const (
	DebitSide  AccountSide = "debit"
	CreditSide AccountSide = "credit"
)

// classificationByTypeID maps accounts.account_type_id to a classification.
var classificationByTypeID = map[int]AccountClassification{
	1: Asset,
	2: Liability,
	3: Equity,
	4: Revenue,
	5: Expense,
}

// ClassificationFromTypeID resolves a persisted account_type_id.
func ClassificationFromTypeID(typeID int) (AccountClassification, bool) {
	c, ok := classificationByTypeID[typeID]
	return c, ok
}

// NormalSide returns the side that increases accounts of this classification.
func (c AccountClassification) NormalSide() AccountSide {
	switch c {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Account represents a ledger account. Only final (leaf) accounts receive posted lines.
type Account struct {
	ID              int64                 `json:"id"`
	Code            string                `json:"accCode"`
	Name            string                `json:"accountName"`
	ParentAccountID *int64                `json:"parentAccountID,omitempty"`
	Classification  AccountClassification `json:"classification"`
	Side            AccountSide           `json:"side"`
	IsFinal         bool                  `json:"isFinal"`
	IsActive        bool                  `json:"isActive"`
}

// CanReceivePostings reports whether lines may be posted against the account.
func (a Account) CanReceivePostings() bool {
	return a.IsFinal && a.IsActive
}
