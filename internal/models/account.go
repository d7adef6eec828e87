package models

// Account is a row of the accounts table.
type Account struct {
	ID              int64  `db:"id"`
	AccCode         string `db:"acc_code"`
	AccountName     string `db:"account_name"`
	ParentAccountID *int64 `db:"parent_account_id"` // Nullable
	AccountTypeID   int    `db:"account_type_id"`
	IsFinal         bool   `db:"is_final"`
	IsActive        bool   `db:"is_active"`
}
