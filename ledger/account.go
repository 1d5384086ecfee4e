package ledger

import "encoding/json"

// Account is a named balance holder. Its fields are only mutated by the
// owning Book; callers read them through the accessors.
type Account struct {
	name    string
	balance int64
}

// Name returns the identifier the account was created with.
func (a *Account) Name() string {
	return a.name
}

// Balance returns the current balance in minor currency units.
func (a *Account) Balance() int64 {
	return a.balance
}

func (a *Account) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		Balance int64  `json:"balance"`
	}{Name: a.name, Balance: a.balance})
}
