package ledger

import "errors"

// ErrAccountNotFound is returned when a lookup by name matches no account.
var ErrAccountNotFound = errors.New("account not found")

// Book owns an ordered collection of accounts. Insertion order is preserved
// and observable. Names are not required to be unique; a lookup resolves to
// the first match in insertion order.
//
// A Book carries no synchronization of its own. Callers sharing a Book across
// goroutines must serialize access externally.
type Book struct {
	accounts []*Account
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{}
}

// AddAccount appends a new account with the given name and a zero balance.
// Duplicate names are permitted.
func (b *Book) AddAccount(name string) *Account {
	account := &Account{name: name}
	b.accounts = append(b.accounts, account)
	return account
}

// Accounts returns the accounts in insertion order. The returned slice is a
// copy; the accounts themselves stay read-only outside this package.
func (b *Book) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

// FindAccount resolves a name to the first account with an exactly equal
// name, or ErrAccountNotFound if none matches.
func (b *Book) FindAccount(name string) (*Account, error) {
	for _, account := range b.accounts {
		if account.name == name {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Deposit adds amount to the named account's balance.
func (b *Book) Deposit(name string, amount int64) (*Account, error) {
	account, err := b.FindAccount(name)
	if err != nil {
		return nil, err
	}
	account.balance += amount
	return account, nil
}

// Withdraw subtracts amount from the named account's balance. There is no
// overdraft guard; balances may go negative.
func (b *Book) Withdraw(name string, amount int64) (*Account, error) {
	account, err := b.FindAccount(name)
	if err != nil {
		return nil, err
	}
	account.balance -= amount
	return account, nil
}
