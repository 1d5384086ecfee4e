/*
Copyright 2025 Teller Ledger Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package teller

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/teller-ledger/teller/ledger"
)

// CreateAccount adds a new account with a zero balance to the book.
func (t *Teller) CreateAccount(name string) *ledger.Account {
	t.mu.Lock()
	defer t.mu.Unlock()

	account := t.book.AddAccount(name)
	logrus.WithFields(logrus.Fields{
		"book_id": t.bookID,
		"account": name,
	}).Info("account created")
	return account
}

// GetAccounts returns all accounts in insertion order.
func (t *Teller) GetAccounts() []*ledger.Account {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.book.Accounts()
}

// GetAccount returns the first account with the given name.
func (t *Teller) GetAccount(name string) (*ledger.Account, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	account, err := t.book.FindAccount(name)
	if err != nil {
		return nil, errors.Wrapf(err, "get account %q", name)
	}
	return account, nil
}

// Deposit adds amount to the named account's balance.
func (t *Teller) Deposit(name string, amount int64) (*ledger.Account, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	account, err := t.book.Deposit(name, amount)
	if err != nil {
		return nil, errors.Wrapf(err, "deposit %d to %q", amount, name)
	}
	logrus.WithFields(logrus.Fields{
		"book_id": t.bookID,
		"account": name,
		"amount":  amount,
		"balance": account.Balance(),
	}).Info("deposit applied")
	return account, nil
}

// Withdraw subtracts amount from the named account's balance.
func (t *Teller) Withdraw(name string, amount int64) (*ledger.Account, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	account, err := t.book.Withdraw(name, amount)
	if err != nil {
		return nil, errors.Wrapf(err, "withdraw %d from %q", amount, name)
	}
	logrus.WithFields(logrus.Fields{
		"book_id": t.bookID,
		"account": name,
		"amount":  amount,
		"balance": account.Balance(),
	}).Info("withdrawal applied")
	return account, nil
}
