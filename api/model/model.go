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
package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateAccount struct {
	AccountName string `json:"account_name"`
}

// RecordEntry is the body of a deposit or withdrawal request. Amount is a
// pointer so that an explicit zero or negative amount passes validation; the
// ledger does not constrain the sign of an amount.
type RecordEntry struct {
	Amount *int64 `json:"amount"`
}

func (a *CreateAccount) ValidateCreateAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.AccountName, validation.Required),
	)
}

func (e *RecordEntry) ValidateRecordEntry() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Amount, validation.NotNil),
	)
}
