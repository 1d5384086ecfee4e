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
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestValidateCreateAccount(t *testing.T) {
	tests := []struct {
		name    string
		account CreateAccount
		wantErr bool
	}{
		{
			name:    "Valid Account",
			account: CreateAccount{AccountName: "savings"},
			wantErr: false,
		},
		{
			name:    "Invalid Account - Empty Name",
			account: CreateAccount{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.ValidateCreateAccount()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRecordEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   RecordEntry
		wantErr bool
	}{
		{
			name:    "Valid Entry",
			entry:   RecordEntry{Amount: int64Ptr(42)},
			wantErr: false,
		},
		{
			name:    "Zero Amount Allowed",
			entry:   RecordEntry{Amount: int64Ptr(0)},
			wantErr: false,
		},
		{
			name:    "Negative Amount Allowed",
			entry:   RecordEntry{Amount: int64Ptr(-5)},
			wantErr: false,
		},
		{
			name:    "Missing Amount",
			entry:   RecordEntry{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.ValidateRecordEntry()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
