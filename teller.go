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
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/teller-ledger/teller/ledger"
)

// Teller represents the main struct for the Teller application: the service
// layer over a single ledger book. The book itself is synchronization-free,
// so the Teller serializes every operation behind one mutex to support
// concurrent callers such as the HTTP API.
type Teller struct {
	mu     sync.Mutex
	bookID string
	book   *ledger.Book
}

// NewTeller initializes a new Teller with an empty book.
func NewTeller() *Teller {
	return &Teller{
		bookID: generateBookID(),
		book:   ledger.NewBook(),
	}
}

// BookID returns the unique identifier assigned to this teller's book.
func (t *Teller) BookID() string {
	return t.bookID
}

// generateBookID generates a UUID with the book module as a suffix.
func generateBookID() string {
	return fmt.Sprintf("book_%s", uuid.New().String())
}
