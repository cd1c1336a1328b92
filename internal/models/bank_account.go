package models

import "time"

// BankAccount is the single persisted entity. Name and Balance are
// pointers so a merge-patch body can distinguish "absent" from "zero".
type BankAccount struct {
	ID        string    `json:"id,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Balance   *float64  `json:"balance,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyPatch copies only the fields present in patch onto a. Fields
// left unset in the patch keep their stored values.
func (a *BankAccount) ApplyPatch(patch BankAccount) {
	if patch.Name != nil {
		a.Name = patch.Name
	}
	if patch.Balance != nil {
		a.Balance = patch.Balance
	}
}
