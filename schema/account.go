package schema

import (
	"time"
)

// Account is the identity row backing a member. Credentials live here; the
// member profile itself is a mongo document keyed by MemberID.
type Account struct {
	AccountNumber  string    `json:"account_number" gorm:"primary_key"`
	Email          string    `json:"email" gorm:"unique_index"`
	PasswordDigest string    `json:"-"`
	MemberID       string    `json:"member_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
