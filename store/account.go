package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kizuna-community/kizuna-api/schema"
)

var (
	ErrAccountTaken = fmt.Errorf("an account with this email already exists")
)

// CreateAccount registers a credential row for a new member.
func (s *KizunaStore) CreateAccount(email, passwordDigest, memberID string) (*schema.Account, error) {
	a := schema.Account{
		AccountNumber:  uuid.New().String(),
		Email:          email,
		PasswordDigest: passwordDigest,
		MemberID:       memberID,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccountByEmail returns the account registered with an email. Login
// verifies the password digest against this row.
func (s *KizunaStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAccount removes an account from our system permanently
func (s *KizunaStore) DeleteAccount(accountNumber string) error {
	return s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error
}
