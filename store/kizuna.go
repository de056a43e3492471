package store

import (
	"github.com/jinzhu/gorm"

	"github.com/kizuna-community/kizuna-api/schema"
)

// KizunaCore is the identity datastore backing registration and login.
// Member profiles and all community documents live in MongoStore; this
// store only holds credential rows.
type KizunaCore interface {
	Ping() error

	// Account
	CreateAccount(email, passwordDigest, memberID string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	DeleteAccount(accountNumber string) error
}

// KizunaStore is an implementation of KizunaCore
type KizunaStore struct {
	ormDB *gorm.DB
}

func NewKizunaStore(ormDB *gorm.DB) *KizunaStore {
	return &KizunaStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *KizunaStore) Ping() error {
	return s.ormDB.DB().Ping()
}
