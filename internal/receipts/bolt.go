// Package receipts keeps a local ledger of payments that passed signature verification.
// The gateway stays authoritative; the ledger only records what this service confirmed.
package receipts

import (
	"encoding/json"
	"errors"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/GlebRadaev/knowledgebuddy/internal/domain"
)

const bucketName = "verified_payments"

var ErrNotFound = errors.New("receipt not found")

type Store struct {
	db  *bolt.DB
	now func() time.Time
}

func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(paymentID string) (*domain.Receipt, error) {
	var r domain.Receipt

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(paymentID))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &r)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Record stores the payment the first time it is verified. Later calls keep the original
// VerifiedAt, refresh the payment snapshot and bump Attempts. created is true only for the
// first call.
func (s *Store) Record(p domain.Payment) (receipt *domain.Receipt, created bool, err error) {
	var result domain.Receipt

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		if existing := b.Get([]byte(p.ID)); existing != nil {
			if err := json.Unmarshal(existing, &result); err != nil {
				return err
			}
			result.Payment = p
			result.Attempts++
		} else {
			result = domain.Receipt{Payment: p, VerifiedAt: s.now().UTC(), Attempts: 1}
			created = true
		}

		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		return b.Put([]byte(p.ID), data)
	})
	if err != nil {
		return nil, false, err
	}
	return &result, created, nil
}

func (s *Store) List() ([]domain.Receipt, error) {
	items := []domain.Receipt{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(_, v []byte) error {
			var r domain.Receipt
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}
			items = append(items, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
