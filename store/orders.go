package store

import (
	"encoding/json"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/azozal-iraqi/Skystore/models"
)

// Orders returns the order log, most recent first.
func (s *Store) Orders() ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketOrders).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var o models.Order
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

// SubmitOrder decrements stock for the referenced products and appends the
// order, all in one transaction. A product id that does not exist, or whose
// stock is already zero, is skipped without error. The order gets a fresh id
// before the write; stock never goes below zero.
func (s *Store) SubmitOrder(o *models.Order, productIDs []int64) error {
	o.ID = s.NextID()
	err := s.db.Update(func(tx *bolt.Tx) error {
		products := tx.Bucket(bucketProducts)
		for _, id := range productIDs {
			key := itob(id)
			raw := products.Get(key)
			if raw == nil {
				continue
			}
			var p models.Product
			if err := json.Unmarshal(raw, &p); err != nil {
				return err
			}
			if p.Stock <= 0 {
				continue
			}
			p.Stock--
			buf, err := json.Marshal(&p)
			if err != nil {
				return err
			}
			if err := products.Put(key, buf); err != nil {
				return err
			}
		}

		buf, err := json.Marshal(o)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketOrders).Put(itob(o.ID), buf)
	})
	return errors.Wrap(err, "submit order")
}
