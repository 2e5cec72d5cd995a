package store

import (
	"encoding/json"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/azozal-iraqi/Skystore/models"
)

// Products returns the whole catalog in creation order.
func (s *Store) Products() ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).ForEach(func(_, v []byte) error {
			var p models.Product
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			products = append(products, p)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

// CreateProduct assigns the product a fresh id and stores it.
func (s *Store) CreateProduct(p *models.Product) error {
	p.ID = s.NextID()
	err := s.db.Update(func(tx *bolt.Tx) error {
		buf, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketProducts).Put(itob(p.ID), buf)
	})
	return errors.Wrap(err, "create product")
}

// DeleteProduct removes a product by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteProduct(id int64) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).Delete(itob(id))
	})
	return errors.Wrap(err, "delete product")
}
