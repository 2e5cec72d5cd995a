package store

import (
	"encoding/json"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// SliderImages returns the slider image paths in display order.
func (s *Store) SliderImages() ([]string, error) {
	images := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSlider).Get(sliderKey)
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &images)
	})
	if err != nil {
		return nil, errors.Wrap(err, "list slider images")
	}
	return images, nil
}

// AppendSliderImage adds an image path to the end of the slider.
func (s *Store) AppendSliderImage(path string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlider)
		images := []string{}
		if raw := b.Get(sliderKey); raw != nil {
			if err := json.Unmarshal(raw, &images); err != nil {
				return err
			}
		}
		images = append(images, path)
		buf, err := json.Marshal(images)
		if err != nil {
			return err
		}
		return b.Put(sliderKey, buf)
	})
	return errors.Wrap(err, "append slider image")
}

// RemoveSliderImage deletes the image at the given position. Out-of-range
// positions leave the slider unchanged.
func (s *Store) RemoveSliderImage(index int) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlider)
		images := []string{}
		if raw := b.Get(sliderKey); raw != nil {
			if err := json.Unmarshal(raw, &images); err != nil {
				return err
			}
		}
		if index < 0 || index >= len(images) {
			return nil
		}
		images = append(images[:index], images[index+1:]...)
		buf, err := json.Marshal(images)
		if err != nil {
			return err
		}
		return b.Put(sliderKey, buf)
	})
	return errors.Wrap(err, "remove slider image")
}
