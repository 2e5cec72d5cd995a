// Package store persists the catalog, order log and slider on an embedded
// bbolt database. Every read-modify-write runs inside a single bolt
// transaction, so concurrent submissions cannot lose stock decrements.
package store

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketProducts = []byte("products")
	bucketOrders   = []byte("orders")
	bucketSlider   = []byte("slider")

	// the slider is a single ordered JSON array under one key
	sliderKey = []byte("images")
)

// Store wraps the bolt database and the snowflake node used for id
// generation. Snowflake ids are wall-clock derived and time-ordered, so
// keying records by id keeps bucket iteration in creation order.
type Store struct {
	db   *bolt.DB
	node *snowflake.Node
}

// Open creates dataDir if needed and opens (or creates) the database file
// inside it.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}

	db, err := bolt.Open(filepath.Join(dataDir, "skystore.db"), 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketProducts, bucketOrders, bucketSlider} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create buckets")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "snowflake node")
	}

	return &Store{db: db, node: node}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// NextID returns a fresh unique id. Ids are monotonic per process.
func (s *Store) NextID() int64 { return s.node.Generate().Int64() }

func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}
