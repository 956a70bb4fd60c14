package kv

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/alexgaaranes/PJDSC-25/pkg/engine/reachability"
	"github.com/alexgaaranes/PJDSC-25/pkg/engine/routingalgorithm"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

var (
	ErrNotFound = errors.New("cache entry not found")
)

const (
	routePrefix        = "route:"
	reachabilityPrefix = "unreachable:"
)

// KVDB caches analytics responses keyed by a hash of the request body. Entries expire
// after ttl.
type KVDB struct {
	db  *badger.DB
	ttl time.Duration
	log *zap.Logger
}

func NewKVDB(db *badger.DB, ttl time.Duration, log *zap.Logger) *KVDB {
	return &KVDB{db: db, ttl: ttl, log: log}
}

// OpenKVDB opens (or creates) a badger database in dir. An empty dir gives an
// in memory database.
func OpenKVDB(dir string, ttl time.Duration, log *zap.Logger) (*KVDB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", dir, err)
	}
	return NewKVDB(db, ttl, log), nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}

// RequestKey hashes a request body into a fixed size cache key.
func RequestKey(body []byte) uint64 {
	return xxhash.Sum64(body)
}

func makeKey(prefix string, key uint64) []byte {
	bb := make([]byte, len(prefix)+8)
	copy(bb, prefix)
	binary.BigEndian.PutUint64(bb[len(prefix):], key)
	return bb
}

func (k *KVDB) set(ctx context.Context, key, val []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return k.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key, val)
		if k.ttl > 0 {
			entry = entry.WithTTL(k.ttl)
		}
		return txn.SetEntry(entry)
	})
}

func (k *KVDB) get(ctx context.Context, key []byte) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var val []byte
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return val, err
}

func (k *KVDB) SaveRoute(ctx context.Context, key uint64, route routingalgorithm.Route) error {
	val, err := encodeRoute(route)
	if err != nil {
		return err
	}
	if err := k.set(ctx, makeKey(routePrefix, key), val); err != nil {
		return err
	}
	k.log.Debug("cached route", zap.Uint64("key", key), zap.Int("bytes", len(val)))
	return nil
}

func (k *KVDB) GetRoute(ctx context.Context, key uint64) (routingalgorithm.Route, error) {
	val, err := k.get(ctx, makeKey(routePrefix, key))
	if err != nil {
		return routingalgorithm.Route{}, err
	}
	return decodeRoute(val)
}

func (k *KVDB) SaveReachability(ctx context.Context, key uint64, report reachability.Report) error {
	val, err := encodeReport(report)
	if err != nil {
		return err
	}
	if err := k.set(ctx, makeKey(reachabilityPrefix, key), val); err != nil {
		return err
	}
	k.log.Debug("cached reachability report", zap.Uint64("key", key), zap.Int("bytes", len(val)))
	return nil
}

func (k *KVDB) GetReachability(ctx context.Context, key uint64) (reachability.Report, error) {
	val, err := k.get(ctx, makeKey(reachabilityPrefix, key))
	if err != nil {
		return reachability.Report{}, err
	}
	return decodeReport(val)
}
