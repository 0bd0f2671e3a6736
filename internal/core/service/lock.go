package service

import (
	"context"
	"sync"
)

// HotelLocker serializes booking admission per hotel, closing the
// check-then-act window between the availability read and the insert.
// Acquire blocks until the hotel's lock is held or ctx is done; the returned
// function releases it.
type HotelLocker interface {
	Acquire(ctx context.Context, hotelID string) (release func(), err error)
}

// KeyedMutex is an in-process HotelLocker backed by one mutex per hotel id.
// Suitable for single-instance deployments and tests; multi-instance
// deployments use the Redis lock instead.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyedMutex) Acquire(_ context.Context, hotelID string) (func(), error) {
	k.mu.Lock()
	l, ok := k.locks[hotelID]
	if !ok {
		l = &sync.Mutex{}
		k.locks[hotelID] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock, nil
}
