// Package storetest has store doubles shared by package tests.
package storetest

import (
	"context"
	"errors"
	"sync"

	"github.com/DhavalSuthar-24/crickethub/internal/store"
)

var ErrUnavailable = errors.New("store unavailable")

// Flaky wraps a store and fails every call while Down is set.
type Flaky struct {
	store.Store

	mu   sync.Mutex
	down bool
	gets int
}

func NewFlaky(inner store.Store) *Flaky {
	return &Flaky{Store: inner}
}

func (f *Flaky) SetDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

// Gets counts Get calls, failed ones included.
func (f *Flaky) Gets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets
}

func (f *Flaky) isDown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.down
}

func (f *Flaky) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	f.gets++
	down := f.down
	f.mu.Unlock()
	if down {
		return nil, ErrUnavailable
	}
	return f.Store.Get(ctx, key)
}

func (f *Flaky) Set(ctx context.Context, key string, value []byte) error {
	if f.isDown() {
		return ErrUnavailable
	}
	return f.Store.Set(ctx, key, value)
}

func (f *Flaky) Delete(ctx context.Context, key string) error {
	if f.isDown() {
		return ErrUnavailable
	}
	return f.Store.Delete(ctx, key)
}
