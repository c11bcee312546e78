package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocker struct {
	locked   []string
	unlocked int
	err      error
}

func (f *fakeLocker) Lock(_ context.Context, name string) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.locked = append(f.locked, name)
	return func() { f.unlocked++ }, nil
}

func TestWithLockUsesLocker(t *testing.T) {
	l := &fakeLocker{}
	called := false

	err := WithLock(context.Background(), l, LockCatalog, func() error {
		called = true
		assert.Equal(t, 0, l.unlocked, "fn must run while locked")
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []string{LockCatalog}, l.locked)
	assert.Equal(t, 1, l.unlocked)
}

func TestWithLockReleasesOnError(t *testing.T) {
	l := &fakeLocker{}
	boom := errors.New("boom")

	err := WithLock(context.Background(), l, LockCounter, func() error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, l.unlocked)
}

func TestWithLockPropagatesLockFailure(t *testing.T) {
	l := &fakeLocker{err: ErrLockTimeout}

	err := WithLock(context.Background(), l, LockCatalog, func() error {
		t.Fatal("fn must not run without the lock")
		return nil
	})

	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestWithLockWithoutLocker(t *testing.T) {
	called := false
	err := WithLock(context.Background(), struct{}{}, LockCatalog, func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
