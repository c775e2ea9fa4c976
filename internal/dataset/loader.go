package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// cachedLoader memoises the result of load per file path.
type cachedLoader[T any] struct {
	cache *expirable.LRU[string, T]
	group singleflight.Group
	load  func(ctx context.Context, raw []byte) (T, error)
}

func newCachedLoader[T any](ttl time.Duration, load func(ctx context.Context, raw []byte) (T, error)) *cachedLoader[T] {
	return &cachedLoader[T]{
		cache: expirable.NewLRU[string, T](1, nil, ttl),
		load:  load,
	}
}

func (l *cachedLoader[T]) get(ctx context.Context, path string) (T, error) {
	if v, ok := l.cache.Get(path); ok {
		return v, nil
	}

	v, err, _ := l.group.Do(path, func() (any, error) {
		raw, err := readFile(path)
		if err != nil {
			return nil, err
		}
		parsed, err := l.load(ctx, raw)
		if err != nil {
			return nil, err
		}
		l.cache.Add(path, parsed)
		return parsed, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

func (l *cachedLoader[T]) purge() {
	l.cache.Purge()
}

func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return raw, nil
}
