package storage

import (
	"errors"
	"fmt"
	"strings"
)

/*
Namespaced is a view of another Storage restricted to keys starting with a prefix.

Keys passed in and returned are unprefixed. Clear only removes keys under the
prefix, so other data sharing the underlying store survives a cache wipe.
*/
type Namespaced struct {
	inner  Storage
	prefix string
}

// NewNamespaced returns a view of inner scoped to prefix.
func NewNamespaced(inner Storage, prefix string) *Namespaced {
	return &Namespaced{inner: inner, prefix: prefix}
}

// Prefix returns the namespace prefix.
func (n *Namespaced) Prefix() string {
	return n.prefix
}

func (n *Namespaced) GetItem(key string) (string, bool, error) {
	return n.inner.GetItem(n.prefix + key)
}

func (n *Namespaced) SetItem(key, value string) error {
	return n.inner.SetItem(n.prefix+key, value)
}

func (n *Namespaced) RemoveItem(key string) error {
	return n.inner.RemoveItem(n.prefix + key)
}

func (n *Namespaced) Keys() ([]string, error) {
	all, err := n.inner.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(all))
	for _, k := range all {
		if rest, ok := strings.CutPrefix(k, n.prefix); ok {
			keys = append(keys, rest)
		}
	}
	return keys, nil
}

// Clear removes every key under the prefix. It keeps going after a failed delete.
func (n *Namespaced) Clear() error {
	keys, err := n.Keys()
	if err != nil {
		return fmt.Errorf("list namespace %q: %w", n.prefix, err)
	}
	var errs []error
	for _, k := range keys {
		if err := n.inner.RemoveItem(n.prefix + k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
