// Package hashmaptest provides qt checkers for hashmap.Map values.
package hashmaptest

import (
	"errors"
	"fmt"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/chainmap/hashmap"
)

// HasEntries returns a checker that checks that iterating over m
// yields exactly the entries in want, each once, and that m.Len
// agrees with the number of entries yielded. Values are compared
// with cmp.Equal.
//
// Missing, unexpected, duplicated and mismatched keys are added
// to the failure report as notes.
func HasEntries[K comparable, V any](m *hashmap.Map[K, V], want map[K]V) qt.Checker {
	return &entriesChecker[K, V]{
		m:    m,
		want: want,
	}
}

type entriesChecker[K comparable, V any] struct {
	m    *hashmap.Map[K, V]
	want map[K]V
}

// Check implements qt.Checker.Check.
func (c *entriesChecker[K, V]) Check(note func(key string, value any)) error {
	got := make(map[K]V)
	var (
		duplicate  []K
		unexpected []K
		missing    []K
		mismatched []K
	)
	n := 0
	for k, v := range c.m.All() {
		n++
		if _, ok := got[k]; ok {
			duplicate = append(duplicate, k)
			continue
		}
		got[k] = v
		wantv, ok := c.want[k]
		switch {
		case !ok:
			unexpected = append(unexpected, k)
		case !cmp.Equal(v, wantv):
			mismatched = append(mismatched, k)
		}
	}
	for k := range c.want {
		if _, ok := got[k]; !ok {
			missing = append(missing, k)
		}
	}
	var errs []error
	if len(duplicate) > 0 {
		note("duplicate keys", duplicate)
		errs = append(errs, errors.New("map yields duplicate keys"))
	}
	if len(unexpected) > 0 {
		note("unexpected keys", unexpected)
		errs = append(errs, errors.New("map has unexpected keys"))
	}
	if len(missing) > 0 {
		note("missing keys", missing)
		errs = append(errs, errors.New("map is missing keys"))
	}
	if len(mismatched) > 0 {
		note("mismatched keys", mismatched)
		errs = append(errs, errors.New("map has mismatched values"))
	}
	if l := c.m.Len(); l != n {
		errs = append(errs, fmt.Errorf("Len returns %d but iteration yields %d entries", l, n))
	}
	return errors.Join(errs...)
}

// Args implements qt.Checker.Args.
func (c *entriesChecker[K, V]) Args() []qt.Arg {
	return []qt.Arg{{
		Name:  "got",
		Value: mapOf(c.m),
	}, {
		Name:  "want",
		Value: c.want,
	}}
}

// mapOf returns the entries of m as a Go map, for display.
func mapOf[K comparable, V any](m *hashmap.Map[K, V]) map[K]V {
	r := make(map[K]V, m.Len())
	for k, v := range m.All() {
		r[k] = v
	}
	return r
}
