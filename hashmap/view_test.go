package hashmap_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/chainmap/hashmap"
)

func TestBytesHashMatchesString(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "Grimms' Fairy Tales"} {
		qt.Assert(t, qt.Equals(hashmap.Bytes(s).Hash(), hashmap.Hash(s)))
	}
}

func TestBytesView(t *testing.T) {
	m := hashmap.New[string, int]()
	m.Insert("hello", 1)
	m.Insert("world", 2)

	v, ok := hashmap.GetView(m, hashmap.Bytes("hello"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 1))
	qt.Assert(t, qt.IsTrue(hashmap.ContainsView(m, hashmap.Bytes("world"))))
	qt.Assert(t, qt.IsFalse(hashmap.ContainsView(m, hashmap.Bytes("absent"))))

	v, ok = hashmap.RemoveView(m, hashmap.Bytes("world"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 2))
	qt.Assert(t, qt.IsFalse(m.ContainsKey("world")))
	qt.Assert(t, qt.Equals(m.Len(), 1))

	_, ok = hashmap.RemoveView(m, hashmap.Bytes("world"))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestBytesViewOnEmptyMap(t *testing.T) {
	m := hashmap.New[string, int]()
	_, ok := hashmap.GetView(m, hashmap.Bytes("x"))
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = hashmap.RemoveView(m, hashmap.Bytes("x"))
	qt.Assert(t, qt.IsFalse(ok))
}

func TestOwnedView(t *testing.T) {
	m := hashmap.New[int64, string]()
	m.Insert(-7, "neg")
	v, ok := hashmap.GetView(m, hashmap.Owned[int64]{Key: -7})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, "neg"))
}

// caseless is a view of a lower-case string key that matches
// regardless of case.
type caseless string

func (c caseless) lower() string {
	b := []byte(c)
	for i, x := range b {
		if 'A' <= x && x <= 'Z' {
			b[i] = x + 'a' - 'A'
		}
	}
	return string(b)
}

func (c caseless) Hash() uint64 {
	return hashmap.Hash(c.lower())
}

func (c caseless) Matches(k string) bool {
	return c.lower() == k
}

func TestCustomView(t *testing.T) {
	m := hashmap.New[string, int]()
	for i, k := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		m.Insert(k, i)
	}
	v, ok := hashmap.GetView(m, caseless("GaMmA"))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 2))
	qt.Assert(t, qt.IsFalse(hashmap.ContainsView(m, caseless("ZETA"))))
}

func TestHashIntegerWidths(t *testing.T) {
	// Equal values of different integer types share an encoding.
	qt.Assert(t, qt.Equals(hashmap.Hash(int8(5)), hashmap.Hash(uint64(5))))
	qt.Assert(t, qt.Equals(hashmap.Hash(int32(-1)), hashmap.Hash(int64(-1))))
	qt.Assert(t, qt.Not(qt.Equals(hashmap.Hash(1), hashmap.Hash(2))))
}

func TestHashIsStable(t *testing.T) {
	type key struct {
		a string
		b int
	}
	qt.Assert(t, qt.Equals(hashmap.Hash(key{"x", 1}), hashmap.Hash(key{"x", 1})))
	qt.Assert(t, qt.Equals(hashmap.Hash("abc"), hashmap.Hash("abc")))
}
