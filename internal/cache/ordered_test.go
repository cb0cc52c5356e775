package cache

import (
	"slices"
	"testing"
)

func TestLRUGetPromotes(t *testing.T) {
	c := NewLRU[rune, int]()
	c.Put('a', 1)
	c.Put('b', 2)
	c.Put('c', 3)

	if got := c.Keys(); !slices.Equal(got, []rune{'c', 'b', 'a'}) {
		t.Fatalf("Keys() = %q, want cba", got)
	}

	v, ok := c.Get('a')
	if !ok || v != 1 {
		t.Fatalf("Get('a') = %d, %v; want 1, true", v, ok)
	}
	if got := c.Keys(); !slices.Equal(got, []rune{'a', 'c', 'b'}) {
		t.Fatalf("Keys() after Get = %q, want acb", got)
	}
}

func TestLRUPeekDoesNotPromote(t *testing.T) {
	c := NewLRU[rune, int]()
	c.Put('a', 1)
	c.Put('b', 2)

	if _, ok := c.Peek('a'); !ok {
		t.Fatal("Peek('a') should find entry")
	}
	k, _, ok := c.Oldest()
	if !ok || k != 'a' {
		t.Errorf("Oldest() = %q, want 'a'", k)
	}
}

func TestLRURemoveOldest(t *testing.T) {
	c := NewLRU[string, int]()
	for i, k := range []string{"x", "y", "z"} {
		c.Put(k, i)
	}
	c.Get("x")

	tests := []string{"y", "z", "x"}
	for _, want := range tests {
		k, _, ok := c.RemoveOldest()
		if !ok {
			t.Fatalf("RemoveOldest() returned false, want %q", want)
		}
		if k != want {
			t.Errorf("RemoveOldest() = %q, want %q", k, want)
		}
	}

	if _, _, ok := c.RemoveOldest(); ok {
		t.Error("RemoveOldest() on empty map should return false")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestLRUPutReplaces(t *testing.T) {
	c := NewLRU[int, string]()
	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(1, "uno")

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	v, _ := c.Peek(1)
	if v != "uno" {
		t.Errorf("Peek(1) = %q, want uno", v)
	}
	k, _, _ := c.Oldest()
	if k != 2 {
		t.Errorf("Oldest() = %d, want 2", k)
	}
}

func TestLRURemove(t *testing.T) {
	c := NewLRU[int, int]()
	c.Put(1, 10)
	c.Put(2, 20)
	c.Put(3, 30)

	if v, ok := c.Remove(2); !ok || v != 20 {
		t.Fatalf("Remove(2) = %d, %v", v, ok)
	}
	if _, ok := c.Remove(2); ok {
		t.Error("second Remove(2) should fail")
	}
	if c.Contains(2) {
		t.Error("Contains(2) after removal")
	}
	if got := c.Keys(); !slices.Equal(got, []int{3, 1}) {
		t.Errorf("Keys() = %v, want [3 1]", got)
	}

	c.Clear()
	if c.Len() != 0 || len(c.Keys()) != 0 {
		t.Error("Clear() left entries behind")
	}
}
