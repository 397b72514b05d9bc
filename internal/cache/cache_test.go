package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)

	if got := c.Get("key"); got != "value" {
		t.Errorf("Get() = %v, want value", got)
	}
	if got := c.Get("other"); got != nil {
		t.Errorf("Get() on missing key = %v, want nil", got)
	}
}

func TestExpiry(t *testing.T) {
	c := New()
	c.Set("key", "value", -time.Second)

	if got := c.Get("key"); got != nil {
		t.Errorf("Get() on expired key = %v, want nil", got)
	}
}

func TestDelete(t *testing.T) {
	c := New()
	c.SetSlow("key", 42)
	c.Delete("key")

	if got := c.Get("key"); got != nil {
		t.Errorf("Get() after Delete() = %v, want nil", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.SetStatic("a", 1)
	c.SetFast("b", 2)
	c.Clear()

	if c.Get("a") != nil || c.Get("b") != nil {
		t.Error("Clear() did not remove all entries")
	}
}
