package idgen

import "testing"

func TestNewSnowflake_InvalidNode(t *testing.T) {
	if _, err := NewSnowflake(5000); err == nil {
		t.Fatal("expected error for node outside 0-1023")
	}
}

func TestSnowflake_UniqueAndIncreasing(t *testing.T) {
	gen, err := NewSnowflake(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		if id <= 0 {
			t.Fatalf("expected positive id, got %d", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		if id <= prev {
			t.Fatalf("ids not increasing: %d after %d", id, prev)
		}
		seen[id] = true
		prev = id
	}
}
