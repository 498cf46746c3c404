package store

import (
	"errors"
	"slices"
	"testing"

	"github.com/RedisLabsModules/RedisDoc/doc"
	"github.com/RedisLabsModules/RedisDoc/format"
)

func mustDoc(t *testing.T, src string) *doc.Document {
	t.Helper()
	d, err := doc.FromPayload([]byte(src), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestStore_UpdateView(t *testing.T) {
	s := New()

	// absent key is handed over as nil
	err := s.View("k", func(d *doc.Document) error {
		if d != nil {
			t.Error("expected nil for an absent key")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := mustDoc(t, `{"a":1}`)
	if err := s.Update("k", func(d *doc.Document) (*doc.Document, error) {
		if d != nil {
			t.Error("expected nil for an absent key")
		}
		return want, nil
	}); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	err = s.View("k", func(d *doc.Document) error {
		if d != want {
			t.Error("stored document differs")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStore_UpdateErrorKeepsState(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	if err := s.Update("k", func(*doc.Document) (*doc.Document, error) {
		return mustDoc(t, "1"), nil
	}); err != nil {
		t.Fatal(err)
	}
	err := s.Update("k", func(*doc.Document) (*doc.Document, error) {
		return nil, boom
	})
	if err != boom {
		t.Fatalf("got %v, want boom", err)
	}
	if s.Len() != 1 {
		t.Error("failed update removed the key")
	}
}

func TestStore_UpdateNilRemoves(t *testing.T) {
	s := New()
	s.Update("k", func(*doc.Document) (*doc.Document, error) {
		return mustDoc(t, "1"), nil
	})
	if err := s.Update("k", func(*doc.Document) (*doc.Document, error) {
		return nil, nil
	}); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Error("returning nil should remove the key")
	}
}

func TestStore_DeleteKeys(t *testing.T) {
	s := New()
	for _, k := range []string{"a", "b", "c"} {
		s.Update(k, func(*doc.Document) (*doc.Document, error) {
			return mustDoc(t, "1"), nil
		})
	}
	if !s.Delete("b") {
		t.Error("deleting a live key should report true")
	}
	if s.Delete("b") {
		t.Error("deleting an absent key should report false")
	}
	keys := s.Keys()
	slices.Sort(keys)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Keys = %v", keys)
	}
}
