package prefstore

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDiscountEnabled_DefaultTrue(t *testing.T) {
	s := openTemp(t)

	got, err := s.DiscountEnabled()
	if err != nil {
		t.Fatalf("DiscountEnabled: %v", err)
	}
	if !got {
		t.Error("unset preference should default to true")
	}
}

func TestDiscountEnabled_RoundTrip(t *testing.T) {
	s := openTemp(t)

	if err := s.SetDiscountEnabled(false); err != nil {
		t.Fatalf("SetDiscountEnabled(false): %v", err)
	}
	got, err := s.DiscountEnabled()
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("expected false after SetDiscountEnabled(false)")
	}

	if err := s.SetDiscountEnabled(true); err != nil {
		t.Fatalf("SetDiscountEnabled(true): %v", err)
	}
	got, err = s.DiscountEnabled()
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("expected true after SetDiscountEnabled(true)")
	}
}

func TestDiscountEnabled_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetDiscountEnabled(false); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, err := s2.DiscountEnabled()
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("preference did not survive reopen")
	}
}
