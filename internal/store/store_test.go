package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"styleboard/internal/store"
	"styleboard/internal/style"
)

func TestOpenSeedsMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.json")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	rows := s.List()
	if len(rows) != 5 {
		t.Fatalf("expected 5 seeded rows, got %d", len(rows))
	}
	if rows[0].Name != style.BigDark {
		t.Fatalf("expected seed order to start with BigDark, got %q", rows[0].Name)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("seed file should exist: %v", err)
	}
}

func TestOpenReloadsExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.json")
	first, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	custom := style.Preset{
		Name:       "HugeDark",
		FontFace:   "Mono",
		FontSize:   28,
		Spacing:    8,
		TextColor:  "solarized-base0",
		BGInactive: "solarized-base03",
		BGActive:   "solarized-base2",
		FGInactive: "solarized-base1",
		FGActive:   "solarized-base01",
	}
	if err := first.Put(custom); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := second.Get("HugeDark")
	if err != nil {
		t.Fatalf("Get after reload: %v", err)
	}
	if got != custom {
		t.Fatalf("reloaded row mismatch:\n got=%+v\nwant=%+v", got, custom)
	}
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "styles.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Open(path); err == nil {
		t.Fatalf("expected error for corrupt table")
	}
}

func TestGetUnknownName(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	_, err := s.Get("nonexistent")
	if !errors.Is(err, style.ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestPutReplacesByName(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	edited, err := s.Get(style.SmallLight)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	edited.FontSize = 18

	if err := s.Put(edited); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if len(s.List()) != 5 {
		t.Fatalf("replace should not grow the table")
	}
	got, err := s.Get(style.SmallLight)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FontSize != 18 {
		t.Fatalf("expected replaced row, got size %d", got.FontSize)
	}
}

func TestPutRejectsInvalidPreset(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	err := s.Put(style.Preset{Name: "bad", FontFace: "Sans", FontSize: 0})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if s.Revision() != 0 {
		t.Fatalf("failed put should not bump revision")
	}
}

func TestDeleteAndReset(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	if err := s.Delete(style.BigDark); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(style.BigDark); !errors.Is(err, style.ErrPresetNotFound) {
		t.Fatalf("expected deleted row to be gone, got %v", err)
	}
	if err := s.Delete("nonexistent"); !errors.Is(err, style.ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(s.List()) != 5 {
		t.Fatalf("reset should restore 5 rows, got %d", len(s.List()))
	}
}

func TestRevisionAndSubscribe(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	events, cancel := s.Subscribe()
	defer cancel()

	if err := s.Delete(style.SmallDark); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	select {
	case event := <-events:
		if event.Revision != 1 {
			t.Fatalf("revision = %d, want 1", event.Revision)
		}
		if len(event.Names) != 4 {
			t.Fatalf("expected 4 remaining names, got %v", event.Names)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected a change event")
	}

	if s.Revision() != 1 {
		t.Fatalf("Revision() = %d, want 1", s.Revision())
	}
}

func TestConcurrentPut(t *testing.T) {
	t.Parallel()

	s := openTemp(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			preset := style.Default()
			preset.Name = "concurrent"
			_ = s.Put(preset)
		}()
	}
	wg.Wait()

	if len(s.List()) != 6 {
		t.Fatalf("expected one added row, got %d total", len(s.List()))
	}
}

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "styles.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}
