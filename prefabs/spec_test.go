package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Title != "astroblasto" {
		t.Fatalf("unexpected title %q", spec.Title)
	}
	if spec.Width <= 0 || spec.Height <= 0 || spec.TPS <= 0 {
		t.Fatalf("unexpected window spec %+v", spec)
	}
	if spec.ClearColor.Color != (color.NRGBA{A: 255}) {
		t.Fatalf("expected opaque black clear colour, got %v", spec.ClearColor.Color)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{"#000000", color.NRGBA{A: 255}, false},
		{"ff8000", color.NRGBA{R: 255, G: 128, A: 255}, false},
		{" #10203040 ", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"#fff", nil, true},
		{"#gg0000", nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %v, got %v err=%v", c.want, got, err)
			}
		})
	}
}

func TestLoadPrefersDiskOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	override := "title: override\nwidth: 10\nheight: 20\ntps: 30\n"
	if err := os.WriteFile(filepath.Join(dir, Dir, "game.yaml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Title != "override" || spec.Width != 10 || spec.ClearColor.Color != color.Black {
		t.Fatalf("expected disk override, got %+v", spec)
	}

	// not on disk: falls back to the embedded copy
	if _, err := LoadEntityBuildSpec("prefabs/player.yaml"); err != nil {
		t.Fatalf("expected embedded fallback, got %v", err)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	if _, err := LoadSpec[GameSpec]("missing.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	got, err := DecodeComponentSpec[ProjectileComponentSpec](map[string]any{"speed": 500, "ttl_seconds": 1.5})
	if err != nil {
		t.Fatal(err)
	}
	if got.Speed != 500 || got.TTLSeconds != 1.5 {
		t.Fatalf("unexpected decode %+v", got)
	}
	zero, err := DecodeComponentSpec[ProjectileComponentSpec](nil)
	if err != nil || zero != (ProjectileComponentSpec{}) {
		t.Fatalf("expected zero value for nil, got %+v err=%v", zero, err)
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("name: p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name != "player.yaml" {
				t.Fatalf("unexpected event for %q", name)
			}
			return
		case <-deadline:
			t.Fatalf("timed out waiting for player.yaml event")
		}
	}
}

func TestWatcherDrainDeduplicates(t *testing.T) {
	w := &Watcher{Events: make(chan string, 4)}
	w.Events <- "a.yaml"
	w.Events <- "b.yaml"
	w.Events <- "a.yaml"

	got := w.Drain()
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "b.yaml" {
		t.Fatalf("unexpected drain %v", got)
	}
	if again := w.Drain(); len(again) != 0 {
		t.Fatalf("expected empty second drain, got %v", again)
	}
}
