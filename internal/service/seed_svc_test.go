package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

func TestParseHandSigns(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"valid list", `["A", "B", "Hello"]`, []string{"A", "B", "Hello"}, false},
		{"trims entries", `[" A ", "B"]`, []string{"A", "B"}, false},
		{"drops blank entries", `["A", "", "  ", "B"]`, []string{"A", "B"}, false},
		{"empty array", `[]`, nil, true},
		{"all blank", `["", " "]`, nil, true},
		{"malformed json", `{"signs": ["A"]}`, nil, true},
		{"truncated", `["A",`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHandSigns([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSeedVideos(t *testing.T) {
	raw := `[
		{"id": "v1", "path": "videos/a.mp4", "correctSign": "A"},
		{"path": "videos/b.mp4", "correctSign": "B"}
	]`
	entries, err := ParseSeedVideos([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Key() != "v1" {
		t.Errorf("explicit id: Key() = %q, want %q", entries[0].Key(), "v1")
	}
	if entries[1].Key() != "videos/b.mp4" {
		t.Errorf("absent id falls back to path: Key() = %q, want %q", entries[1].Key(), "videos/b.mp4")
	}
}

func TestParseSeedVideos_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing path", `[{"id": "v1", "correctSign": "A"}]`},
		{"blank path", `[{"path": "  ", "correctSign": "A"}]`},
		{"malformed json", `{"videos": []}`},
		{"truncated", `[{"path": "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSeedVideos([]byte(tt.input)); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

type fakeHandSignStore struct {
	labels      map[string]struct{}
	insertCalls int
}

func (f *fakeHandSignStore) Count(context.Context) (int, error) { return len(f.labels), nil }

func (f *fakeHandSignStore) InsertBatch(_ context.Context, names []string) error {
	f.insertCalls++
	for _, n := range names {
		f.labels[n] = struct{}{}
	}
	return nil
}

type fakeVideoStore struct {
	videos map[string]model.SeedVideo
}

func (f *fakeVideoStore) Count(context.Context) (int, error) { return len(f.videos), nil }

func (f *fakeVideoStore) UpsertBatch(_ context.Context, entries []model.SeedVideo) (int, error) {
	inserted := 0
	for _, e := range entries {
		if _, ok := f.videos[e.Key()]; !ok {
			inserted++
		}
		f.videos[e.Key()] = e
	}
	return inserted, nil
}

type fakeLabelCache struct{ invalidations int }

func (f *fakeLabelCache) InvalidateHandSigns(context.Context) error {
	f.invalidations++
	return nil
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestSeedService_RunTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, handSignFile, `["A", "B"]`)
	writeSeedFile(t, dir, videoFile, `[
		{"path": "videos/a.mp4", "correctSign": "A"},
		{"path": "videos/b.mp4", "correctSign": "B"}
	]`)

	labels := &fakeHandSignStore{labels: make(map[string]struct{})}
	videos := &fakeVideoStore{videos: make(map[string]model.SeedVideo)}
	cache := &fakeLabelCache{}
	svc := NewSeedService(dir, labels, videos, cache)

	svc.Run(context.Background())
	svc.Run(context.Background())

	if len(labels.labels) != 2 {
		t.Errorf("label count = %d after two runs, want 2", len(labels.labels))
	}
	if labels.insertCalls != 1 {
		t.Errorf("labels loaded %d times, want once (a non-empty table is skipped)", labels.insertCalls)
	}
	if len(videos.videos) != 2 {
		t.Errorf("video count = %d after two runs, want 2", len(videos.videos))
	}
	if cache.invalidations != 1 {
		t.Errorf("label cache invalidated %d times, want once (only when labels were loaded)", cache.invalidations)
	}
}

func TestSeedService_UpdatesVideosInPlace(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, handSignFile, `["A"]`)
	writeSeedFile(t, dir, videoFile, `[{"path": "videos/a.mp4", "correctSign": "A"}]`)

	labels := &fakeHandSignStore{labels: make(map[string]struct{})}
	videos := &fakeVideoStore{videos: make(map[string]model.SeedVideo)}
	svc := NewSeedService(dir, labels, videos, nil)
	svc.Run(context.Background())

	// The bundle changes the ground truth for an existing clip.
	writeSeedFile(t, dir, videoFile, `[{"path": "videos/a.mp4", "correctSign": "B"}]`)
	svc.Run(context.Background())

	if len(videos.videos) != 1 {
		t.Fatalf("video count = %d, want 1 (upsert must not duplicate)", len(videos.videos))
	}
	if got := videos.videos["videos/a.mp4"].CorrectSign; got != "B" {
		t.Errorf("correctSign = %q after re-seed, want %q", got, "B")
	}
}

func TestSeedService_MissingFilesSeedNothing(t *testing.T) {
	labels := &fakeHandSignStore{labels: make(map[string]struct{})}
	videos := &fakeVideoStore{videos: make(map[string]model.SeedVideo)}
	svc := NewSeedService(t.TempDir(), labels, videos, nil)

	// Must log and return, never panic past the boundary.
	svc.Run(context.Background())

	if len(labels.labels) != 0 || len(videos.videos) != 0 {
		t.Errorf("seeded %d labels and %d videos from an empty dir, want none",
			len(labels.labels), len(videos.videos))
	}
}

func TestSplitBatches(t *testing.T) {
	entry := func(id string) model.SeedVideo {
		return model.SeedVideo{ID: id, Path: id, CorrectSign: "A"}
	}
	many := func(n int) []model.SeedVideo {
		out := make([]model.SeedVideo, n)
		for i := range out {
			out[i] = entry(string(rune('a' + i%26)))
		}
		return out
	}

	tests := []struct {
		name      string
		entries   []model.SeedVideo
		size      int
		wantSizes []int
	}{
		{"empty", nil, 3, nil},
		{"single partial batch", many(2), 3, []int{2}},
		{"exact multiple", many(6), 3, []int{3, 3}},
		{"remainder batch", many(7), 3, []int{3, 3, 1}},
		{"batch of one", many(3), 1, []int{1, 1, 1}},
		{"zero size", many(3), 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := SplitBatches(tt.entries, tt.size)
			if len(batches) != len(tt.wantSizes) {
				t.Fatalf("got %d batches, want %d", len(batches), len(tt.wantSizes))
			}
			total := 0
			for i, b := range batches {
				if len(b) != tt.wantSizes[i] {
					t.Errorf("batch %d has %d entries, want %d", i, len(b), tt.wantSizes[i])
				}
				total += len(b)
			}
			// A non-positive size yields no batches at all, so only a real
			// batch size has to cover every entry.
			if tt.size > 0 && total != len(tt.entries) {
				t.Errorf("batches cover %d entries, want %d", total, len(tt.entries))
			}
		})
	}
}
