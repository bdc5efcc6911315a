package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

const (
	handSignFile  = "handsigns.json"
	videoFile     = "videos.json"
	seedBatchSize = 1000
)

// HandSignStore is the label persistence surface seeding needs.
type HandSignStore interface {
	Count(ctx context.Context) (int, error)
	InsertBatch(ctx context.Context, names []string) error
}

// VideoStore is the video persistence surface seeding needs.
type VideoStore interface {
	Count(ctx context.Context) (int, error)
	UpsertBatch(ctx context.Context, entries []model.SeedVideo) (int, error)
}

// LabelCache drops cached label listings once seeding has changed them. A
// request served before seeding finishes may have cached an empty list.
type LabelCache interface {
	InvalidateHandSigns(ctx context.Context) error
}

// SeedService populates the handsigns and videos tables from the bundled data
// files. Both steps are idempotent: labels are only loaded into an empty
// table, and videos are upserted by their natural key, so restarts and
// re-runs against an updated bundle never produce duplicates. The routine
// never touches validation_results.
type SeedService struct {
	dataDir   string
	handSigns HandSignStore
	videos    VideoStore
	cache     LabelCache
}

func NewSeedService(dataDir string, handSigns HandSignStore, videos VideoStore, cache LabelCache) *SeedService {
	return &SeedService{dataDir: dataDir, handSigns: handSigns, videos: videos, cache: cache}
}

// Run executes both seeding steps. Errors are logged and swallowed: a failed
// or partial seed must never take the server down, and the upsert design
// means the next boot simply continues where this one stopped.
func (s *SeedService) Run(ctx context.Context) {
	if err := s.seedHandSigns(ctx); err != nil {
		log.Error().Err(err).Msg("seed: hand sign step failed")
	}
	if err := s.seedVideos(ctx); err != nil {
		log.Error().Err(err).Msg("seed: video step failed")
	}
}

// seedHandSigns loads the label vocabulary into an empty handsigns table.
// A non-empty table is left as-is, with no reconciliation against the file.
func (s *SeedService) seedHandSigns(ctx context.Context) error {
	count, err := s.handSigns.Count(ctx)
	if err != nil {
		return fmt.Errorf("count handsigns: %w", err)
	}
	if count > 0 {
		log.Info().Int("existing", count).Msg("seed: handsigns already present, skipping")
		return nil
	}

	raw, err := os.ReadFile(filepath.Join(s.dataDir, handSignFile))
	if err != nil {
		return fmt.Errorf("read %s: %w", handSignFile, err)
	}

	names, err := ParseHandSigns(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", handSignFile, err)
	}

	if err := s.handSigns.InsertBatch(ctx, names); err != nil {
		return fmt.Errorf("insert handsigns: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateHandSigns(ctx); err != nil {
			log.Warn().Err(err).Msg("cache: invalidate handsigns failed")
		}
	}

	log.Info().Int("inserted", len(names)).Msg("seed: handsigns loaded")
	return nil
}

// seedVideos upserts every bundled video entry in fixed-size batches. A
// failed batch is logged and the remaining batches continue.
func (s *SeedService) seedVideos(ctx context.Context) error {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, videoFile))
	if err != nil {
		return fmt.Errorf("read %s: %w", videoFile, err)
	}

	entries, err := ParseSeedVideos(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", videoFile, err)
	}

	var processed, inserted, failedBatches int
	for i, batch := range SplitBatches(entries, seedBatchSize) {
		n, err := s.videos.UpsertBatch(ctx, batch)
		inserted += n
		if err != nil {
			failedBatches++
			log.Error().Err(err).Int("batch", i).Int("size", len(batch)).Msg("seed: video batch failed")
			continue
		}
		processed += len(batch)
	}

	finalCount, err := s.videos.Count(ctx)
	if err != nil {
		return fmt.Errorf("count videos: %w", err)
	}

	log.Info().
		Int("processed", processed).
		Int("inserted", inserted).
		Int("failedBatches", failedBatches).
		Int("collectionSize", finalCount).
		Msg("seed: videos loaded")
	return nil
}

// ParseHandSigns decodes the bundled label file: a JSON array of non-blank
// strings.
func ParseHandSigns(raw []byte) ([]string, error) {
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no labels in file")
	}
	return out, nil
}

// ParseSeedVideos decodes the bundled video file. Entries without a path are
// rejected; an absent id falls back to the path as the natural key.
func ParseSeedVideos(raw []byte) ([]model.SeedVideo, error) {
	var entries []model.SeedVideo
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	for i, e := range entries {
		if strings.TrimSpace(e.Path) == "" {
			return nil, fmt.Errorf("entry %d: missing path", i)
		}
	}
	return entries, nil
}

// SplitBatches slices entries into consecutive batches of at most size.
func SplitBatches(entries []model.SeedVideo, size int) [][]model.SeedVideo {
	if size <= 0 || len(entries) == 0 {
		return nil
	}

	batches := make([][]model.SeedVideo, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		batches = append(batches, entries[start:end])
	}
	return batches
}
