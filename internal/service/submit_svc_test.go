package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

// fakeResultStore mirrors the overwrite law of the validation_results table:
// one row per (userId, videoId), refreshed timestamp on every upsert.
type fakeResultStore struct {
	rows    map[string]model.ValidationResult
	upserts int
	clock   time.Time
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{
		rows:  make(map[string]model.ValidationResult),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeResultStore) Upsert(_ context.Context, userID int, videoID, selectedSign string) (*model.ValidationResult, error) {
	f.upserts++
	f.clock = f.clock.Add(time.Second)
	res := model.ValidationResult{
		UserID:       userID,
		VideoID:      videoID,
		SelectedSign: selectedSign,
		SubmittedAt:  f.clock,
	}
	f.rows[resultKey(userID, videoID)] = res
	return &res, nil
}

func (f *fakeResultStore) CountByUser(_ context.Context, userID int) (int, error) {
	n := 0
	for _, r := range f.rows {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func resultKey(userID int, videoID string) string {
	return fmt.Sprintf("%d|%s", userID, videoID)
}

func TestSubmit_ResubmissionOverwrites(t *testing.T) {
	store := newFakeResultStore()
	svc := NewSubmitService(store, nil)

	first, err := svc.Submit(context.Background(), model.SubmitRequest{UserID: 1, VideoID: "v1", SelectedSign: "A"})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	second, err := svc.Submit(context.Background(), model.SubmitRequest{UserID: 1, VideoID: "v1", SelectedSign: "B"})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if len(store.rows) != 1 {
		t.Fatalf("stored %d rows for one (user, video) pair, want 1", len(store.rows))
	}
	row := store.rows[resultKey(1, "v1")]
	if row.SelectedSign != "B" {
		t.Errorf("stored sign = %q, want the latest answer %q", row.SelectedSign, "B")
	}
	if !second.SubmittedAt.After(first.SubmittedAt) {
		t.Error("resubmission did not refresh the timestamp")
	}
}

func TestSubmit_DistinctPairsDistinctRows(t *testing.T) {
	store := newFakeResultStore()
	svc := NewSubmitService(store, nil)

	pairs := []model.SubmitRequest{
		{UserID: 1, VideoID: "v1", SelectedSign: "A"},
		{UserID: 1, VideoID: "v2", SelectedSign: "A"},
		{UserID: 2, VideoID: "v1", SelectedSign: "B"},
	}
	for _, req := range pairs {
		if _, err := svc.Submit(context.Background(), req); err != nil {
			t.Fatalf("submit %+v failed: %v", req, err)
		}
	}

	if len(store.rows) != 3 {
		t.Errorf("stored %d rows, want 3 (one per distinct pair)", len(store.rows))
	}
}
