package service

import (
	"context"
	"testing"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"zero total", 0, 0, 0},
		{"zero total with completed", 5, 0, 0},
		{"nothing done", 0, 10, 0},
		{"all done", 10, 10, 100},
		{"one of three rounds down", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"half rounds up", 1, 2, 50},
		{"one of eight", 1, 8, 13},
		{"one of two hundred", 1, 200, 1},
		{"negative total treated as empty", 1, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionPercentage(tt.completed, tt.total)
			if got != tt.want {
				t.Errorf("CompletionPercentage(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

type fakeVideoCounter struct{ total int }

func (f fakeVideoCounter) Count(context.Context) (int, error) { return f.total, nil }

func TestProgress_CountsFollowSubmissions(t *testing.T) {
	store := newFakeResultStore()
	progressSvc := NewProgressService(store, fakeVideoCounter{total: 3}, nil)
	submitSvc := NewSubmitService(store, nil)

	if _, err := submitSvc.Submit(context.Background(), model.SubmitRequest{UserID: 1, VideoID: "v1", SelectedSign: "A"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	resp, err := progressSvc.Progress(context.Background(), 1)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if resp.Completed != 1 || resp.Total != 3 || resp.Percentage != 33 {
		t.Errorf("got %+v, want {1 3 33}", resp)
	}

	// Resubmitting the same video must not inflate the count.
	if _, err := submitSvc.Submit(context.Background(), model.SubmitRequest{UserID: 1, VideoID: "v1", SelectedSign: "B"}); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	resp, err = progressSvc.Progress(context.Background(), 1)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if resp.Completed != 1 {
		t.Errorf("completed = %d after resubmission, want 1", resp.Completed)
	}

	// Other users are unaffected.
	other, err := progressSvc.Progress(context.Background(), 2)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if other.Completed != 0 || other.Percentage != 0 {
		t.Errorf("got %+v for an idle user, want {0 3 0}", other)
	}
}
