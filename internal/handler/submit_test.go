package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/service"
)

type fakeResultStore struct{ upserts int }

func (f *fakeResultStore) Upsert(_ context.Context, userID int, videoID, selectedSign string) (*model.ValidationResult, error) {
	f.upserts++
	return &model.ValidationResult{UserID: userID, VideoID: videoID, SelectedSign: selectedSign}, nil
}

func newSubmitApp(store *fakeResultStore) *fiber.App {
	app := fiber.New()
	h := NewSubmitHandler(service.NewSubmitService(store, nil))
	app.Post("/api/submit", h.Submit)
	return app
}

func TestSubmit_RejectedRequestWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing userId", `{"videoId":"v1","selectedSign":"A"}`},
		{"zero userId", `{"userId":0,"videoId":"v1","selectedSign":"A"}`},
		{"negative userId", `{"userId":-1,"videoId":"v1","selectedSign":"A"}`},
		{"missing videoId", `{"userId":1,"selectedSign":"A"}`},
		{"blank videoId", `{"userId":1,"videoId":"   ","selectedSign":"A"}`},
		{"missing selectedSign", `{"userId":1,"videoId":"v1"}`},
		{"not json", `userId=1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeResultStore{}
			app := newSubmitApp(store)

			req := httptest.NewRequest("POST", "/api/submit", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
			}
			if store.upserts != 0 {
				t.Errorf("handler wrote %d rows on a rejected request, want 0", store.upserts)
			}

			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), `"success":false`) {
				t.Errorf("body = %s, want success:false", body)
			}
		})
	}
}
