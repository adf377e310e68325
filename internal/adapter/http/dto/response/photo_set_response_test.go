package response

import (
	"testing"
	"time"

	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase"
)

func TestFromPhotoSet(t *testing.T) {
	now := time.Now().UTC()
	v := usecase.PhotoSetView{
		PhotoSet: entities.PhotoSet{
			ID:            "set-1",
			BeforeImageID: "img-b",
			AfterImageID:  "img-a",
			Notes:         "Ramesh Kumar\nAC compressor replaced",
			Date:          now,
		},
		BeforeURL: "https://cdn.example/img-b",
		AfterURL:  "https://cdn.example/img-a",
	}

	res := FromPhotoSet(v)
	if res.UploaderName != "Ramesh Kumar" {
		t.Fatalf("expected uploader name, got %q", res.UploaderName)
	}
	if res.Notes != "AC compressor replaced" {
		t.Fatalf("expected user notes, got %q", res.Notes)
	}
	if !res.Complete {
		t.Fatalf("expected complete set")
	}
	if res.BeforeURL != "https://cdn.example/img-b" || res.AfterURL != "https://cdn.example/img-a" {
		t.Fatalf("unexpected urls: %+v", res)
	}
}

func TestFromPhotoSet_SingleSided(t *testing.T) {
	v := usecase.PhotoSetView{
		PhotoSet:  entities.PhotoSet{ID: "set-2", BeforeImageID: "img-b", Notes: "Ramesh Kumar"},
		BeforeURL: "https://cdn.example/img-b",
	}

	res := FromPhotoSet(v)
	if res.Complete {
		t.Fatalf("expected incomplete set")
	}
	if res.AfterURL != "" {
		t.Fatalf("expected empty after url, got %q", res.AfterURL)
	}
	if res.Notes != "" {
		t.Fatalf("expected empty user notes, got %q", res.Notes)
	}
}
