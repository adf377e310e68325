package response

import (
	"time"

	"servicevale/internal/usecase"
)

// PhotoSetResponse flattens a photo set for listings: image URLs instead of
// object ids, and the notes field split back into uploader name and text.
type PhotoSetResponse struct {
	ID           string    `json:"id"`
	BeforeURL    string    `json:"beforeUrl,omitempty"`
	AfterURL     string    `json:"afterUrl,omitempty"`
	UploaderName string    `json:"uploaderName,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Complete     bool      `json:"complete"`
	Date         time.Time `json:"date"`
}

func FromPhotoSet(v usecase.PhotoSetView) PhotoSetResponse {
	return PhotoSetResponse{
		ID:           v.ID,
		BeforeURL:    v.BeforeURL,
		AfterURL:     v.AfterURL,
		UploaderName: v.UploaderName(),
		Notes:        v.UserNotes(),
		Complete:     v.Complete(),
		Date:         v.Date,
	}
}

func FromPhotoSets(items []usecase.PhotoSetView) []PhotoSetResponse {
	out := make([]PhotoSetResponse, 0, len(items))
	for _, v := range items {
		out = append(out, FromPhotoSet(v))
	}
	return out
}
