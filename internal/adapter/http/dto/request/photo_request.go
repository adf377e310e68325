package request

// UploadPhotoRequest is the multipart form accompanying a photo upload. The
// image itself travels as the "photo" file part. An empty SetID starts a new
// before/after set; a non-empty one patches the missing side of an existing
// set.
type UploadPhotoRequest struct {
	SetID        string `form:"setId"`
	Side         string `form:"side" binding:"required,oneof=before after"`
	EngineerName string `form:"engineerName"`
	Notes        string `form:"notes"`
}
