package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicevale/internal/adapter/http/handlers/mocks"
	"servicevale/internal/domain/entities"
	"servicevale/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func photoForm(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withFile {
		fw, err := mw.CreateFormFile("photo", "before.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("jpeg-bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestPhotoHandler_Upload(t *testing.T) {
	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoSetUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.POST("/v1/photos", h.Upload)

		buf, ct := photoForm(t, map[string]string{"side": "before", "engineerName": "Ramesh Kumar"}, false)
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad side rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoSetUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.POST("/v1/photos", h.Upload)

		buf, ct := photoForm(t, map[string]string{"side": "middle"}, true)
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success streams the file to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoSetUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.POST("/v1/photos", h.Upload)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.UploadPhotoInput) (usecase.PhotoSetView, error) {
				if in.Side != "before" || in.EngineerName != "Ramesh Kumar" || in.Notes != "compressor" {
					t.Fatalf("unexpected input: %+v", in)
				}
				data, err := io.ReadAll(in.Body)
				if err != nil || string(data) != "jpeg-bytes" {
					t.Fatalf("unexpected body: %q err=%v", data, err)
				}
				return usecase.PhotoSetView{
					PhotoSet:  entities.PhotoSet{ID: "set-1", BeforeImageID: "img-b", Notes: "Ramesh Kumar\ncompressor"},
					BeforeURL: "https://cdn.example/img-b",
				}, nil
			})

		buf, ct := photoForm(t, map[string]string{"side": "before", "engineerName": "Ramesh Kumar", "notes": "compressor"}, true)
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "set-1" || body["uploaderName"] != "Ramesh Kumar" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("occupied side maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoSetUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.POST("/v1/photos", h.Upload)

		uc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(usecase.PhotoSetView{}, usecase.ErrPhotoSideTaken)

		buf, ct := photoForm(t, map[string]string{"setId": "set-1", "side": "before"}, true)
		req := httptest.NewRequest(http.MethodPost, "/v1/photos", buf)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPhotoHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPhotoSetUseCase(ctrl)
	h := NewPhotoHandler(uc)

	r := gin.New()
	r.GET("/v1/photos", h.List)

	uc.EXPECT().List(gomock.Any()).Return([]usecase.PhotoSetView{
		{PhotoSet: entities.PhotoSet{ID: "set-1"}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/photos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPhotoHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoSetUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.DELETE("/v1/photos/:id", h.Delete)

		uc.EXPECT().SaveAndRemove(gomock.Any(), "set-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/photos/set-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPhotoSetUseCase(ctrl)
		h := NewPhotoHandler(uc)

		r := gin.New()
		r.DELETE("/v1/photos/:id", h.Delete)

		uc.EXPECT().SaveAndRemove(gomock.Any(), "nope").Return(usecase.ErrPhotoSetNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/photos/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
