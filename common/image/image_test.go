package image

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestFromDataURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMime string
		wantData string
		wantErr  bool
	}{
		{"png data url", "data:image/png;base64,aGVsbG8=", "image/png", "hello", false},
		{"jpeg data url", "data:image/jpeg;base64,aGVsbG8=", "image/jpeg", "hello", false},
		{"missing prefix", "aGVsbG8=", "", "", true},
		{"bad base64", "data:image/png;base64,!!!", "", "", true},
		{"not an image mime", "data:text/plain;base64,aGVsbG8=", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mimeType, data, err := FromDataURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromDataURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if mimeType != tt.wantMime {
				t.Errorf("mimeType = %q, want %q", mimeType, tt.wantMime)
			}
			if string(data) != tt.wantData {
				t.Errorf("data = %q, want %q", data, tt.wantData)
			}
		})
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	original := []byte{0x89, 0x50, 0x4e, 0x47}
	dataURL := "data:image/png;base64," + ToBase64(original)
	if !IsDataURL(dataURL) {
		t.Fatalf("IsDataURL(%q) = false", dataURL)
	}
	if IsDataURL("https://example.com/logo.png") {
		t.Fatal("IsDataURL accepted a plain URL")
	}
	mimeType, data, err := FromDataURL(dataURL)
	if err != nil {
		t.Fatalf("FromDataURL() error = %v", err)
	}
	if mimeType != "image/png" || !bytes.Equal(data, original) {
		t.Errorf("round trip mismatch: %q %v", mimeType, data)
	}
}

func TestGetImageSize(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 12, 34))); err != nil {
		t.Fatal(err)
	}
	width, height, err := GetImageSize(buf.Bytes())
	if err != nil {
		t.Fatalf("GetImageSize() error = %v", err)
	}
	if width != 12 || height != 34 {
		t.Errorf("GetImageSize() = %dx%d, want 12x34", width, height)
	}

	if _, _, err := GetImageSize([]byte("not an image")); err == nil {
		t.Error("GetImageSize() accepted garbage")
	}
}
