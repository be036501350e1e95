package util

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Checksum(nil); got != emptySHA256 {
		t.Fatalf("Checksum(nil) = %s, want %s", got, emptySHA256)
	}
}

func TestImageKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		wantSuffix  string
		wantErr     bool
	}{
		{name: "png", contentType: "image/png", wantSuffix: ".png"},
		{name: "jpeg", contentType: "image/jpeg", wantSuffix: ".jpg"},
		{name: "webp", contentType: "image/webp", wantSuffix: ".webp"},
		{name: "not an image", contentType: "text/plain", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := ImageKey([]byte("pixels"), tt.contentType)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ImageKey(%q) returned no error", tt.contentType)
				}

				return
			}
			if err != nil {
				t.Fatalf("ImageKey(%q) error = %v", tt.contentType, err)
			}
			if want := Checksum([]byte("pixels")) + tt.wantSuffix; key != want {
				t.Fatalf("ImageKey(%q) = %s, want %s", tt.contentType, key, want)
			}
		})
	}
}
