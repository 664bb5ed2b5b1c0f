package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		ok      bool
		wantErr bool
	}{
		{"plain date", "2024-12-20", time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), true, false},
		{"rfc3339", "2024-12-20T15:04:05Z", time.Date(2024, 12, 20, 15, 4, 5, 0, time.UTC), true, false},
		{"padded", "  2024-12-20 ", time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), true, false},
		{"blank", "   ", time.Time{}, false, false},
		{"garbage", "20/12/2024", time.Time{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if ok != tt.ok {
				t.Errorf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)); got != "2023-10-01" {
		t.Errorf("Expected 2023-10-01, got %s", got)
	}
}
