package utils

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{1073741824, "1.0 GB"},
		{-7, "0 B"}, // 负值吸收为 0
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.size); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, 期望 %q", tt.size, got, tt.want)
		}
	}
}
