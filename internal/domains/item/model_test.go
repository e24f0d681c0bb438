package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Type
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=abc123", TypeYouTube},
		{"youtube short link", "https://youtu.be/abc123", TypeYouTube},
		{"google drive", "https://drive.google.com/file/d/xyz/view", TypeDrive},
		{"onedrive live", "https://onedrive.live.com/?id=123", TypeOneDrive},
		{"onedrive short link", "https://1drv.ms/f/s!abc", TypeOneDrive},
		{"sharepoint", "https://contoso.sharepoint.com/:f:/g/docs", TypeOneDrive},
		{"plain site", "https://example.com/resources", TypeOther},
		{"uppercase host", "https://WWW.YOUTUBE.COM/watch?v=abc", TypeYouTube},
		{"empty", "", TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.url))
		})
	}
}
