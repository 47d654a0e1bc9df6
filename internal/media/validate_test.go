package media

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestCanBePreviewed(t *testing.T) {
	tests := []struct {
		name string
		item *Item
		want bool
	}{
		{"nil", nil, false},
		{"local video", &Item{Downloaded: true, Kind: KindVideo}, true},
		{"remote video", &Item{Downloaded: false, Kind: KindVideo}, false},
		{"local other", &Item{Downloaded: true, Kind: KindOther}, false},
		{"remote other", &Item{Kind: KindOther}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanBePreviewed(tt.item); got != tt.want {
				t.Errorf("CanBePreviewed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	video := &Item{Path: "/v.mp4", Downloaded: true, Kind: KindVideo}
	acc := &Account{Name: "alice"}

	tests := []struct {
		name    string
		item    *Item
		account *Account
		wantErr bool
	}{
		{"valid", video, acc, false},
		{"nil item", nil, acc, true},
		{"nil account", video, nil, true},
		{"empty account", video, &Account{}, true},
		{"not downloaded", &Item{Kind: KindVideo}, acc, true},
		{"not video", &Item{Downloaded: true, Kind: KindOther}, acc, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.item, tt.account)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var ise *InvalidStateError
			if !errors.As(err, &ise) {
				t.Fatalf("Validate() error = %v, want *InvalidStateError", err)
			}
			if !errors.Is(err, ErrInvalidState) {
				t.Error("error should match ErrInvalidState")
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		mime string
		want Kind
	}{
		{"video/mp4", KindVideo},
		{"Video/WebM", KindVideo},
		{"audio/mpeg", KindOther},
		{"", KindOther},
	}
	for _, tt := range tests {
		if got := KindOf(tt.mime); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.mime, got, tt.want)
		}
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}

	item, err := Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !item.Downloaded {
		t.Error("existing file should be downloaded")
	}
	if item.Kind != KindVideo {
		t.Errorf("Kind = %v, want video", item.Kind)
	}
	if item.Size != 4 {
		t.Errorf("Size = %d, want 4", item.Size)
	}
	if item.Name() != "clip.mp4" {
		t.Errorf("Name() = %q", item.Name())
	}

	missing, err := Stat(filepath.Join(dir, "gone.mp4"))
	if err != nil {
		t.Fatalf("Stat() missing error = %v", err)
	}
	if missing.Downloaded {
		t.Error("missing file should not be downloaded")
	}

	if _, err := Stat(dir); err == nil {
		t.Error("Stat() on directory should fail")
	}
}

func TestVideoMimeTypes(t *testing.T) {
	types := VideoMimeTypes()

	if !slices.IsSorted(types) {
		t.Errorf("VideoMimeTypes() not sorted: %v", types)
	}
	if !slices.Contains(types, "video/mp4") {
		t.Errorf("VideoMimeTypes() = %v, missing video/mp4", types)
	}
	if n := len(types); n != len(slices.Compact(slices.Clone(types))) {
		t.Errorf("VideoMimeTypes() has duplicates: %v", types)
	}
	for _, mt := range types {
		if KindOf(mt) != KindVideo {
			t.Errorf("KindOf(%q) = %v, want video", mt, KindOf(mt))
		}
	}
}
