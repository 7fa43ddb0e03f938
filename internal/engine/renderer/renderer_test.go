package renderer

import "testing"

func TestParseToneMapping(t *testing.T) {
	tests := []struct {
		in      string
		want    ToneMapping
		wantErr bool
	}{
		{"", ToneMappingNone, false},
		{"none", ToneMappingNone, false},
		{"aces", ToneMappingACES, false},
		{"reinhard", "", true},
	}

	for _, tt := range tests {
		got, err := ParseToneMapping(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseToneMapping(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseToneMapping(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		w, h   int
		ratio  float32
		bw, bh int
	}{
		{800, 600, 1, 800, 600},
		{800, 600, 2, 1600, 1200},
		{1001, 501, 1.5, 1501, 751},
		{0, 0, 1, 1, 1},
	}

	for _, tt := range tests {
		r := &Renderer{config: Config{Width: tt.w, Height: tt.h, PixelRatio: tt.ratio}}
		bw, bh := r.bufferSize()
		if bw != tt.bw || bh != tt.bh {
			t.Errorf("%dx%d@%v: buffer = %dx%d, want %dx%d", tt.w, tt.h, tt.ratio, bw, bh, tt.bw, tt.bh)
		}
	}
}

func TestApplySize(t *testing.T) {
	tests := []struct {
		w, h   int
		ratio  float32
		bw, bh int
	}{
		{1280, 720, 2, 2560, 1440},
		{640, 480, 0, 640, 480},
		{640, 480, -1, 640, 480},
	}

	for _, tt := range tests {
		r := &Renderer{config: Config{Width: 800, Height: 600, PixelRatio: 1}}
		r.applySize(tt.w, tt.h, tt.ratio)
		bw, bh := r.bufferSize()
		if bw != tt.bw || bh != tt.bh {
			t.Errorf("%dx%d@%v: buffer = %dx%d, want %dx%d", tt.w, tt.h, tt.ratio, bw, bh, tt.bw, tt.bh)
		}
		if r.PixelRatio() <= 0 {
			t.Errorf("%dx%d@%v: pixel ratio = %v", tt.w, tt.h, tt.ratio, r.PixelRatio())
		}
	}
}
