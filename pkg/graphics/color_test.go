package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", RGB(255, 0, 0)},
		{"#f00", RGB(255, 0, 0)},
		{"#80112233", RGBA8(0x11, 0x22, 0x33, 0x80)},
		{" tomato ", RGB(255, 99, 71)},
		{"Transparent", ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#GGGGGG", "notacolor", "#1234567"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []Color{ColorBlack, ColorWhite, RGBA8(1, 2, 3, 4)} {
		got, err := ParseColor(c.Hex())
		if err != nil || got != c {
			t.Errorf("round trip %s: got %s, err %v", c.Hex(), got, err)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB(10, 20, 30).WithAlpha(0.5)
	if c.Alpha() < 0.49 || c.Alpha() > 0.51 {
		t.Errorf("Alpha() = %v, want ~0.5", c.Alpha())
	}
	if r, g, b, _ := c.Components(); r != 10 || g != 20 || b != 30 {
		t.Errorf("WithAlpha changed rgb: %d %d %d", r, g, b)
	}
}

func TestLerp(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(200, 100, 50)
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(0) = %s", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(1) = %s", got)
	}
	if got := Lerp(a, b, 0.5); got != RGB(100, 50, 25) {
		t.Errorf("Lerp(0.5) = %s", got)
	}
}
