package svgpath

import "testing"

func TestFormatNumbers(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12.345", "12.35"}, // ties round half away from zero
		{"12.355", "12.36"},
		{"-12.345", "-12.35"},
		{"12.344", "12.34"},
		{"5.00", "5"},
		{"5.10", "5.1"},
		{"-0.001", "0"}, // negative zero is normalized
		{"0.999", "1"},
		{"9.999", "10"},
		{"-9.996", "-10"},
		{"24", "24"},
		{"-7", "-7"},
		{"007.50", "7.5"},
		{"0.125", "0.13"},
		{"M0 0 L48 48", "M0 0 L48 48"},
		{"M12.345,10.001 L0.5 2", "M12.35,10 L0.5 2"},
		{"A1.005 1.005 0 0 1 2.5 0", "A1.01 1.01 0 0 1 2.5 0"},
		{"M1.23456789 2.3 Z", "M1.23 2.3 Z"},
	}
	for _, tt := range tests {
		if got := FormatNumbers(tt.in); got != tt.want {
			t.Errorf("FormatNumbers(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumbersPassesCommandsThrough(t *testing.T) {
	in := "M Q C A Z , ; "
	if got := FormatNumbers(in); got != in {
		t.Errorf("non-numeric text changed: %q", got)
	}
}
