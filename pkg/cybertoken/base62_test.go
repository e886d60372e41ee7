package cybertoken

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestEncodeBase62(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", []byte{}, ""},
		{"zero", []byte{0}, "0"},
		{"zeros", []byte{0, 0, 0}, "000"},
		{"one", []byte{1}, "1"},
		{"61", []byte{61}, "z"},
		{"62", []byte{62}, "10"},
		{"255", []byte{255}, "47"},
		{"leading zero", []byte{0, 62}, "010"},
		{"two bytes", []byte{0x0f, 0x03}, "zz"},
		{"three bytes", []byte{0xe1, 0x78, 0x10}, "10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeBase62(tt.in); got != tt.want {
				t.Errorf("EncodeBase62(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeBase62(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"zero", "0", []byte{0}},
		{"zeros", "000", []byte{0, 0, 0}},
		{"z", "z", []byte{61}},
		{"leading zero", "010", []byte{0, 62}},
		{"zz", "zz", []byte{0x0f, 0x03}},
		{"10000", "10000", []byte{0xe1, 0x78, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase62(tt.in)
			if err != nil {
				t.Fatalf("DecodeBase62(%q) error = %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeBase62(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeBase62_Invalid(t *testing.T) {
	inputs := []string{"-", "abc+", "a b", "_", "é", "0x=="}
	for _, in := range inputs {
		if _, err := DecodeBase62(in); err == nil {
			t.Errorf("DecodeBase62(%q) should fail", in)
		}
	}
}

func TestBase62_RoundTrip(t *testing.T) {
	for n := 0; n < 64; n++ {
		src := make([]byte, n)
		if _, err := rand.Read(src); err != nil {
			t.Fatalf("rand.Read() error = %v", err)
		}
		if n > 2 {
			src[0], src[1] = 0, 0
		}

		got, err := DecodeBase62(EncodeBase62(src))
		if err != nil {
			t.Fatalf("DecodeBase62() error = %v", err)
		}
		if !bytes.Equal(got, src) {
			t.Errorf("round trip of %d bytes = %v, want %v", n, got, src)
		}
	}
}

func TestBase62_AlphabetOrder(t *testing.T) {
	if len(Base62Alphabet) != 62 {
		t.Fatalf("len(Base62Alphabet) = %d, want 62", len(Base62Alphabet))
	}
	for i := 0; i < len(Base62Alphabet); i++ {
		got := EncodeBase62([]byte{byte(i)})
		if i == 0 {
			continue
		}
		if got != string(Base62Alphabet[i]) {
			t.Errorf("EncodeBase62([%d]) = %q, want %q", i, got, string(Base62Alphabet[i]))
		}
	}
}

func BenchmarkEncodeBase62(b *testing.B) {
	src := make([]byte, DefaultEntropyBytes+4)
	rand.Read(src)
	for i := 0; i < b.N; i++ {
		EncodeBase62(src)
	}
}

func BenchmarkDecodeBase62(b *testing.B) {
	body := "icnocrRLDoZ3uCPosLA0277hQ58ob379X43U"
	for i := 0; i < b.N; i++ {
		DecodeBase62(body)
	}
}
