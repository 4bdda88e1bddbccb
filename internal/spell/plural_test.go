package spell

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "ends in unstressed vowel", word: "factura", want: "facturas"},
		{name: "ends in stressed e", word: "café", want: "cafés"},
		{name: "ends in stressed i", word: "rubí", want: "rubíes"},
		{name: "ends in z", word: "lápiz", want: "lápices"},
		{name: "ends in z short", word: "voz", want: "voces"},
		{name: "ends in consonant", word: "papel", want: "papeles"},
		{name: "ends in y", word: "rey", want: "reyes"},
		{name: "stressed final syllable loses accent", word: "camión", want: "camiones"},
		{name: "declension of -ión", word: "declaración", want: "declaraciones"},
		{name: "monosyllable ending in s", word: "mes", want: "meses"},
		{name: "stressed final syllable ending in s", word: "autobús", want: "autobuses"},
		{name: "invariant weekday", word: "lunes", want: "lunes"},
		{name: "invariant ending in x", word: "tórax", want: "tórax"},
		{name: "already plural", word: "facturas", want: "facturas"},
		{name: "empty word", word: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pluralize(tt.word); got != tt.want {
				t.Errorf("Pluralize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
