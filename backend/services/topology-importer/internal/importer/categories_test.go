package importer

import "testing"

func TestTranslateCategory(t *testing.T) {
	cases := []struct{ it, en string }{
		{"UFFICI", "Office"},
		{"uffici amministrativi", "Office"},
		{"AULE DIDATTICHE", "Classroom"},
		{"SERVIZI IGIENICI", "Restroom"},
		{"CIRC.ORIZ", "Corridor"},
		{"CONNETTIVO PIANO TERRA", "Corridor"},
		{"SCALE", "Stairs"},
		{"DEPOSITO ATTREZZATURE", "Storage"},
		{"LOCALE TECNICO", "Technical Room"},
		{"LABORATORIO DI CHIMICA", "Laboratory"},
		{"RISTORO", "Break Room"},
		{"SPAZI COMPLEMENTARI", "Support Space"},
		{"SALA RIUNIONI", "Meeting Room"},
		{"SALA STUDIO", "Study Room"},
		{"CATEGORIA SCONOSCIUTA", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := TranslateCategory(tc.it); got != tc.en {
			t.Fatalf("%q: got %q, want %q", tc.it, got, tc.en)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ raw, want string }{
		{"Room-001 (Nord)", "room 001 nord"},
		{"  AULA_3B  ", "aula 3b"},
		{"a//b..c", "a b c"},
		{"***", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.raw); got != tc.want {
			t.Fatalf("%q: got %q, want %q", tc.raw, got, tc.want)
		}
	}
}
