package ncit

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"C4910", "NCIT:C4910"},
		{"NCIT:C4910", "NCIT:C4910"},
		{"http://purl.obolibrary.org/obo/NCIT_C4910", "NCIT:C4910"},
		{"  C4910  ", "NCIT:C4910"},
		{"", ""},
		{"4910", ""},
		{"Cervix", ""},
		{"NCIT:", ""},
		{"MONDO:0005170", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode("C4910") {
		t.Error("bare code must be recognized")
	}
	if !IsCode("NCIT:C14227") {
		t.Error("prefixed code must be recognized")
	}
	if IsCode("cervical cancer") {
		t.Error("free text must not be recognized")
	}
}

func TestIRI(t *testing.T) {
	want := "http://purl.obolibrary.org/obo/NCIT_C4910"
	if got := IRI("NCIT:C4910"); got != want {
		t.Errorf("IRI() = %q, want %q", got, want)
	}
	if got := IRI(want); got != want {
		t.Errorf("IRI must accept PURL input, got %q", got)
	}
	if got := IRI("bogus"); got != "" {
		t.Errorf("IRI of non-code must be empty, got %q", got)
	}
}

func TestBrowserURL(t *testing.T) {
	want := EVSBrowserBase + "C4910"
	if got := BrowserURL("C4910"); got != want {
		t.Errorf("BrowserURL() = %q, want %q", got, want)
	}
	if got := BrowserURL("not a code"); got != "" {
		t.Errorf("BrowserURL of non-code must be empty, got %q", got)
	}
}
