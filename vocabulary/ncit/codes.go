package ncit

import (
	"regexp"
	"strings"
)

// Prefix is the CURIE prefix for NCIT concept codes.
const Prefix = "NCIT:"

// Namespace is the OBO PURL namespace for NCIT concept IRIs.
const Namespace = "http://purl.obolibrary.org/obo/NCIT_"

// EVSBrowserBase is the NCI EVS term browser URL prefix for human lookup.
const EVSBrowserBase = "https://evsexplore.semantics.cancer.gov/evsexplore/concept/ncit/"

// codePattern matches a bare NCIT concept identifier (e.g. "C4910").
var codePattern = regexp.MustCompile(`^C[0-9]+$`)

// Normalize converts a raw cross-reference value to canonical "NCIT:Cnnnn"
// form. Accepts bare codes ("C4910"), prefixed codes ("NCIT:C4910"), and
// NCIT PURL IRIs. Returns the empty string if the value is not an NCIT code.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, Namespace)
	s = strings.TrimPrefix(s, Prefix)
	if !codePattern.MatchString(s) {
		return ""
	}
	return Prefix + s
}

// IsCode reports whether the value is a recognizable NCIT concept code in
// any accepted form.
func IsCode(raw string) bool {
	return Normalize(raw) != ""
}

// IRI returns the OBO PURL IRI for a code in any accepted form.
// Returns the empty string for non-NCIT values.
func IRI(raw string) string {
	code := Normalize(raw)
	if code == "" {
		return ""
	}
	return Namespace + strings.TrimPrefix(code, Prefix)
}

// BrowserURL returns the EVS term browser URL for a code in any accepted
// form. Returns the empty string for non-NCIT values.
func BrowserURL(raw string) string {
	code := Normalize(raw)
	if code == "" {
		return ""
	}
	return EVSBrowserBase + strings.TrimPrefix(code, Prefix)
}
