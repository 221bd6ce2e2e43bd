// Package fetch retrieves the published ontology document over HTTP(S).
//
// The permanent URL is a PURL, so redirects are followed. Failures surface
// as *Error (never as a parse error): the document cannot fail on its own,
// only its retrieval can. Retry is bounded and flat; anything beyond that
// is the caller's policy.
package fetch
