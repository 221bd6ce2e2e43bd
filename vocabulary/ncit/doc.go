// Package ncit provides helpers for NCI Thesaurus (NCIT) concept codes.
//
// HPVCO classes carry NCIT cross-references as opaque string codes of the
// form "NCIT:C4910". The codes are weak references: they are resolved by
// external terminology services, never by this module. This package only
// normalizes, validates, and renders them.
package ncit
