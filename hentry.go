// Package hentry extracts blog and article entries from HTML documents
// marked up with the hentry microformat (http://microformats.org/wiki/hentry).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package hentry
