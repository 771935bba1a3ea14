// Package pipeline streams FASTA records from files through the homopolymer
// engine and calls a visit callback for each hit, in input order.
//
// Files and records are processed one at a time; a malformed record or an
// unreadable file is logged and skipped so the rest of the input is still
// scanned.
package pipeline
