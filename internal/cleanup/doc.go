// Package cleanup moves conflicting mod files into a timestamped backup
// directory before deleting the originals.
//
// Deletion is strictly copy-verify-delete per file: an original is only
// removed once its backup copy exists and matches byte-for-byte. A copy
// failure skips that file and moves on; the whole batch never aborts on
// a single bad file. Core libraries are filtered out of any selection
// the caller passes in.
package cleanup
