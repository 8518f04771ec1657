// Package conflict aggregates classified mod records into a scan summary
// and derives each record's conflict status.
//
// The analyzer tallies mods per loader, elects the dominant loader (the
// one the player presumably intends to run), flags minority-loader mods,
// groups duplicates by normalized name keeping the newest version, and
// raises advisory missing-dependency warnings from a small fixed pair
// list. Selection derives the removal candidates from those statuses.
package conflict
