package conflict

import (
	"sort"

	"modcheck/internal/classify"
	"modcheck/internal/textutil"
)

// DuplicateGroup is a set of records sharing a normalized display name.
type DuplicateGroup struct {
	Name  string
	Paths []string
}

// Summary is the aggregate view of one scan. It is computed once by
// Analyze and not updated afterwards.
type Summary struct {
	// Counts maps each known loader to its number of classified mods.
	// Unknown-loader records are not counted.
	Counts map[classify.Loader]int

	// Dominant is the loader with the highest count; ties resolve by the
	// fixed priority order Forge > NeoForge > Fabric > Quilt. When every
	// record is Unknown, Dominant is LoaderUnknown and HasDominant is
	// false.
	Dominant    classify.Loader
	HasDominant bool

	DuplicateGroups []DuplicateGroup

	// MinorityPaths lists the files flagged MixedLoader.
	MinorityPaths []string
}

// Analyze recomputes every record's status from the full record set and
// returns the scan summary. Statuses are always derived from scratch;
// calling Analyze twice on the same records yields identical results.
//
// Precedence when several conditions apply to one record:
// Duplicate > MixedLoader > MissingDependency > OK.
func Analyze(records []classify.Record, rules classify.Rules) Summary {
	sum := Summary{Counts: make(map[classify.Loader]int)}

	for i := range records {
		records[i].Status = classify.StatusOK
		records[i].MissingDeps = nil
		if records[i].Loader.Known() {
			sum.Counts[records[i].Loader]++
		}
	}

	sum.Dominant, sum.HasDominant = dominantLoader(sum.Counts)
	sum.DuplicateGroups = flagDuplicates(records)
	sum.MinorityPaths = flagMixedLoaders(records, sum)
	flagMissingDependencies(records, rules)

	return sum
}

// Selection returns the records eligible for removal: everything flagged
// Duplicate or MixedLoader, minus core libraries. Callers may trim the
// result further, but the cleanup executor re-applies the core-library
// filter regardless.
func Selection(records []classify.Record) []classify.Record {
	var out []classify.Record
	for _, rec := range records {
		if rec.IsCoreLibrary {
			continue
		}
		if rec.Status == classify.StatusDuplicate || rec.Status == classify.StatusMixedLoader {
			out = append(out, rec)
		}
	}
	return out
}

func dominantLoader(counts map[classify.Loader]int) (classify.Loader, bool) {
	best := classify.LoaderUnknown
	bestCount := 0
	for _, loader := range classify.Loaders() {
		count := counts[loader]
		if count == 0 {
			continue
		}
		if count > bestCount || (count == bestCount && loader.Priority() < best.Priority()) {
			best = loader
			bestCount = count
		}
	}
	return best, bestCount > 0
}

func flagDuplicates(records []classify.Record) []DuplicateGroup {
	groups := make(map[string][]int)
	for i := range records {
		key := textutil.Key(records[i].DisplayName)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], i)
	}

	var out []DuplicateGroup
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		// Keep the highest version; ties and unparseable versions fall
		// back to the lexicographically-first path.
		sort.Slice(members, func(a, b int) bool {
			ra, rb := records[members[a]], records[members[b]]
			if c := CompareVersions(ra.Version, rb.Version); c != 0 {
				return c > 0
			}
			return ra.FilePath < rb.FilePath
		})
		group := DuplicateGroup{Name: records[members[0]].DisplayName}
		for _, idx := range members {
			group.Paths = append(group.Paths, records[idx].FilePath)
		}
		sort.Strings(group.Paths)
		for _, idx := range members[1:] {
			records[idx].Status = classify.StatusDuplicate
		}
		out = append(out, group)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

func flagMixedLoaders(records []classify.Record, sum Summary) []string {
	if !sum.HasDominant {
		return nil
	}
	var minority []string
	for i := range records {
		rec := &records[i]
		if !rec.Loader.Known() || rec.Loader == sum.Dominant || rec.IsCoreLibrary {
			continue
		}
		minority = append(minority, rec.FilePath)
		if rec.Status == classify.StatusOK {
			rec.Status = classify.StatusMixedLoader
		}
	}
	sort.Strings(minority)
	return minority
}

func flagMissingDependencies(records []classify.Record, rules classify.Rules) {
	present := make(map[string]bool, len(records))
	for i := range records {
		present[textutil.Key(records[i].DisplayName)] = true
	}

	for i := range records {
		rec := &records[i]
		required := rules.RequiredBy(rec.DisplayName)
		if len(required) == 0 {
			continue
		}
		var missing []string
		for _, dep := range required {
			if !present[textutil.Key(dep)] {
				missing = append(missing, dep)
			}
		}
		if len(missing) == 0 {
			continue
		}
		rec.MissingDeps = missing
		if rec.Status == classify.StatusOK {
			rec.Status = classify.StatusMissingDependency
		}
	}
}
