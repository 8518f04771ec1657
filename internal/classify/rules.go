package classify

import "modcheck/internal/textutil"

// Keyword binds a loader to the filename substring that betrays it.
type Keyword struct {
	Token  string
	Loader Loader
}

// Rules carries the injectable data the classifier and analyzer consult:
// the ordered loader keyword list, the core-library exemption set, and the
// advisory dependency pairs. DefaultRules covers the common cases; config
// files may extend the exemptions and dependency pairs.
type Rules struct {
	// Keywords is matched in order against the lowercased filename stem;
	// the first hit wins, so longer tokens must come first ("neoforge"
	// before "forge").
	Keywords []Keyword

	// CoreLibraries holds display names exempt from minority-loader
	// removal. Comparison happens on textutil.Key forms.
	CoreLibraries []string

	// Dependencies maps a mod name to the names it is known to require.
	// Advisory only; keys and values are compared via textutil.Key.
	Dependencies map[string][]string
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		Keywords: []Keyword{
			{Token: "neoforge", Loader: LoaderNeoForge},
			{Token: "fabric", Loader: LoaderFabric},
			{Token: "forge", Loader: LoaderForge},
			{Token: "quilt", Loader: LoaderQuilt},
		},
		CoreLibraries: []string{
			"fabric-api",
			"quilted-fabric-api",
			"architectury",
			"kotlinforforge",
			"cloth-config",
			"geckolib",
			"collective",
			"balm",
		},
		Dependencies: map[string][]string{
			"roughly enough items": {"architectury", "cloth config"},
			"rei":                  {"architectury", "cloth config"},
			"botania":              {"patchouli"},
			"quark":                {"autoreglib"},
			"create fabric":        {"fabric api"},
			"sodium extra":         {"sodium"},
		},
	}
}

// Extend returns a copy of the rules with additional core libraries and
// dependency pairs merged in. Dependency keys already present are
// replaced by the extension, matching config-over-default semantics.
func (r Rules) Extend(coreLibraries []string, dependencies map[string][]string) Rules {
	out := Rules{
		Keywords:      r.Keywords,
		CoreLibraries: append(append([]string(nil), r.CoreLibraries...), coreLibraries...),
		Dependencies:  make(map[string][]string, len(r.Dependencies)+len(dependencies)),
	}
	for name, deps := range r.Dependencies {
		out.Dependencies[name] = deps
	}
	for name, deps := range dependencies {
		out.Dependencies[name] = deps
	}
	return out
}

// IsCoreLibrary reports whether a normalized name is in the exemption set.
func (r Rules) IsCoreLibrary(name string) bool {
	key := textutil.Key(name)
	if key == "" {
		return false
	}
	for _, lib := range r.CoreLibraries {
		if textutil.Key(lib) == key {
			return true
		}
	}
	return false
}

// RequiredBy returns the dependency names the given mod is known to need,
// or nil when the mod has no known requirements.
func (r Rules) RequiredBy(name string) []string {
	key := textutil.Key(name)
	for requiring, deps := range r.Dependencies {
		if textutil.Key(requiring) == key {
			return deps
		}
	}
	return nil
}
