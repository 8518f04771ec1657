package classify

// Loader identifies the mod-loading framework a file targets.
type Loader int

const (
	LoaderUnknown Loader = iota
	LoaderForge
	LoaderNeoForge
	LoaderFabric
	LoaderQuilt
)

func (l Loader) String() string {
	switch l {
	case LoaderForge:
		return "Forge"
	case LoaderNeoForge:
		return "NeoForge"
	case LoaderFabric:
		return "Fabric"
	case LoaderQuilt:
		return "Quilt"
	default:
		return "Unknown"
	}
}

// Priority returns the fixed tie-break rank used when two loaders have
// equal mod counts: Forge > NeoForge > Fabric > Quilt. Lower is stronger.
func (l Loader) Priority() int {
	switch l {
	case LoaderForge:
		return 0
	case LoaderNeoForge:
		return 1
	case LoaderFabric:
		return 2
	case LoaderQuilt:
		return 3
	default:
		return 4
	}
}

// Known reports whether the loader was actually inferred, as opposed to
// the Unknown fallback.
func (l Loader) Known() bool {
	return l != LoaderUnknown
}

// Loaders lists every known loader in priority order.
func Loaders() []Loader {
	return []Loader{LoaderForge, LoaderNeoForge, LoaderFabric, LoaderQuilt}
}

// Status is the conflict state of a record. It is derived by the conflict
// analyzer from the full record set; the classifier always leaves it at
// StatusOK.
type Status int

const (
	StatusOK Status = iota
	StatusMissingDependency
	StatusMixedLoader
	StatusDuplicate
)

func (s Status) String() string {
	switch s {
	case StatusDuplicate:
		return "Duplicate"
	case StatusMixedLoader:
		return "MixedLoader"
	case StatusMissingDependency:
		return "MissingDependency"
	default:
		return "OK"
	}
}
