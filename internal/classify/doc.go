// Package classify turns mod filenames into structured records.
//
// Minecraft mod archives encode their target loader and version in the
// filename by loose convention (create-forge-0.5.1.jar,
// sodium-fabric-0.5.8+mc1.20.1.jar). The classifier applies a fixed,
// ordered rule list to recover loader, version, and a human display name,
// and flags core libraries that are exempt from minority-loader cleanup.
//
// Classification is best-effort by design: it never errors, and names it
// cannot decode degrade to LoaderUnknown with an empty version. The rule
// data (loader keywords, exemption set, dependency pairs) lives in Rules
// so callers can extend it from configuration.
package classify
