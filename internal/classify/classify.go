package classify

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"modcheck/internal/textutil"
)

// Record describes one discovered mod file. FilePath is unique within a
// scan; Status and MissingDeps are filled in later by the conflict
// analyzer.
type Record struct {
	FilePath      string
	FileName      string
	DisplayName   string
	Loader        Loader
	Version       string
	IsCoreLibrary bool
	Status        Status
	MissingDeps   []string
}

// versionPattern matches a numeric-dot version token with an optional
// pre-release or build suffix: 0.5.1, 1.20.1, 1.6.4-beta.2, 0.5.8+mc1.20.1.
// Suffix words are restricted to the usual pre-release vocabulary so that
// trailing loader tokens ("-forge") are not mistaken for part of the
// version.
var versionPattern = regexp.MustCompile(`(?i)\d+(?:\.\d+)+(?:[-+](?:\d|alpha|beta|rc|pre|snapshot|hotfix|mc\d)[0-9A-Za-z]*(?:\.[0-9A-Za-z]+)*)*`)

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// Classify derives a Record from a mod file path using the ordered rule
// list. It never fails: an unparseable name degrades to LoaderUnknown and
// an empty version.
//
// The rule order is fixed: strip the archive extension, find the loader
// keyword (first keyword in Rules.Keywords that appears as a substring
// wins, so longer tokens shadow their prefixes), take the last
// version-like token, then assemble the display name from what remains.
func Classify(path string, rules Rules) Record {
	fileName := filepath.Base(path)
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	loader, loaderToken := matchLoader(stem, rules)
	version, stripped := extractVersion(stem)
	displayName := deriveDisplayName(stripped, loaderToken)
	if displayName == "" {
		displayName = titleCase(textutil.JoinWords(textutil.Tokens(stem)))
	}

	// The exemption check also considers the name with the loader token
	// still in place: "quilted-fabric-api" must stay exempt even though
	// "fabric" is removed from its display name.
	core := rules.IsCoreLibrary(displayName) || rules.IsCoreLibrary(stripped)

	return Record{
		FilePath:      path,
		FileName:      fileName,
		DisplayName:   displayName,
		Loader:        loader,
		Version:       version,
		IsCoreLibrary: core,
		Status:        StatusOK,
	}
}

func matchLoader(stem string, rules Rules) (Loader, string) {
	lower := strings.ToLower(stem)
	for _, kw := range rules.Keywords {
		if strings.Contains(lower, kw.Token) {
			return kw.Loader, kw.Token
		}
	}
	return LoaderUnknown, ""
}

// extractVersion removes the last version-like token from the stem and
// returns it alongside the remaining text.
func extractVersion(stem string) (version, remainder string) {
	matches := versionPattern.FindAllStringIndex(stem, -1)
	if len(matches) == 0 {
		return "", stem
	}
	last := matches[len(matches)-1]
	version = stem[last[0]:last[1]]
	remainder = stem[:last[0]] + stem[last[1]:]
	return version, remainder
}

// deriveDisplayName drops the loader token and normalizes separators.
// The loader token is only removed when it stands alone as a delimited
// word and is not the leading one: in "create-forge-0.5.1" the "forge"
// marks the build flavor, while in "fabric-api" it is part of the mod's
// actual name.
func deriveDisplayName(stripped, loaderToken string) string {
	tokens := textutil.Tokens(stripped)
	if loaderToken != "" {
		for i := len(tokens) - 1; i > 0; i-- {
			if strings.EqualFold(tokens[i], loaderToken) {
				tokens = append(tokens[:i], tokens[i+1:]...)
				break
			}
		}
	}
	// Drop leftover single-letter version markers ("v" from v1.2).
	kept := tokens[:0]
	for _, tok := range tokens {
		if strings.EqualFold(tok, "v") || strings.EqualFold(tok, "mc") {
			continue
		}
		kept = append(kept, tok)
	}
	return titleCase(textutil.JoinWords(kept))
}
