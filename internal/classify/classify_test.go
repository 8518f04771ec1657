package classify

import (
	"testing"
)

func TestClassifyLoaderKeywords(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		file   string
		loader Loader
	}{
		{"create-forge-0.5.1.jar", LoaderForge},
		{"jei-forge-15.3.1.jar", LoaderForge},
		{"sodium-fabric-0.5.8.jar", LoaderFabric},
		{"ok_zoomer-neoforge-21.1.3.jar", LoaderNeoForge},
		{"chest-tracker-quilt-1.2.0.jar", LoaderQuilt},
		{"optifine_1.20.1.jar", LoaderUnknown},
		{"worldedit-7.2.15.jar", LoaderUnknown},
	}

	for _, tc := range tests {
		rec := Classify(tc.file, rules)
		if rec.Loader != tc.loader {
			t.Errorf("%s: loader = %s, want %s", tc.file, rec.Loader, tc.loader)
		}
	}
}

func TestClassifyNeoForgeBeatsForge(t *testing.T) {
	rec := Classify("sophisticated-neoforge-3.20.5.jar", DefaultRules())
	if rec.Loader != LoaderNeoForge {
		t.Fatalf("loader = %s, want NeoForge (longest keyword wins)", rec.Loader)
	}
}

func TestClassifyVersion(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		file    string
		version string
	}{
		{"create-forge-0.5.1.jar", "0.5.1"},
		{"fabric-api-0.92.0.jar", "0.92.0"},
		{"sodium-fabric-0.5.8+mc1.20.1.jar", "0.5.8+mc1.20.1"},
		{"iris-1.6.4-beta.2.jar", "1.6.4-beta.2"},
		{"somemod.jar", ""},
	}

	for _, tc := range tests {
		rec := Classify(tc.file, rules)
		if rec.Version != tc.version {
			t.Errorf("%s: version = %q, want %q", tc.file, rec.Version, tc.version)
		}
	}
}

func TestClassifyDisplayName(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		file string
		name string
	}{
		{"create-forge-0.5.1.jar", "Create"},
		{"jei-forge-15.3.1.jar", "Jei"},
		{"fabric-api-0.92.0.jar", "Fabric Api"},
		{"roughly_enough_items-12.0.684.jar", "Roughly Enough Items"},
	}

	for _, tc := range tests {
		rec := Classify(tc.file, rules)
		if rec.DisplayName != tc.name {
			t.Errorf("%s: display name = %q, want %q", tc.file, rec.DisplayName, tc.name)
		}
	}
}

func TestClassifyCoreLibrary(t *testing.T) {
	rules := DefaultRules()

	if rec := Classify("fabric-api-0.92.0.jar", rules); !rec.IsCoreLibrary {
		t.Error("fabric-api should be a core library")
	}
	if rec := Classify("quilted-fabric-api-7.0.0.jar", rules); !rec.IsCoreLibrary {
		t.Error("quilted-fabric-api should stay exempt despite loader token removal")
	}
	if rec := Classify("architectury-9.1.12-forge.jar", rules); !rec.IsCoreLibrary {
		t.Error("architectury should be a core library")
	}
	if rec := Classify("create-forge-0.5.1.jar", rules); rec.IsCoreLibrary {
		t.Error("create is not a core library")
	}
}

func TestClassifyNeverErrors(t *testing.T) {
	rules := DefaultRules()
	for _, file := range []string{"", ".jar", "---.jar", "1.2.3.jar", "☃.jar"} {
		rec := Classify(file, rules)
		if rec.Status != StatusOK {
			t.Errorf("%q: classifier must leave status at OK", file)
		}
	}
}

func TestRulesExtend(t *testing.T) {
	base := DefaultRules()
	extended := base.Extend(
		[]string{"my-lib"},
		map[string][]string{"mymod": {"my-lib"}},
	)

	if !extended.IsCoreLibrary("My Lib") {
		t.Error("extended exemption not applied")
	}
	if base.IsCoreLibrary("My Lib") {
		t.Error("Extend must not mutate the receiver")
	}
	if deps := extended.RequiredBy("MyMod"); len(deps) != 1 || deps[0] != "my-lib" {
		t.Errorf("unexpected deps: %v", deps)
	}
}
