package main

import "testing"

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()
	if cmd.Use != "modcheck [path]" {
		t.Errorf("use = %q", cmd.Use)
	}

	want := map[string]bool{"scan": false, "clean": false, "config": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag missing")
	}
}
