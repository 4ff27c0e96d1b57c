package main

import "testing"

func TestDBFlagIsGlobalOnly(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Fatal("Expected a persistent --db flag on the root command")
	}

	// Subcommands inherit --db from the root; a local redefinition would
	// let the two defaults drift apart silently.
	for _, cmd := range rootCmd.Commands() {
		if cmd.LocalFlags().Lookup("db") != nil {
			t.Errorf("%s redefines --db locally", cmd.Name())
		}
	}
}
