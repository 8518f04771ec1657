package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmDeletion asks the user to approve the destructive cleanup
// stage. Only y or n (case-insensitive) are accepted; anything else
// re-prompts. EOF counts as a decline.
func confirmDeletion(in io.Reader, out io.Writer) (bool, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Delete conflicting mods? [y/n]: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("read confirmation: %w", err)
			}
			fmt.Fprintln(out)
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}
