package ui

import (
	"fmt"
	"io"

	"github.com/mr-tron/base58"

	"github.com/Hxs123/squads-grinder/pkg/generator"
)

// Error prints a formatted error with a title, the cause and optional
// suggestions to w. The returned error wraps cause so callers can still
// match it with errors.Is.
func Error(w io.Writer, title string, cause error, suggestions []string) error {
	red.Fprintf(w, "✗ %s\n", title)

	if cause != nil {
		fmt.Fprintf(w, "\n%s\n", cause)
	}

	if len(suggestions) > 0 {
		fmt.Fprintln(w)
		if len(suggestions) == 1 {
			dim.Fprintf(w, "%s\n", suggestions[0])
		} else {
			fmt.Fprintln(w, "Either:")
			for i, suggestion := range suggestions {
				dim.Fprintf(w, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	if cause == nil {
		return fmt.Errorf("%s", title)
	}
	return fmt.Errorf("%s: %w", title, cause)
}

// Unsaved prints the secret key of a match that could not be written, so the
// operator can store it by hand.
func Unsaved(w io.Writer, result *generator.Result) {
	red.Fprintln(w, "⚠  The keypair below was NOT saved. Copy it somewhere safe:")
	fmt.Fprintf(w, "   %s %s\n", dim.Sprint("Vault:     "), result.Address())
	fmt.Fprintf(w, "   %s %s\n", dim.Sprint("Secret key:"), yellow.Sprint(base58.Encode(result.CreateKey)))
	if result.Mnemonic != "" {
		fmt.Fprintf(w, "   %s %s\n", dim.Sprint("Mnemonic:  "), yellow.Sprint(result.Mnemonic))
	}
}
