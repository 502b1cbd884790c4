package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/Hxs123/squads-grinder/pkg/generator"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	purple = color.New(color.FgMagenta, color.Bold)
	dim    = color.New(color.Faint)
)

// SetColor turns colored output on or off for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Console writes search progress for a human operator.
// It implements coordinator.Reporter.
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing to out (stdout if nil).
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// Banner shows the tool name and version.
func (c *Console) Banner(version string) {
	cyan.Fprint(c.out, "◆ SQUADS GRINDER")
	dim.Fprintf(c.out, " • v%s • Squads vault vanity address search\n", version)
}

// Searching announces the search parameters.
func (c *Console) Searching(workers int, pattern string, expected float64) {
	fmt.Fprintf(c.out, "Searching with %s threads for PDA that starts with '%s' %s\n",
		green.Sprint(workers), cyan.Sprint(pattern),
		dim.Sprintf("(~1 in %s)", FormatEstimate(expected)))
}

// Progress reports the running attempt count.
func (c *Console) Progress(attempts uint64, elapsed time.Duration) {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(attempts) / elapsed.Seconds()
	}
	fmt.Fprintf(c.out, "Searched %s keypairs in %s %s\n",
		yellow.Sprint(FormatNumber(attempts)), FormatDuration(elapsed),
		dim.Sprintf("(%s)", FormatHashRate(rate)))
}

// Found shows the matched create key and its derived addresses.
func (c *Console) Found(attempts uint64, elapsed time.Duration, result *generator.Result) {
	green.Fprintf(c.out, "Found after %s searches in %s\n", FormatNumber(attempts), FormatDuration(elapsed))
	fmt.Fprintf(c.out, "Found match: Create Key %s results in %s on Squads Multisig\n",
		purple.Sprint(result.PublicKey().String()), green.Sprint(result.Address()))
	fmt.Fprintf(c.out, "  %s %s\n", dim.Sprint("Multisig:"), result.Multisig.String())
	if result.Mnemonic != "" {
		fmt.Fprintf(c.out, "  %s %s\n", dim.Sprint("Mnemonic:"), yellow.Sprint(result.Mnemonic))
		red.Fprintln(c.out, "  ⚠  KEEP YOUR SEED PHRASE SECRET!")
	}
}

// Saved reports where the key pair was written.
func (c *Console) Saved(path string) {
	fmt.Fprintf(c.out, "Written to file: %s\n", cyan.Sprint(path))
}

// Cancelled reports an interrupted search.
func (c *Console) Cancelled(stats generator.Stats) {
	yellow.Fprintf(c.out, "⚠ Cancelled after %s searches in %s\n",
		FormatNumber(stats.Attempts), FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// Warning prints a non-fatal problem.
func (c *Console) Warning(msg string) {
	yellow.Fprintf(c.out, "⚠ %s\n", msg)
}

// Addresses prints the derived addresses of an existing create key.
func (c *Console) Addresses(createKey, multisig, vault string, authorityIndex uint8) {
	fmt.Fprintf(c.out, "%s %s\n", dim.Sprint("Create Key:"), purple.Sprint(createKey))
	fmt.Fprintf(c.out, "%s   %s\n", dim.Sprint("Multisig:"), multisig)
	fmt.Fprintf(c.out, "%s %s %s\n", dim.Sprint("Vault:"), dim.Sprintf("[%d]", authorityIndex), green.Sprint(vault))
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	return humanize.Comma(int64(n))
}

// FormatEstimate formats an expected attempt count.
func FormatEstimate(f float64) string {
	if f < 1e15 {
		return humanize.Comma(int64(f))
	}
	return fmt.Sprintf("%.2e", f)
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
