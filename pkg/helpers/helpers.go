package helpers

import (
	"flag"
	"io"
	"log"
	"time"

	"github.com/NickImpact/Impactor-sub004/pkg/catalog"
)

// Flags holds common CLI flags for the preview tools.
type Flags struct {
	Catalog string
	DB      string
	Title   string
	Rows    int
	Timeout time.Duration
	Delay   time.Duration
	Watch   bool
	Verbose bool
}

// RegisterFlags registers the standard CLI flags on the default flag set.
func RegisterFlags(f *Flags) {
	flag.StringVar(&f.Catalog, "catalog", "", "JSON catalog file (empty = built-in sample)")
	flag.StringVar(&f.DB, "db", "", "sqlite database; loads contents asynchronously when set")
	flag.StringVar(&f.Title, "title", "Catalog", "surface title")
	flag.IntVar(&f.Rows, "rows", 6, "surface rows (at least 5)")
	flag.DurationVar(&f.Timeout, "timeout", 5*time.Second, "async load timeout (0 = wait forever)")
	flag.DurationVar(&f.Delay, "delay", 0, "artificial async load delay")
	flag.BoolVar(&f.Watch, "watch", false, "reload the catalog file when it changes")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
}

// NewLogger creates the logger shared by every component. Verbose adds source locations.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	flags := log.Ltime
	if verbose {
		flags |= log.Lmicroseconds | log.Lshortfile
	}
	return log.New(w, "", flags)
}

// Entries loads the catalog named by f, or the built-in sample when none is set.
func Entries(f Flags) ([]catalog.Entry, error) {
	if f.Catalog == "" {
		return SampleEntries(), nil
	}
	return catalog.Load(f.Catalog)
}

// SampleEntries returns a small shop-like catalog.
func SampleEntries() []catalog.Entry {
	return []catalog.Entry{
		{Item: "minecraft:diamond", Count: 3},
		{Item: "minecraft:emerald", Count: 16},
		{Item: "minecraft:gold_ingot", Count: 64},
		{Item: "minecraft:iron_ingot", Count: 64},
		{Item: "minecraft:coal", Count: 32},
		{Item: "minecraft:redstone", Count: 64},
		{Item: "minecraft:lapis_lazuli", Count: 24},
		{Item: "minecraft:oak_log", Count: 64},
		{Item: "minecraft:spruce_log", Count: 48},
		{Item: "minecraft:birch_log", Count: 12},
		{Item: "minecraft:cobblestone", Count: 64},
		{Item: "minecraft:stone", Count: 64},
		{Item: "minecraft:sand", Count: 40},
		{Item: "minecraft:glass", Count: 8},
		{Item: "minecraft:bread", Count: 5},
		{Item: "minecraft:apple", Count: 7},
		{Item: "minecraft:golden_apple", Count: 1},
		{Item: "minecraft:ender_pearl", Count: 16},
		{Item: "minecraft:blaze_rod", Count: 4},
		{Item: "minecraft:string", Count: 64},
		{Item: "minecraft:bone", Count: 19},
		{Item: "minecraft:arrow", Count: 64},
		{Item: "minecraft:torch", Count: 64},
		{Item: "minecraft:book", Count: 2},
		{Label: "Sell all"},
	}
}
