// FILE: configfile/doc.go

// Package configfile provides permanent storage of hierarchical
// configuration data in human-readable text files: a tree of named sections,
// each holding ordered tag/value pairs and nested subsections.
//
// Features:
//   - Recursive text format with sections ("name { ... }"), tag/value
//     lines, '#' comments, and quoted values; exact round-trip
//   - Slash-separated paths with absolute ('/'), parent ('..') and
//     create-on-demand resolution
//   - Merge overlays from other files and from "-tag value" command-line
//     arguments
//   - Transfer of a whole tree over an ordered byte stream between
//     cooperating processes
//   - Typed value access through pluggable value coders, plus struct
//     decoding via mapstructure and TOML/YAML export for interop
//
// Quick Start:
//
//	cfg, err := configfile.Open("devices.cfg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := cfg.SetCurrentSection("/devices/mouse"); err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := cfg.CurrentSection().String("deviceName")
//	axes, _ := cfg.CurrentSection().IntDefault("numAxes", 2)
//
//	cfg.CurrentSection().StoreTagValue("calibrated", "true")
//	if err := cfg.Save(); err != nil { // no-op when nothing was edited
//	    log.Fatal(err)
//	}
//
// Concurrency:
// A ConfigFile and its sections are not safe for concurrent use. The tree
// is designed for single-goroutine, synchronous access; callers sharing one
// must serialize themselves.
package configfile
