// Package config holds the CLI-branching options every other package in
// this module consults (spec.md §6). It plays the same role the teacher's
// internal/config.Config played for the email inliner: a single struct
// built once from flags (or Default()) and threaded down through the
// pipeline, generalized here from "how do we optimize CSS for an email
// client" to "how do we normalize this proofing rendition".
package config

// CleanupType selects the rounds-text cleaning depth (spec.md §4.5,
// --txt-cleanup-type).
type CleanupType int

const (
	// CleanupBest additionally converts/removes <i>/<b> markup, strips
	// proofers' notes and regroups split words (each under its own
	// option), and strips block markup. The default.
	CleanupBest CleanupType = iota
	// CleanupProofers strips boilerplate, page markers, and [Blank page].
	CleanupProofers
	// CleanupNone strips only Project Gutenberg boilerplate.
	CleanupNone
)

// ParseCleanupType maps the -b/-n/-p flag letters (spec.md §6:
// --txt-cleanup-type {b|n|p}) to a CleanupType. Unrecognized input falls
// back to CleanupBest, the documented default.
func ParseCleanupType(s string) CleanupType {
	switch s {
	case "n":
		return CleanupNone
	case "p":
		return CleanupProofers
	default:
		return CleanupBest
	}
}

// Options is the complete set of flags spec.md §6 enumerates, exactly as
// the teacher's Config held every flag its CLI surface branched on.
type Options struct {
	// Shared across both sides.
	IgnoreCase               bool
	ExtractFootnotes         bool
	SuppressFootnoteTags     bool
	SuppressIllustrationTags bool
	SuppressSidenoteTags     bool

	// Text-cleaner options (C6).
	IgnoreFormat          bool
	SuppressProofersNotes bool
	RegroupSplitWords     bool
	TxtCleanupType        CleanupType

	// HTML lowerer options (C5).
	AddIllustration    bool
	AddSidenote        bool
	SuppressNBSPNum    bool
	IgnoreZeroSpace    bool
	SmallCapsTransform string // "", "U", "L", "T"
	BoldSentinel       string // overrides the default "=" bold sentinel
	ExtraCSS           []string
	NoDefaultCSS       bool
	SimpleHTML         bool
	GreekTitlePlus     bool
}

// Default returns the conservative defaults spec.md documents: defaults
// stylesheet enabled, "best" text cleanup, no footnote extraction.
func Default() Options {
	return Options{
		TxtCleanupType: CleanupBest,
	}
}
