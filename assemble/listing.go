package assemble

import "github.com/kallisti-dev/word24asm/encoder"

// ListingLine is one entry of the human-readable listing described in the
// glossary: a source line paired with the address and words it assembled to.
// Directive lines that produce no words (.extern, .entry) are not listed.
type ListingLine struct {
	Addr   int
	Words  []encoder.Word
	Source string
}

// dataListingLine is a first-pass-only intermediate: the data words it
// produced, keyed by the DC offset at the start of the line rather than the
// final address, since DATA addresses are only finalized once IC's final
// value is known (§4.8 point 4).
type dataListingLine struct {
	DCOffset int
	Words    []encoder.Word
	Source   string
}

func (d dataListingLine) resolve(finalIC int) ListingLine {
	return ListingLine{Addr: finalIC + d.DCOffset, Words: d.Words, Source: d.Source}
}
