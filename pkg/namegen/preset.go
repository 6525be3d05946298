package namegen

import (
	"github.com/dmitrymomot/namekit/pkg/filename"
)

// Slot is one typed position in a preset's template.
type Slot string

const (
	SlotPrefix    Slot = "prefix"
	SlotAdjective Slot = "adjective"
	SlotNoun      Slot = "noun"
	SlotSuffix    Slot = "suffix"
	SlotDate      Slot = "date"
)

// Preset is a named generation rule: which slots a name is built from, how
// they are joined and cased, and which word banks may fill them. A Preset is
// immutable for the duration of a generation call; it is owned by the
// caller's configuration storage.
type Preset struct {
	ID   string
	Name string

	// Template is the ordered slot sequence. When empty, a default order of
	// prefix, adjective(s), noun, suffix, date is derived from the fields
	// below.
	Template  []Slot
	Delimiter string
	Case      filename.CaseStyle

	// AdjectiveCount is how many adjective slots the default template
	// carries. Zero means one.
	AdjectiveCount int

	// Prefix and Suffix are optional literal segments.
	Prefix string
	Suffix string

	// DateStamp appends a YYYYMMDD segment in the default template.
	DateStamp bool

	// Counter enables numeric-suffix probing when a candidate collides or
	// fails validation. CounterStart is the first value tried; zero means 1.
	Counter      bool
	CounterStart int

	// FilterNSFW excludes NSFW-flagged word banks before resolution.
	FilterNSFW bool

	// AdjectiveBankIDs and NounBankIDs are the bank ids this preset may draw
	// from, split by part of speech.
	AdjectiveBankIDs []string
	NounBankIDs      []string
}

// template returns the explicit slot order, or derives the default one.
func (p Preset) template() []Slot {
	if len(p.Template) > 0 {
		return p.Template
	}

	slots := make([]Slot, 0, p.adjectiveCount()+4)
	if p.Prefix != "" {
		slots = append(slots, SlotPrefix)
	}
	for range p.adjectiveCount() {
		slots = append(slots, SlotAdjective)
	}
	slots = append(slots, SlotNoun)
	if p.Suffix != "" {
		slots = append(slots, SlotSuffix)
	}
	if p.DateStamp {
		slots = append(slots, SlotDate)
	}
	return slots
}

func (p Preset) adjectiveCount() int {
	if p.AdjectiveCount <= 0 {
		return 1
	}
	return p.AdjectiveCount
}

func (p Preset) delimiter() string {
	if p.Delimiter == "" {
		return "-"
	}
	return p.Delimiter
}

func (p Preset) counterStart() int {
	if p.CounterStart <= 0 {
		return 1
	}
	return p.CounterStart
}
