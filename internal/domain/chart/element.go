// Package chart defines the input contract shared with the upstream chart
// computation engine: the five elements, heavenly stems, earthly branches,
// seasonal states, pillar positions, and the raw interaction records the
// analyzer consumes. Nothing in this package computes a chart; it only models
// what the upstream engine hands over.
package chart

import "strings"

// Element is one of the five elements (wu xing).
type Element string

const (
	ElementWood  Element = "Wood"
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementMetal Element = "Metal"
	ElementWater Element = "Water"
)

// producing is the sheng cycle: each element feeds the next.
var producing = map[Element]Element{
	ElementWood:  ElementFire,
	ElementFire:  ElementEarth,
	ElementEarth: ElementMetal,
	ElementMetal: ElementWater,
	ElementWater: ElementWood,
}

// controlling is the ke cycle: each element restrains its target.
var controlling = map[Element]Element{
	ElementWood:  ElementEarth,
	ElementFire:  ElementMetal,
	ElementEarth: ElementWater,
	ElementMetal: ElementWood,
	ElementWater: ElementFire,
}

// organSystems maps each element to its classical organ pairing.
var organSystems = map[Element]string{
	ElementWood:  "liver and gallbladder",
	ElementFire:  "heart and small intestine",
	ElementEarth: "spleen and stomach",
	ElementMetal: "lungs and large intestine",
	ElementWater: "kidneys and bladder",
}

var elementGlyphs = map[Element]string{
	ElementWood:  "木",
	ElementFire:  "火",
	ElementEarth: "土",
	ElementMetal: "金",
	ElementWater: "水",
}

// AllElements returns the five elements in generation order.
func AllElements() []Element {
	return []Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}
}

// ParseElement resolves a free-form element token, case-insensitively.
func ParseElement(s string) (Element, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wood":
		return ElementWood, true
	case "fire":
		return ElementFire, true
	case "earth":
		return ElementEarth, true
	case "metal":
		return ElementMetal, true
	case "water":
		return ElementWater, true
	}
	return "", false
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool {
	_, ok := producing[e]
	return ok
}

// Produces returns the element e feeds in the generative cycle.
func (e Element) Produces() Element {
	return producing[e]
}

// Controls returns the element e restrains in the controlling cycle.
func (e Element) Controls() Element {
	return controlling[e]
}

// AdjacentTo reports whether other sits directly downstream of e in either
// cycle, checked directionally from e. The Day-Master relevance multiplier
// keys off this relation.
func (e Element) AdjacentTo(other Element) bool {
	return producing[e] == other || controlling[e] == other
}

// WealthElement returns the element the given Day Master counts as wealth:
// the one it controls.
func (e Element) WealthElement() Element {
	return controlling[e]
}

// OrganSystem returns the organ pairing governed by e, empty for an
// invalid element.
func (e Element) OrganSystem() string {
	return organSystems[e]
}

// Glyph returns the native-script character for the element.
func (e Element) Glyph() string {
	return elementGlyphs[e]
}
