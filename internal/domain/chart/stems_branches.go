package chart

import "strings"

// Stem is one of the ten heavenly stems.
type Stem string

const (
	StemJia  Stem = "Jia"
	StemYi   Stem = "Yi"
	StemBing Stem = "Bing"
	StemDing Stem = "Ding"
	StemWu   Stem = "Wu"
	StemJi   Stem = "Ji"
	StemGeng Stem = "Geng"
	StemXin  Stem = "Xin"
	StemRen  Stem = "Ren"
	StemGui  Stem = "Gui"
)

// Branch is one of the twelve earthly branches.
type Branch string

const (
	BranchZi   Branch = "Zi"
	BranchChou Branch = "Chou"
	BranchYin  Branch = "Yin"
	BranchMao  Branch = "Mao"
	BranchChen Branch = "Chen"
	BranchSi   Branch = "Si"
	BranchWu   Branch = "Wu"
	BranchWei  Branch = "Wei"
	BranchShen Branch = "Shen"
	BranchYou  Branch = "You"
	BranchXu   Branch = "Xu"
	BranchHai  Branch = "Hai"
)

var stemElements = map[Stem]Element{
	StemJia:  ElementWood,
	StemYi:   ElementWood,
	StemBing: ElementFire,
	StemDing: ElementFire,
	StemWu:   ElementEarth,
	StemJi:   ElementEarth,
	StemGeng: ElementMetal,
	StemXin:  ElementMetal,
	StemRen:  ElementWater,
	StemGui:  ElementWater,
}

var branchElements = map[Branch]Element{
	BranchZi:   ElementWater,
	BranchChou: ElementEarth,
	BranchYin:  ElementWood,
	BranchMao:  ElementWood,
	BranchChen: ElementEarth,
	BranchSi:   ElementFire,
	BranchWu:   ElementFire,
	BranchWei:  ElementEarth,
	BranchShen: ElementMetal,
	BranchYou:  ElementMetal,
	BranchXu:   ElementEarth,
	BranchHai:  ElementWater,
}

// yangStems and yangBranches carry positive polarity; the rest are yin.
var yangStems = map[Stem]bool{
	StemJia: true, StemBing: true, StemWu: true, StemGeng: true, StemRen: true,
}

var yangBranches = map[Branch]bool{
	BranchZi: true, BranchYin: true, BranchChen: true,
	BranchWu: true, BranchShen: true, BranchXu: true,
}

var branchGlyphs = map[Branch]string{
	BranchZi: "子", BranchChou: "丑", BranchYin: "寅", BranchMao: "卯",
	BranchChen: "辰", BranchSi: "巳", BranchWu: "午", BranchWei: "未",
	BranchShen: "申", BranchYou: "酉", BranchXu: "戌", BranchHai: "亥",
}

var stemGlyphs = map[Stem]string{
	StemJia: "甲", StemYi: "乙", StemBing: "丙", StemDing: "丁", StemWu: "戊",
	StemJi: "己", StemGeng: "庚", StemXin: "辛", StemRen: "壬", StemGui: "癸",
}

// AllStems returns the ten stems in canonical order.
func AllStems() []Stem {
	return []Stem{
		StemJia, StemYi, StemBing, StemDing, StemWu,
		StemJi, StemGeng, StemXin, StemRen, StemGui,
	}
}

// AllBranches returns the twelve branches in canonical order.
func AllBranches() []Branch {
	return []Branch{
		BranchZi, BranchChou, BranchYin, BranchMao, BranchChen, BranchSi,
		BranchWu, BranchWei, BranchShen, BranchYou, BranchXu, BranchHai,
	}
}

// ParseStem resolves a free-form stem token, case-insensitively.
func ParseStem(s string) (Stem, bool) {
	for _, st := range AllStems() {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// ParseBranch resolves a free-form branch token, case-insensitively.
func ParseBranch(s string) (Branch, bool) {
	for _, b := range AllBranches() {
		if strings.EqualFold(strings.TrimSpace(s), string(b)) {
			return b, true
		}
	}
	return "", false
}

// Element returns the stem's element.
func (s Stem) Element() Element {
	return stemElements[s]
}

// Element returns the branch's element.
func (b Branch) Element() Element {
	return branchElements[b]
}

// Yang reports the stem's polarity.
func (s Stem) Yang() bool {
	return yangStems[s]
}

// Yang reports the branch's polarity.
func (b Branch) Yang() bool {
	return yangBranches[b]
}

// Glyph returns the native-script character for the stem.
func (s Stem) Glyph() string {
	return stemGlyphs[s]
}

// Glyph returns the native-script character for the branch.
func (b Branch) Glyph() string {
	return branchGlyphs[b]
}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool {
	_, ok := stemElements[s]
	return ok
}

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool {
	_, ok := branchElements[b]
	return ok
}
