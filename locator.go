package locrank

import (
	"cmp"
	"slices"
	"strings"
)

// Locator is a selector string paired with its rank.
// Lower ranks identify more robust locators.
type Locator struct {
	Selector string
	Rank     int
}

// Strategy names a way of addressing an element.
type Strategy string

// Supported locator strategies.
const (
	StrategyIDCSS      Strategy = "id_css"
	StrategyClassCSS   Strategy = "class_css"
	StrategyNameCSS    Strategy = "name_css"
	StrategyIDXPath    Strategy = "id_xpath"
	StrategyClassXPath Strategy = "class_xpath"
	StrategyNameXPath  Strategy = "name_xpath"
	StrategyData       Strategy = "data-*"
	StrategyType       Strategy = "type"
	StrategyHref       Strategy = "href"
)

// dataAttrPrefix marks custom data attributes (data-testid, data-qa, ...).
const dataAttrPrefix = "data-"

// RankTable maps each strategy to its preference. It cannot be modified
// after construction.
type RankTable struct {
	ranks map[Strategy]int
}

// DefaultRankTable returns the standard preference ordering: CSS id, class
// and name selectors first, then their XPath equivalents, then data
// attributes, type and href.
func DefaultRankTable() RankTable {
	return RankTable{ranks: map[Strategy]int{
		StrategyIDCSS:      1,
		StrategyClassCSS:   2,
		StrategyNameCSS:    3,
		StrategyIDXPath:    4,
		StrategyClassXPath: 5,
		StrategyNameXPath:  6,
		StrategyData:       7,
		StrategyType:       8,
		StrategyHref:       9,
	}}
}

// Rank returns the preference for the strategy.
// Unknown strategies return 0.
func (t RankTable) Rank(s Strategy) int {
	return t.ranks[s]
}

// Ranker derives ranked locators for elements.
type Ranker struct {
	table RankTable
}

// NewRanker creates a new Ranker using the given rank table.
func NewRanker(table RankTable) *Ranker {
	return &Ranker{table: table}
}

// Rank returns every applicable locator for the element, sorted by rank
// ascending. Locators with equal rank keep the order their strategies were
// evaluated in: id, class, name, data-*, type, href. An element with none of
// the recognized attributes yields an empty slice.
//
// Attribute values are embedded verbatim; quotes inside values are not
// escaped, so a value containing ' produces a selector that will not parse.
func (r *Ranker) Rank(el Element) []Locator {
	locators := []Locator{}
	add := func(selector string, s Strategy) {
		locators = append(locators, Locator{Selector: selector, Rank: r.table.Rank(s)})
	}

	if id, ok := el.Attr("id"); ok {
		add("#"+id, StrategyIDCSS)
		add(xpath(el.Tag, "id", id), StrategyIDXPath)
	}

	if class, ok := el.Attr("class"); ok {
		add("."+strings.ReplaceAll(class, " ", "."), StrategyClassCSS)
		add(xpath(el.Tag, "class", class), StrategyClassXPath)
	}

	if name, ok := el.Attr("name"); ok {
		add("[name='"+name+"']", StrategyNameCSS)
		add(xpath(el.Tag, "name", name), StrategyNameXPath)
	}

	for _, a := range el.Attributes {
		if strings.HasPrefix(a.Key, dataAttrPrefix) {
			add(xpath(el.Tag, a.Key, a.Val), StrategyData)
		}
	}

	if typ, ok := el.Attr("type"); ok {
		add(xpath(el.Tag, "type", typ), StrategyType)
	}

	if el.Tag == "a" {
		if href, ok := el.Attr("href"); ok {
			add(xpath("a", "href", href), StrategyHref)
		}
	}

	slices.SortStableFunc(locators, func(a, b Locator) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return locators
}

// xpath builds //tag[@attr='value'].
func xpath(tag, attr, value string) string {
	return "//" + tag + "[@" + attr + "='" + value + "']"
}
