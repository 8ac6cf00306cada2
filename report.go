package locrank

import "strconv"

// DefaultTagTypes returns the element types scanned when none are configured.
func DefaultTagTypes() []string {
	return []string{"input", "select", "a", "button"}
}

// Entry is one named element and its ranked locators.
type Entry struct {
	Name     string
	Locators []Locator
}

// Report holds the ranked locators for every element of one tag type,
// keyed by display name in the order elements were found.
type Report struct {
	Tag     string
	Entries []Entry

	// Replaced counts entries overwritten because a later element derived
	// the same display name.
	Replaced int

	index map[string]int
}

// NewReport creates an empty Report for the tag type.
func NewReport(tag string) *Report {
	return &Report{Tag: tag, index: make(map[string]int)}
}

// Put stores locators under name. If the name already exists its locators
// are replaced in place, keeping the original position, and Put returns true.
func (r *Report) Put(name string, locators []Locator) bool {
	if r.index == nil {
		r.reindex()
	}
	if i, ok := r.index[name]; ok {
		r.Entries[i].Locators = locators
		r.Replaced++
		return true
	}
	r.index[name] = len(r.Entries)
	r.Entries = append(r.Entries, Entry{Name: name, Locators: locators})
	return false
}

// Get returns the locators stored under name.
func (r *Report) Get(name string) ([]Locator, bool) {
	if r.index == nil {
		r.reindex()
	}
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.Entries[i].Locators, true
}

// reindex rebuilds the name index from Entries, for reports built as
// literals or decoded from JSON.
func (r *Report) reindex() {
	r.index = make(map[string]int, len(r.Entries))
	for i, e := range r.Entries {
		r.index[e.Name] = i
	}
}

// Len returns the number of distinct names in the report.
func (r *Report) Len() int {
	return len(r.Entries)
}

// DisplayName derives the report name for an element: the raw class
// attribute if present, else the id, else its 1-based position among
// elements of the same tag type.
func DisplayName(tagType string, el Element, position int) string {
	if class, ok := el.Attr("class"); ok {
		return tagType + "_" + class
	}
	if id, ok := el.Attr("id"); ok {
		return tagType + "_" + id
	}
	return tagType + "_" + strconv.Itoa(position)
}

// BuildReport ranks the locators of every element of the tag type in doc.
//
// Elements that derive the same display name overwrite each other; only the
// last one's locators survive, at the first one's position.
func BuildReport(doc Document, tagType string, ranker *Ranker) (*Report, error) {
	elements, err := doc.Elements(tagType)
	if err != nil {
		return nil, err
	}

	report := NewReport(tagType)
	for i, el := range elements {
		report.Put(DisplayName(tagType, el, i+1), ranker.Rank(el))
	}
	return report, nil
}

// BuildReports builds one report per tag type, in order.
// It stops at the first error and returns no reports.
func BuildReports(doc Document, tagTypes []string, ranker *Ranker) ([]*Report, error) {
	reports := make([]*Report, 0, len(tagTypes))
	for _, tag := range tagTypes {
		report, err := BuildReport(doc, tag, ranker)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
