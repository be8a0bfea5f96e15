package domain

// SectionType enumerates the page blocks the renderer understands. Unknown
// types are tolerated by the renderer contract (rendered as nothing), but the
// editor only ever creates types from this set.
type SectionType string

const (
	SectionHero    SectionType = "hero"
	SectionAdvisor SectionType = "advisor"
	SectionLibrary SectionType = "library"
	SectionIssues  SectionType = "issues"
	SectionContact SectionType = "contact"
	SectionStats   SectionType = "stats"
	SectionCustom  SectionType = "custom"
	SectionWeather SectionType = "weather"
)

// Valid reports whether the type belongs to the closed section set.
func (t SectionType) Valid() bool {
	switch t {
	case SectionHero, SectionAdvisor, SectionLibrary, SectionIssues,
		SectionContact, SectionStats, SectionCustom, SectionWeather:
		return true
	}
	return false
}

// MoveDirection selects the neighbor a section is swapped with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// PageSection is one ordered, typed unit of the rendered page. Slice order in
// SiteContent.ActiveSections is the rendering order.
type PageSection struct {
	ID       string      `json:"id"`
	Type     SectionType `json:"type"`
	CustomID string      `json:"customId,omitempty"`
}

// AppendSection returns a new aggregate with a freshly identified section of
// the given type appended to the end of the sequence.
func (c *SiteContent) AppendSection(t SectionType, customID string) (*SiteContent, PageSection) {
	next := c.Clone()
	section := PageSection{ID: NewID("sec"), Type: t}
	if t == SectionCustom {
		section.CustomID = customID
	}
	next.ActiveSections = append(next.ActiveSections, section)
	return next, section
}

// MoveSection swaps the section at index with its neighbor in the given
// direction. Moving the first section up or the last one down is a structural
// no-op: the returned aggregate equals the receiver and moved is false.
func (c *SiteContent) MoveSection(index int, dir MoveDirection) (moved *SiteContent, ok bool) {
	next := c.Clone()
	if index < 0 || index >= len(next.ActiveSections) {
		return next, false
	}
	target := index + 1
	if dir == MoveUp {
		target = index - 1
	}
	if target < 0 || target >= len(next.ActiveSections) {
		return next, false
	}
	sections := next.ActiveSections
	sections[index], sections[target] = sections[target], sections[index]
	return next, true
}

// RemoveSection filters the section with the given identifier out of the
// sequence. Removing an unknown identifier leaves the sequence unchanged and
// reports found=false.
func (c *SiteContent) RemoveSection(id string) (next *SiteContent, found bool) {
	next = c.Clone()
	kept := next.ActiveSections[:0]
	for _, s := range next.ActiveSections {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	next.ActiveSections = kept
	return next, found
}
