package domain

// CustomModule is an operator-defined page block referenced by sections of
// type custom.
type CustomModule struct {
	ID              string        `json:"id"`
	Icon            string        `json:"icon"`
	Title           LocalizedText `json:"title"`
	Description     LocalizedText `json:"description"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
}

// CustomModuleField names a single editable field of a custom module.
type CustomModuleField string

const (
	CustomModuleFieldIcon            CustomModuleField = "icon"
	CustomModuleFieldTitle           CustomModuleField = "title"
	CustomModuleFieldDescription     CustomModuleField = "description"
	CustomModuleFieldBackgroundColor CustomModuleField = "backgroundColor"
)

// AddCustomModule appends the draft module with a fresh identifier.
func (c *SiteContent) AddCustomModule(draft CustomModule) (*SiteContent, CustomModule) {
	next := c.Clone()
	draft.ID = NewID("mod")
	if draft.Icon == "" {
		draft.Icon = "🧩"
	}
	if draft.Title.IsZero() {
		draft.Title = Localized("አዲስ ሞጁል", "Moojuula Haaraa")
	}
	next.CustomModules = append(next.CustomModules, draft)
	return next, draft
}

// UpdateCustomModuleField replaces one field, or one language entry of a
// localized field, on the module with the given identifier.
func (c *SiteContent) UpdateCustomModuleField(id string, field CustomModuleField, lang Language, value string) (*SiteContent, bool, error) {
	next := c.Clone()
	for i := range next.CustomModules {
		if next.CustomModules[i].ID != id {
			continue
		}
		m := &next.CustomModules[i]
		switch field {
		case CustomModuleFieldIcon:
			m.Icon = value
			return next, true, nil
		case CustomModuleFieldTitle:
			return next, true, m.Title.Set(lang, value)
		case CustomModuleFieldDescription:
			return next, true, m.Description.Set(lang, value)
		case CustomModuleFieldBackgroundColor:
			m.BackgroundColor = value
			return next, true, nil
		default:
			return next, true, ErrUnknownField
		}
	}
	if !validCustomModuleField(field) {
		return next, false, ErrUnknownField
	}
	return next, false, nil
}

// RemoveCustomModule filters the module with the given identifier out of the
// collection; found=false when it never existed. Sections still pointing at
// the removed module keep their reference; the renderer skips them.
func (c *SiteContent) RemoveCustomModule(id string) (next *SiteContent, found bool) {
	next = c.Clone()
	kept := next.CustomModules[:0]
	for _, m := range next.CustomModules {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	next.CustomModules = kept
	return next, found
}

func validCustomModuleField(field CustomModuleField) bool {
	switch field {
	case CustomModuleFieldIcon, CustomModuleFieldTitle, CustomModuleFieldDescription, CustomModuleFieldBackgroundColor:
		return true
	}
	return false
}
