package domain

// DistrictData describes one project area: its soil profile in both
// languages plus the internal name used by the advisory flow.
type DistrictData struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	DisplayName      LocalizedText `json:"displayName"`
	SoilTypes        LocalizedText `json:"soilTypes"`
	Characteristics  LocalizedText `json:"characteristics"`
	FrequentIssues   LocalizedText `json:"frequentIssues"`
	RecommendedCrops LocalizedText `json:"recommendedCrops"`
}

// DistrictField names a single editable field of a district.
type DistrictField string

const (
	DistrictFieldName             DistrictField = "name"
	DistrictFieldDisplayName      DistrictField = "displayName"
	DistrictFieldSoilTypes        DistrictField = "soilTypes"
	DistrictFieldCharacteristics  DistrictField = "characteristics"
	DistrictFieldFrequentIssues   DistrictField = "frequentIssues"
	DistrictFieldRecommendedCrops DistrictField = "recommendedCrops"
)

// AddDistrict appends the draft district with a fresh identifier. Empty
// required fields are seeded with the stock placeholders so both language
// entries of every localized field are always present.
func (c *SiteContent) AddDistrict(draft DistrictData) (*SiteContent, DistrictData) {
	next := c.Clone()
	draft.ID = NewID("dist")
	if draft.Name == "" {
		draft.Name = "New Area"
	}
	if draft.DisplayName.IsZero() {
		draft.DisplayName = Localized("አዲስ ወረዳ", "Aanaa Haaraa")
	}
	next.Districts = append(next.Districts, draft)
	return next, draft
}

// UpdateDistrictField replaces one field, or one language entry of a
// localized field, on the district with the given identifier. Unknown fields
// are an error; an unknown identifier is reported as found=false with the
// aggregate left unchanged.
func (c *SiteContent) UpdateDistrictField(id string, field DistrictField, lang Language, value string) (*SiteContent, bool, error) {
	next := c.Clone()
	for i := range next.Districts {
		if next.Districts[i].ID != id {
			continue
		}
		d := &next.Districts[i]
		switch field {
		case DistrictFieldName:
			d.Name = value
			return next, true, nil
		case DistrictFieldDisplayName:
			return next, true, d.DisplayName.Set(lang, value)
		case DistrictFieldSoilTypes:
			return next, true, d.SoilTypes.Set(lang, value)
		case DistrictFieldCharacteristics:
			return next, true, d.Characteristics.Set(lang, value)
		case DistrictFieldFrequentIssues:
			return next, true, d.FrequentIssues.Set(lang, value)
		case DistrictFieldRecommendedCrops:
			return next, true, d.RecommendedCrops.Set(lang, value)
		default:
			return next, true, ErrUnknownField
		}
	}
	if !validDistrictField(field) {
		return next, false, ErrUnknownField
	}
	return next, false, nil
}

// RemoveDistrict filters the district with the given identifier out of the
// collection; found=false when it never existed.
func (c *SiteContent) RemoveDistrict(id string) (next *SiteContent, found bool) {
	next = c.Clone()
	kept := next.Districts[:0]
	for _, d := range next.Districts {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	next.Districts = kept
	return next, found
}

func validDistrictField(field DistrictField) bool {
	switch field {
	case DistrictFieldName, DistrictFieldDisplayName, DistrictFieldSoilTypes,
		DistrictFieldCharacteristics, DistrictFieldFrequentIssues, DistrictFieldRecommendedCrops:
		return true
	}
	return false
}
