package domain

// SoilIssue is one entry of the soil-problem knowledge base.
type SoilIssue struct {
	ID             string        `json:"id"`
	Title          LocalizedText `json:"title"`
	Description    LocalizedText `json:"description"`
	Recommendation LocalizedText `json:"recommendation"`
	ImageURL       string        `json:"imageUrl"`
}

// SoilIssueField names a single editable field of a soil issue.
type SoilIssueField string

const (
	SoilIssueFieldTitle          SoilIssueField = "title"
	SoilIssueFieldDescription    SoilIssueField = "description"
	SoilIssueFieldRecommendation SoilIssueField = "recommendation"
	SoilIssueFieldImageURL       SoilIssueField = "imageUrl"
)

const defaultIssueImageURL = "https://images.unsplash.com/photo-1589923188900-85dae523342b?auto=format&fit=crop&q=80&w=400"

// AddSoilIssue appends the draft issue with a fresh identifier, seeding the
// title and image with the stock placeholders when the caller left them out.
func (c *SiteContent) AddSoilIssue(draft SoilIssue) (*SiteContent, SoilIssue) {
	next := c.Clone()
	draft.ID = NewID("issue")
	if draft.Title.IsZero() {
		draft.Title = Localized("አዲስ ችግር", "Rakkoo Haaraa")
	}
	if draft.ImageURL == "" {
		draft.ImageURL = defaultIssueImageURL
	}
	next.SoilIssues = append(next.SoilIssues, draft)
	return next, draft
}

// UpdateSoilIssueField replaces one field, or one language entry of a
// localized field, on the issue with the given identifier.
func (c *SiteContent) UpdateSoilIssueField(id string, field SoilIssueField, lang Language, value string) (*SiteContent, bool, error) {
	next := c.Clone()
	for i := range next.SoilIssues {
		if next.SoilIssues[i].ID != id {
			continue
		}
		issue := &next.SoilIssues[i]
		switch field {
		case SoilIssueFieldTitle:
			return next, true, issue.Title.Set(lang, value)
		case SoilIssueFieldDescription:
			return next, true, issue.Description.Set(lang, value)
		case SoilIssueFieldRecommendation:
			return next, true, issue.Recommendation.Set(lang, value)
		case SoilIssueFieldImageURL:
			issue.ImageURL = value
			return next, true, nil
		default:
			return next, true, ErrUnknownField
		}
	}
	if !validSoilIssueField(field) {
		return next, false, ErrUnknownField
	}
	return next, false, nil
}

// RemoveSoilIssue filters the issue with the given identifier out of the
// collection; found=false when it never existed.
func (c *SiteContent) RemoveSoilIssue(id string) (next *SiteContent, found bool) {
	next = c.Clone()
	kept := next.SoilIssues[:0]
	for _, issue := range next.SoilIssues {
		if issue.ID == id {
			found = true
			continue
		}
		kept = append(kept, issue)
	}
	next.SoilIssues = kept
	return next, found
}

func validSoilIssueField(field SoilIssueField) bool {
	switch field {
	case SoilIssueFieldTitle, SoilIssueFieldDescription, SoilIssueFieldRecommendation, SoilIssueFieldImageURL:
		return true
	}
	return false
}
