package domain

// SiteContent is the aggregate root for everything the portal renders and the
// administrative console edits. It is persisted and replaced as a whole: every
// mutation clones the aggregate, applies one change and hands the result to
// the content store for a full rewrite of the storage slot.
type SiteContent struct {
	SiteName       string `json:"siteName"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	HeroImageURL   string `json:"heroImageUrl"`
	AdminPassword  string `json:"adminPassword"`
	AdminEmail     string `json:"adminEmail"`

	HeroTitle    LocalizedText `json:"heroTitle"`
	HeroSub      LocalizedText `json:"heroSub"`
	AdvisorTitle LocalizedText `json:"advisorTitle"`
	AdvisorDesc  LocalizedText `json:"advisorDesc"`
	AdvisorIcon  string        `json:"advisorIcon"`
	LibraryTitle LocalizedText `json:"libraryTitle"`
	LibraryDesc  LocalizedText `json:"libraryDesc"`
	IssuesTitle  LocalizedText `json:"issuesTitle"`
	IssuesDesc   LocalizedText `json:"issuesDesc"`
	ContactTitle LocalizedText `json:"contactTitle"`
	ContactSub   LocalizedText `json:"contactSub"`

	Districts      []DistrictData `json:"districts"`
	ActiveSections []PageSection  `json:"activeSections"`

	SoilIssues    []SoilIssue    `json:"soilIssues"`
	Documents     []Document     `json:"documents"`
	Media         []Media        `json:"media"`
	CustomModules []CustomModule `json:"customModules"`

	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	Farmers []FarmerUser `json:"farmers"`
}

// Clone returns a deep copy of the aggregate. Every entity in the collections
// is a value type, so copying the slices detaches the clone completely.
func (c *SiteContent) Clone() *SiteContent {
	if c == nil {
		return nil
	}
	next := *c
	next.Districts = append([]DistrictData(nil), c.Districts...)
	next.ActiveSections = append([]PageSection(nil), c.ActiveSections...)
	next.SoilIssues = append([]SoilIssue(nil), c.SoilIssues...)
	next.Documents = append([]Document(nil), c.Documents...)
	next.Media = append([]Media(nil), c.Media...)
	next.CustomModules = append([]CustomModule(nil), c.CustomModules...)
	next.Farmers = append([]FarmerUser(nil), c.Farmers...)
	return &next
}

// PublicView strips the credential fields so the aggregate can be served to
// the renderer without leaking the admin login.
func (c *SiteContent) PublicView() *SiteContent {
	view := c.Clone()
	if view == nil {
		return nil
	}
	view.AdminPassword = ""
	view.AdminEmail = ""
	return view
}

// DistrictByName looks a district up by its internal name.
func (c *SiteContent) DistrictByName(name string) (DistrictData, bool) {
	for _, d := range c.Districts {
		if d.Name == name {
			return d, true
		}
	}
	return DistrictData{}, false
}

// CustomModuleByID looks a custom module up by identifier.
func (c *SiteContent) CustomModuleByID(id string) (CustomModule, bool) {
	for _, m := range c.CustomModules {
		if m.ID == id {
			return m, true
		}
	}
	return CustomModule{}, false
}
