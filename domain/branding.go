package domain

// BrandingField names a plain-string branding or contact field.
type BrandingField string

const (
	BrandingFieldSiteName       BrandingField = "siteName"
	BrandingFieldPrimaryColor   BrandingField = "primaryColor"
	BrandingFieldSecondaryColor BrandingField = "secondaryColor"
	BrandingFieldHeroImageURL   BrandingField = "heroImageUrl"
	BrandingFieldAdvisorIcon    BrandingField = "advisorIcon"
	BrandingFieldContactEmail   BrandingField = "contactEmail"
	BrandingFieldContactPhone   BrandingField = "contactPhone"
)

// HeadingField names a localized heading edited per language.
type HeadingField string

const (
	HeadingFieldHeroTitle    HeadingField = "heroTitle"
	HeadingFieldHeroSub      HeadingField = "heroSub"
	HeadingFieldAdvisorTitle HeadingField = "advisorTitle"
	HeadingFieldAdvisorDesc  HeadingField = "advisorDesc"
	HeadingFieldLibraryTitle HeadingField = "libraryTitle"
	HeadingFieldLibraryDesc  HeadingField = "libraryDesc"
	HeadingFieldIssuesTitle  HeadingField = "issuesTitle"
	HeadingFieldIssuesDesc   HeadingField = "issuesDesc"
	HeadingFieldContactTitle HeadingField = "contactTitle"
	HeadingFieldContactSub   HeadingField = "contactSub"
)

// UpdateBranding replaces a single branding string field.
func (c *SiteContent) UpdateBranding(field BrandingField, value string) (*SiteContent, error) {
	next := c.Clone()
	switch field {
	case BrandingFieldSiteName:
		next.SiteName = value
	case BrandingFieldPrimaryColor:
		next.PrimaryColor = value
	case BrandingFieldSecondaryColor:
		next.SecondaryColor = value
	case BrandingFieldHeroImageURL:
		next.HeroImageURL = value
	case BrandingFieldAdvisorIcon:
		next.AdvisorIcon = value
	case BrandingFieldContactEmail:
		next.ContactEmail = value
	case BrandingFieldContactPhone:
		next.ContactPhone = value
	default:
		return next, ErrUnknownField
	}
	return next, nil
}

// UpdateHeading replaces one language entry of a localized heading.
func (c *SiteContent) UpdateHeading(field HeadingField, lang Language, value string) (*SiteContent, error) {
	next := c.Clone()
	var target *LocalizedText
	switch field {
	case HeadingFieldHeroTitle:
		target = &next.HeroTitle
	case HeadingFieldHeroSub:
		target = &next.HeroSub
	case HeadingFieldAdvisorTitle:
		target = &next.AdvisorTitle
	case HeadingFieldAdvisorDesc:
		target = &next.AdvisorDesc
	case HeadingFieldLibraryTitle:
		target = &next.LibraryTitle
	case HeadingFieldLibraryDesc:
		target = &next.LibraryDesc
	case HeadingFieldIssuesTitle:
		target = &next.IssuesTitle
	case HeadingFieldIssuesDesc:
		target = &next.IssuesDesc
	case HeadingFieldContactTitle:
		target = &next.ContactTitle
	case HeadingFieldContactSub:
		target = &next.ContactSub
	default:
		return next, ErrUnknownField
	}
	if err := target.Set(lang, value); err != nil {
		return next, err
	}
	return next, nil
}
