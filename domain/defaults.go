package domain

// DefaultContent returns the bundled aggregate used when no persisted copy
// exists or the stored one cannot be parsed.
func DefaultContent() *SiteContent {
	return &SiteContent{
		SiteName:       "Soil Health Ethiopia",
		PrimaryColor:   "#065f46",
		SecondaryColor: "#064e3b",
		HeroImageURL:   "https://images.unsplash.com/photo-1500382017468-9049fee74a62?auto=format&fit=crop&q=80&w=2000",
		AdminPassword:  "1234",
		AdminEmail:     "ayumam100@gmail.com",

		HeroTitle: Localized("የአፈር ጤና ፕሮጀክት", "Sagantaa Fayyaa Biyyee"),
		HeroSub: Localized(
			"የአርሶ አደሩን ምርታማነት ማሳደግ እና መሬታችንን መንከባከብ።",
			"Oomishummaa qonnaan bultootaa guddisuu fi dachee keenya kunuunsuu.",
		),
		AdvisorTitle: Localized("የእርስዎ አማካሪ እዚህ አለ", "Gorsi Keessan as jira"),
		AdvisorDesc: Localized(
			"ስለ አፈርዎ ጤና፣ ማዳበሪያ እና ሰብል ምርጫ በማንኛውም ጊዜ ይጠይቁ።",
			"Waa'ee fayyaa biyyee keessanii, xaa'oo fi filannoo midhaanii yeroo barbaaddan gaafadhu.",
		),
		AdvisorIcon:  "🤖",
		LibraryTitle: Localized("የእውቀት ማዕከል", "Giddu-gala Beekumsaa"),
		LibraryDesc: Localized(
			"ትምህርታዊ ሰነዶች፣ መመሪያዎች እና የፕሮጀክት ሚዲያ።",
			"Sanadoota barumsaa, qajeelfamaa fi miidiyaa pirojeektii.",
		),
		IssuesTitle: Localized("የአፈር ችግሮች", "Rakkoolee Biyyee"),
		IssuesDesc: Localized(
			"የባለሙያ መለያ እና የሕክምና መመሪያዎች።",
			"Adda baasuu ogeessaa fi qajeelfama yaalaa.",
		),
		ContactTitle: Localized("የባለሙያ ድጋፍ", "Gargaarsa Ogeessaa"),
		ContactSub: Localized(
			"በአካባቢዎ ካሉ የቴክኒክ ቡድናችን ጋር በቀጥታ ይነጋገሩ።",
			"Dhaabbata keenya aanaa keessan jiru waliin qunnamaa.",
		),

		Districts: []DistrictData{
			{
				ID:               "diredawa",
				Name:             "Diredawa",
				DisplayName:      Localized("ድሬዳዋ", "Diredawaa"),
				SoilTypes:        Localized("አሸዋማ አፈር", "Sandy Loam"),
				Characteristics:  Localized("ጥሩ የውሃ ፍሳሽ ያለው", "Drainage gaarii qaba"),
				FrequentIssues:   Localized("አሲዳማነት", "Acidity"),
				RecommendedCrops: Localized("ማሽላ, በቆሎ", "Sorghum, Maize"),
			},
			{
				ID:               "haramaya",
				Name:             "Haramaya",
				DisplayName:      Localized("ሐረማያ", "Haramayaa"),
				SoilTypes:        Localized("ቆላማ አፈር", "Clay Loam"),
				Characteristics:  Localized("ከፍተኛ ለምነት", "Fertility guddaa"),
				FrequentIssues:   Localized("መሸርሸር", "Erosion"),
				RecommendedCrops: Localized("ድንች, ቀይ ሽንኩርት", "Potato, Onion"),
			},
			{
				ID:               "metta",
				Name:             "Metta",
				DisplayName:      Localized("መታ", "Mettaa"),
				SoilTypes:        Localized("ጥቁር አፈር", "Vertisols"),
				Characteristics:  Localized("ውሃ ይይዛል", "Bishaan qabata"),
				FrequentIssues:   Localized("ጨዋማነት", "Salinity"),
				RecommendedCrops: Localized("ስንዴ, ገብስ", "Wheat, Barley"),
			},
		},

		ActiveSections: []PageSection{
			{ID: "1", Type: SectionHero},
			{ID: "2", Type: SectionAdvisor},
			{ID: "3", Type: SectionLibrary},
			{ID: "4", Type: SectionStats},
			{ID: "5", Type: SectionIssues},
			{ID: "6", Type: SectionContact},
		},

		SoilIssues: []SoilIssue{
			{
				ID:    "s1",
				Title: Localized("ጨዋማነት", "Kukukuba"),
				Description: Localized(
					"በአፈር ውስጥ ከፍተኛ የጨው ክምችት ሲኖር ምርታማነት ይቀንሳል።",
					"Biyyeen soogidda garmalee qabaachuu.",
				),
				Recommendation: Localized(
					"የውሃ ፍሳሽን ማሻሻል እና ጨውን የሚያጥቡ ሰብሎችን መትከል።",
					"Mishaan drenaajii fooyyessuu.",
				),
				ImageURL: "https://images.unsplash.com/photo-1594398044299-591b72ede999?auto=format&fit=crop&q=80&w=400",
			},
		},

		Documents:     []Document{},
		Media:         []Media{},
		CustomModules: []CustomModule{},

		ContactEmail: "ayumam100@gmail.com",
		ContactPhone: "+251 900 000 000",

		Farmers: []FarmerUser{},
	}
}
