package domain

// Language identifies one of the two locales served by the portal.
type Language string

const (
	LangAmharic     Language = "amharic"
	LangAfaanOromoo Language = "afaan_oromoo"
)

// Valid reports whether the language belongs to the closed locale set.
func (l Language) Valid() bool {
	return l == LangAmharic || l == LangAfaanOromoo
}

// LocalizedText carries one value per supported language. Representing the
// mapping as a struct keeps both keys present across JSON round-trips, so a
// persisted aggregate can never come back with a missing locale entry.
type LocalizedText struct {
	Amharic     string `json:"amharic"`
	AfaanOromoo string `json:"afaan_oromoo"`
}

// Localized builds a LocalizedText from both language values.
func Localized(amharic, afaanOromoo string) LocalizedText {
	return LocalizedText{Amharic: amharic, AfaanOromoo: afaanOromoo}
}

// Get returns the entry for the given language, empty for unknown languages.
func (t LocalizedText) Get(lang Language) string {
	switch lang {
	case LangAmharic:
		return t.Amharic
	case LangAfaanOromoo:
		return t.AfaanOromoo
	default:
		return ""
	}
}

// Set replaces a single language entry in place.
func (t *LocalizedText) Set(lang Language, value string) error {
	switch lang {
	case LangAmharic:
		t.Amharic = value
	case LangAfaanOromoo:
		t.AfaanOromoo = value
	default:
		return ErrUnknownLanguage
	}
	return nil
}

// IsZero reports whether both entries are empty.
func (t LocalizedText) IsZero() bool {
	return t.Amharic == "" && t.AfaanOromoo == ""
}
