// Package language implements the closed set of languages the identifier knows
package language

// Language is one of the fixed target labels
type Language byte

const (
	// NoLanguage is returned for any label outside the known set
	NoLanguage Language = iota
	German
	English
	French
	Spanish
)

// All lists the known languages in training and evaluation order
var All = [...]Language{German, English, French, Spanish}

var names = [...]string{
	NoLanguage: "NoLanguage",
	German:     "German",
	English:    "English",
	French:     "French",
	Spanish:    "Spanish",
}

// codes are the ISO 639-3 codes used in dataset file names
var codes = [...]string{
	German:  "deu",
	English: "eng",
	French:  "fra",
	Spanish: "spa",
}

// String returns the language name, or "NoLanguage" for the sentinel and unknown values
func (l Language) String() string {
	if int(l) >= len(names) {
		return names[NoLanguage]
	}
	return names[l]
}

// Code returns the ISO 639-3 code, empty for NoLanguage
func (l Language) Code() string {
	if !l.Valid() {
		return ""
	}
	return codes[l]
}

// Valid reports whether l is one of All
func (l Language) Valid() bool {
	return l > NoLanguage && int(l) < len(names)
}

// Parse maps a name (case-sensitive) to its language. Unknown names map to NoLanguage.
func Parse(name string) Language {
	for _, l := range All {
		if names[l] == name {
			return l
		}
	}
	return NoLanguage
}
