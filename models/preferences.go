package models

// Theme is the UI color theme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Language is the UI language.
type Language string

const (
	LanguagePT Language = "pt"
	LanguageEN Language = "en"
)

// Preferences are the simple UI flags kept next to the session.
type Preferences struct {
	SidebarOpen bool     `json:"sidebar_open"`
	Theme       Theme    `json:"theme"`
	Language    Language `json:"language"`
}

// DefaultPreferences returns the first-run UI flags.
func DefaultPreferences() Preferences {
	return Preferences{SidebarOpen: true, Theme: ThemeDark, Language: LanguagePT}
}
