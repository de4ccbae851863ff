// Package models содержит доменные структуры каталога инструментов
// и подписчиков рассылки.
package models

// Audience classification for catalog entries.
const (
	TypePersonal   = "personal"
	TypeEnterprise = "enterprise"
)

// DefaultScreenshot is served when a record carries no screenshot of its own.
const DefaultScreenshot = "/screenshots/placeholder.jpg"

// ToolRecord описывает одну запись каталога — внешний AI-инструмент или сервис.
type ToolRecord struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	SourceURL        string `json:"source_url"`
	ShortDescription string `json:"short_description"`
	ScreenshotURL    string `json:"screenshot_url"`
	Category         string `json:"category"`
	Sector           string `json:"sector"`
	Type             string `json:"type"`
}

// WithScreenshotDefault returns a copy with ScreenshotURL filled in
// when the source data left it empty.
func (t ToolRecord) WithScreenshotDefault() ToolRecord {
	if t.ScreenshotURL == "" {
		t.ScreenshotURL = DefaultScreenshot
	}
	return t
}
