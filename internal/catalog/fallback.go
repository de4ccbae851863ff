package catalog

import "github.com/ai-advantage/resources-api/internal/models"

// Fallback возвращает встроенный резервный список каталога.
// Используется, когда основной источник недоступен или пуст:
// каталог всегда должен отдавать хоть какие-то данные.
func Fallback() []models.ToolRecord {
	return []models.ToolRecord{
		{
			ID:               1,
			Name:             "ChatGPT",
			SourceURL:        "https://chat.openai.com",
			ShortDescription: "Conversational AI assistant for research, drafting and analysis.",
			Category:         "Foundational AI",
			Type:             models.TypePersonal,
		},
		{
			ID:               2,
			Name:             "Claude",
			SourceURL:        "https://claude.ai",
			ShortDescription: "AI assistant for long-form writing and document analysis.",
			Category:         "Foundational AI",
			Type:             models.TypePersonal,
		},
		{
			ID:               3,
			Name:             "Perplexity",
			SourceURL:        "https://www.perplexity.ai",
			ShortDescription: "AI-powered answer engine with cited sources.",
			Category:         "Research & Insights",
			Type:             models.TypePersonal,
		},
		{
			ID:               4,
			Name:             "Midjourney",
			SourceURL:        "https://www.midjourney.com",
			ShortDescription: "Image generation for concepts, mockups and creative exploration.",
			Category:         "Creative Tools",
			Type:             models.TypePersonal,
		},
		{
			ID:               5,
			Name:             "WSC Sports",
			SourceURL:        "https://wsc-sports.com",
			ShortDescription: "Automated real-time highlight generation for sports content.",
			Sector:           "Creative & Personalization",
			Type:             models.TypeEnterprise,
		},
		{
			ID:               6,
			Name:             "StellarAlgo",
			SourceURL:        "https://www.stellaralgo.com",
			ShortDescription: "Fan data platform for audience growth and retention.",
			Sector:           "Fan Intelligence",
			Type:             models.TypeEnterprise,
		},
		{
			ID:               7,
			Name:             "Zoomph",
			SourceURL:        "https://zoomph.com",
			ShortDescription: "Sponsorship valuation and social audience analytics.",
			Sector:           "Measurement & Analytics",
			Type:             models.TypeEnterprise,
		},
		{
			ID:               8,
			Name:             "Blinkfire Analytics",
			SourceURL:        "https://www.blinkfire.com",
			ShortDescription: "Real-time media valuation across digital channels.",
			Sector:           "Sponsorship & Revenue Growth",
			Type:             models.TypeEnterprise,
		},
		{
			ID:               9,
			Name:             "Greenfly",
			SourceURL:        "https://www.greenfly.com",
			ShortDescription: "Short-form digital media distribution for advertising campaigns.",
			Sector:           "Advertising & Media",
			Type:             models.TypeEnterprise,
		},
	}
}
