package ai

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mbalazs/deckgen/internal/deck"
)

var titleCaser = cases.Title(language.English)

// FallbackContent derives schema-valid content from the topic alone, with no
// network or model involvement. The same topic always yields the same content.
func FallbackContent(topic string) deck.Content {
	return deck.Content{
		TitleSlide: deck.TitleSlide{
			Title:    fmt.Sprintf("Comprehensive Analysis: %s", titleCaser.String(topic)),
			Subtitle: topic,
		},
		Overview: deck.Section{
			Title: "Overview",
			Content: []string{
				fmt.Sprintf("Introduction to %s", topic),
				"Current state and significance",
				"Key areas of focus",
				"Expected outcomes and insights",
			},
		},
		KeyPoints: []deck.Section{
			{
				Title: "Background & Context",
				Content: []string{
					"Historical development and evolution",
					"Current market or industry status",
					"Key stakeholders and participants",
					"Regulatory and policy framework",
					"Global trends and patterns",
				},
			},
			{
				Title: "Challenges & Obstacles",
				Content: []string{
					"Technical limitations and barriers",
					"Economic and financial constraints",
					"Regulatory and compliance issues",
					"Market adoption challenges",
					"Competition and market dynamics",
				},
			},
			{
				Title: "Innovations & Solutions",
				Content: []string{
					"Emerging technologies and approaches",
					"Best practices and methodologies",
					"Case studies and success stories",
					"Investment and funding opportunities",
					"Partnership and collaboration models",
				},
			},
			{
				Title: "Future Outlook & Impact",
				Content: []string{
					"Projected growth and development",
					"Potential market opportunities",
					"Long-term implications and effects",
					"Recommendations for stakeholders",
					"Next steps and action items",
				},
			},
		},
		Conclusion: deck.Section{
			Title: "Conclusion",
			Content: []string{
				fmt.Sprintf("%s represents a significant opportunity", topic),
				"Key challenges must be addressed strategically",
				"Innovation and collaboration are essential",
				"The future looks promising with proper execution",
			},
		},
	}
}
