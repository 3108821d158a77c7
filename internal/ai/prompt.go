package ai

import (
	"fmt"
	"strings"
)

// promptSnippetLimit caps the web context embedded in the prompt.
const promptSnippetLimit = 3

// promptSchema is the structural contract the model is asked to satisfy.
// It is the single, immutable definition of the expected response shape;
// the validator and the fallback generator produce the same shape.
const promptSchema = `{
    "title_slide": {
        "title": "A compelling, professional title for the presentation",
        "subtitle": "%[1]s"
    },
    "overview": {
        "title": "Overview",
        "content": [
            "Key point 1 about the topic",
            "Key point 2 about the topic",
            "Key point 3 about the topic",
            "Key point 4 about the topic"
        ]
    },
    "key_points": [
        {
            "title": "Specific heading for slide 3 (e.g., 'Key Trends', 'Current State', 'Background')",
            "content": ["Detailed bullet point 1", "Detailed bullet point 2", "Detailed bullet point 3", "Detailed bullet point 4", "Detailed bullet point 5"]
        },
        {
            "title": "Specific heading for slide 4 (e.g., 'Challenges', 'Issues', 'Problems')",
            "content": ["Detailed bullet point 1", "Detailed bullet point 2", "Detailed bullet point 3", "Detailed bullet point 4", "Detailed bullet point 5"]
        },
        {
            "title": "Specific heading for slide 5 (e.g., 'Innovations', 'Solutions', 'Opportunities')",
            "content": ["Detailed bullet point 1", "Detailed bullet point 2", "Detailed bullet point 3", "Detailed bullet point 4", "Detailed bullet point 5"]
        },
        {
            "title": "Specific heading for slide 6 (e.g., 'Impact', 'Future', 'Implications')",
            "content": ["Detailed bullet point 1", "Detailed bullet point 2", "Detailed bullet point 3", "Detailed bullet point 4", "Detailed bullet point 5"]
        }
    ],
    "conclusion": {
        "title": "Conclusion",
        "content": [
            "Main takeaway 1",
            "Main takeaway 2",
            "Main takeaway 3",
            "Concluding statement or call to action"
        ]
    }
}`

// BuildPrompt assembles the synthesis prompt for topic, embedding at most
// promptSnippetLimit web snippets as grounding context.
func BuildPrompt(topic string, snippets []string) string {
	var webContext string
	if len(snippets) > 0 {
		if len(snippets) > promptSnippetLimit {
			snippets = snippets[:promptSnippetLimit]
		}
		var sb strings.Builder
		sb.WriteString("\n\nRecent web search results to incorporate:\n")
		for _, snippet := range snippets {
			sb.WriteString("- ")
			sb.WriteString(snippet)
			sb.WriteString("\n")
		}
		webContext = sb.String()
	}

	schema := fmt.Sprintf(promptSchema, topic)

	return fmt.Sprintf(`You are an expert presentation creator. Create a comprehensive PowerPoint presentation on: "%s"
%s
Generate the presentation content in the following EXACT JSON format. Do not include any additional text or explanations:

%s

IMPORTANT:
- Ensure all content is relevant to "%s"
- Make bullet points informative and professional
- Keep titles concise and engaging
- Return ONLY valid JSON, no additional text
`, topic, webContext, schema, topic)
}
