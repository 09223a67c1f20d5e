package assist

import "text/template"

// PromptKind selects one of the fixed prompt templates.
type PromptKind string

const (
	// PromptCourseOutline drafts a markdown course outline for the
	// learning platform.
	PromptCourseOutline PromptKind = "course_outline"

	// PromptCounsel answers a member's message in the counselor chat.
	PromptCounsel PromptKind = "counsel"

	// PromptPostDraft drafts a social post for the community feed.
	PromptPostDraft PromptKind = "post_draft"
)

// Params carries the caller-supplied values a template may reference.
// Which fields matter depends on the kind: outline uses Topic and
// Category, counsel uses Message, post draft uses Topic and Role.
type Params struct {
	Topic    string
	Category string
	Role     string
	Message  string
}

// The three prompt templates are data, not ad hoc concatenation, so they
// can be exercised in tests and swapped for localization later.
var promptTemplates = map[PromptKind]*template.Template{
	PromptCourseOutline: template.Must(template.New("course_outline").Parse(
		`Create a detailed course outline for a church online learning platform.
Topic: {{.Topic}}
Category: {{.Category}}
Target Audience: Youth and Young Adults (Campus students).

Structure the response as a markdown document with:
1. Course Title
2. Brief Description
3. Learning Objectives (Bullet points)
4. Week-by-Week Breakdown (4 weeks), with 2 lessons per week.

Keep the tone inspiring, educational, and spiritually grounded.`)),

	PromptCounsel: template.Must(template.New("counsel").Parse(
		`You are a compassionate, wise, and biblically grounded spiritual counselor assistant for 'Light On Campus' ministry.
The user is asking: "{{.Message}}"

Provide a response that is:
1. Empathetic and listening.
2. Rooted in biblical wisdom (quote a relevant scripture if applicable).
3. Practical advice for a young person/student.
4. Encouraging prayer.

Keep it concise (under 150 words) but impactful.
Disclaimer: Start by saying you are an AI assistant if the topic is severe (suicide/abuse) and recommend professional help immediately.`)),

	PromptPostDraft: template.Must(template.New("post_draft").Parse(
		`Write a social media post for a church community app called 'Light On Campus'.
User Role: {{.Role}}
Topic: {{.Topic}}

The tone should be engaging, relevant to university students, and spiritually uplifting. Use emojis sparingly.`)),
}

// Fixed substitute strings per kind. The missing-credential string is
// returned without any network attempt; the failure string replaces a
// swallowed call error; the empty string fallback covers a successful
// call that produced no text.
var (
	missingKeyFallback = map[PromptKind]string{
		PromptCourseOutline: "API Key missing. Please configure your Google Gemini API Key.",
		PromptCounsel:       "I am unable to connect to the server right now. Please pray and try again later.",
		PromptPostDraft:     "Please set API Key.",
	}

	failureFallback = map[PromptKind]string{
		PromptCourseOutline: "Error communicating with AI service. Please try again later.",
		PromptCounsel:       "Peace be with you. I am having trouble connecting right now.",
		PromptPostDraft:     "",
	}

	emptyFallback = map[PromptKind]string{
		PromptCourseOutline: "Failed to generate course content.",
		PromptCounsel:       "I am listening, but I cannot find the words right now.",
		PromptPostDraft:     "",
	}
)
