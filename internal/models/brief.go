// internal/models/brief.go
package models

// PlaceholderToken in a section title is replaced by the product name.
const PlaceholderToken = "XYZ"

// SectionDefinition is one entry of the fixed brief outline.
type SectionDefinition struct {
	ID    int
	Title string
	Icon  string
}

// Section is one reconciled, display-ready brief section.
type Section struct {
	ID      int    `json:"id"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// SectionTypeText is the only section type emitted.
const SectionTypeText = "text"

// SectionDefinitions returns the 17 canonical sections in display order.
func SectionDefinitions() []SectionDefinition {
	out := make([]SectionDefinition, len(sectionDefinitions))
	copy(out, sectionDefinitions)
	return out
}

var sectionDefinitions = []SectionDefinition{
	{1, "Business Objective", "🎯"},
	{2, "Marketing Objective", "📈"},
	{3, "Background", "📋"},
	{4, "Target Audience", "👥"},
	{5, "The Problem we are trying to solve", "❗"},
	{6, "What are the challenges?", "⚠️"},
	{7, "Solutions/Offering", "💡"},
	{8, "Why XYZ (Platform)?", "🚀"},
	{9, "Why does Enterprise need this solution?", "🏢"},
	{10, "Present market trend and demand", "📊"},
	{11, "Agency Statement of Work (SOW)", "📋"},
	{12, "Key messages across Levels (L1 to L4)", "🎯"},
	{13, "Campaign Theme, Approach/Outline/Creative Strategy", "🎨"},
	{14, "Digital Assets (Banners, Microsite, Infographics, Email Designs)", "🖼️"},
	{15, "Digital Campaign Videos", "🎬"},
	{16, "AI / Tech Enabled Ideas", "🤖"},
	{17, "Channels / Campaign Digital Mediums", "📱"},
}

// Brief is the full result of one pipeline run.
type Brief struct {
	ID           string           `json:"brief_id"`
	Sections     []Section        `json:"sections"`
	RawText      string           `json:"raw_text,omitempty"`
	Research     ResearchRecord   `json:"research"`
	Stakeholder  StakeholderInput `json:"stakeholder_inputs"`
	ResearchTime float64          `json:"research_time"`
	AgentsUsed   []string         `json:"agents_used"`
	PDFPath      string           `json:"pdf_path,omitempty"`
	GeneratedAt  string           `json:"generated_at"`
	Model        string           `json:"model,omitempty"`
}

// AgentsUsed lists the pipeline stages reported in brief metadata.
var AgentsUsed = []string{"competitor", "trends", "audience", "brief_generator"}
