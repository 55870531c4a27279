// internal/workers/research/competitor-research/models.go
package competitorresearch

type Input struct {
	Industry    string `json:"industry"`
	CompanyType string `json:"companyType"`
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []serperResult `json:"organic"`
}

type serperResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// catalogEntry is one document of the competitor catalog index.
type catalogEntry struct {
	Industry    string `json:"industry"`
	CompanyType string `json:"company_type"`
	Name        string `json:"name"`
	Pricing     string `json:"pricing"`
	Focus       string `json:"focus"`
	Description string `json:"description"`
	Website     string `json:"website"`
}
