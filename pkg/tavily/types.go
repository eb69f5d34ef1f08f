package tavily

// SearchRequest is the request payload for the Tavily search API.
type SearchRequest struct {
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	IncludeAnswer bool   `json:"include_answer"`
	MaxResults    int    `json:"max_results"`
}

// SearchResponse is the response from the Tavily search API.
type SearchResponse struct {
	Answer  string   `json:"answer"`
	Results []Result `json:"results"`
}

// Result is a single web search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
