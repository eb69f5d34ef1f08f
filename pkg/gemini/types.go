package gemini

// Request is a normalized generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string
	Parts []Part
}

// Part holds a text segment of a content message.
type Part struct {
	Text string
}

// Response is a normalized generation response.
type Response struct {
	Content Content
	Usage   Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
