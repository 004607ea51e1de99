package llm

type Request struct {
	Model       string
	Prompt      string
	Images      [][]byte
	MaxTokens   int
	Temperature float64
}

type Response struct {
	Content    string
	StopReason string
}
