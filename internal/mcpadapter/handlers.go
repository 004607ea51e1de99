package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/answersheet/gradebot/internal/executor"
	"github.com/answersheet/gradebot/internal/models"
)

// GradeInput is the MCP tool input schema for answer grading.
type GradeInput struct {
	EventID    string `json:"event_id" jsonschema:"unique event identifier"`
	AnswerText string `json:"answer_text" jsonschema:"student answer text to grade"`
}

// ExtractInput is the MCP tool input schema for image text extraction.
type ExtractInput struct {
	ImagePath string `json:"image_path" jsonschema:"path to an image file on the server host"`
}

// ExtractOutput carries the transcription back to the MCP client.
type ExtractOutput struct {
	Text string `json:"text"`
}

// NewGradeHandler returns a tool handler that uses the given pipeline.
// Pass the returned function to mcp.AddTool.
func NewGradeHandler(pipeline *executor.Pipeline) func(context.Context, *mcp.CallToolRequest, GradeInput) (*mcp.CallToolResult, models.EvaluationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GradeInput) (*mcp.CallToolResult, models.EvaluationResult, error) {
		result := pipeline.GradeText(ctx, input.EventID, input.AnswerText)
		return nil, result, nil
	}
}

// NewExtractHandler returns a tool handler for image transcription.
// Pass the returned function to mcp.AddTool.
func NewExtractHandler(pipeline *executor.Pipeline) func(context.Context, *mcp.CallToolRequest, ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, ExtractOutput, error) {
		outcome, err := pipeline.GradeImage(ctx, input.ImagePath)
		if err != nil {
			return nil, ExtractOutput{}, err
		}
		return nil, ExtractOutput{Text: outcome.Text}, nil
	}
}
