package pipeline

import (
	"context"
	"fmt"

	"careplan-backend/internal/extract"
	"careplan-backend/internal/genai"
)

// ScoreRequest is the input of the health score stage. UserProfile is
// required; everything else is optional enrichment.
type ScoreRequest struct {
	UserProfile     *UserProfile   `json:"userProfile"`
	UserInput       string         `json:"userInput"`
	UploadedFiles   []UploadedFile `json:"uploadedFiles"`
	VoiceTranscript string         `json:"voiceTranscript"`
}

// ComputeScore runs the health score stage. The returned score is always an
// integer in [0,100] with a non-empty analysis and recommendations: output
// that breaks that contract is replaced with the fallback assessment.
func (p *Pipeline) ComputeScore(ctx context.Context, req ScoreRequest) (ScoreResult, error) {
	if req.UserProfile == nil {
		return ScoreResult{}, fmt.Errorf("%w: userProfile is required", ErrInvalidInput)
	}
	p.stats.RecordRequest(StageScore)

	raw, err := p.groq.Generate(ctx, genai.Request{
		SystemPrompt: scoreSystemPrompt,
		UserPrompt:   buildScorePrompt(req),
		Model:        genai.GroqModelFast,
		MaxTokens:    1500,
		Temperature:  0.7,
	})
	if err != nil {
		return ScoreResult{}, err
	}

	var result ScoreResult
	if err := extract.ExtractInto(raw, &result); err != nil {
		p.fallback(StageScore, err)
		return scoreFallback(), nil
	}
	if err := validateScore(result); err != nil {
		p.fallback(StageScore, err)
		return scoreFallback(), nil
	}
	return result, nil
}

func validateScore(r ScoreResult) error {
	if r.HealthScore < 0 || r.HealthScore > 100 {
		return fmt.Errorf("health score %d outside [0,100]", r.HealthScore)
	}
	if r.Analysis == "" {
		return fmt.Errorf("empty analysis")
	}
	if len(r.Recommendations) == 0 {
		return fmt.Errorf("no recommendations")
	}
	return nil
}
