package intelligence

import (
	"context"

	"mindwell/models"
	"mindwell/utils"

	"go.uber.org/zap"
)

const fallbackMessage = "I'm here to help, but I'm having trouble processing your message right now. " +
	"Please try again or contact your therapist if this is urgent."

// Respond calls the completion endpoint and runs the reply through the
// parser pipeline. It never fails: a dead or misbehaving model yields a
// synthesized reassurance reply instead, with escalationRequired set when
// the call itself failed so a human can follow up.
func (s *DefaultAIService) Respond(ctx context.Context, aiCtx models.AIContext, userMessage string) models.AIResponse {
	logger := utils.GetLogger()

	prompt := BuildContextualPrompt(aiCtx, userMessage)
	content, err := s.Client.Complete(ctx, aiCtx.SystemPrompt, prompt)
	if err != nil {
		logger.Error("ai respond: completion call failed", zap.Error(err))
		return models.AIResponse{
			Response:           fallbackMessage,
			ResponseType:       "supportive",
			EmotionalTone:      "empathetic",
			ConfidenceScore:    0.3,
			EscalationRequired: true,
		}
	}

	return ParseResponse(content)
}
