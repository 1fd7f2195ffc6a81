package intelligence

import (
	"context"

	"mindwell/models"
)

// CompletionClient abstracts the external chat-completion endpoint.
// Implementations must return an error for any non-success outcome; they
// never fabricate content.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AIService produces assistant replies for bot chats. Respond never fails:
// when the model is unreachable or returns garbage, a synthesized fallback
// reply is returned instead, flagged with a reduced confidence score.
type AIService interface {
	BuildContext(senderID string, chatType models.ChatType, peerID string) models.AIContext
	Respond(ctx context.Context, aiCtx models.AIContext, userMessage string) models.AIResponse
}

// DefaultAIService is the production implementation.
type DefaultAIService struct {
	Builder ContextBuilder
	Client  CompletionClient
}

// NewDefaultAIService wires the context builder and completion client.
func NewDefaultAIService(builder ContextBuilder, client CompletionClient) *DefaultAIService {
	return &DefaultAIService{Builder: builder, Client: client}
}

// BuildContext assembles the prompt context for a bot request.
func (s *DefaultAIService) BuildContext(senderID string, chatType models.ChatType, peerID string) models.AIContext {
	return s.Builder.Build(senderID, chatType, peerID)
}
