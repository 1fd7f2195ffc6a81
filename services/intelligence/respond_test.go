package intelligence

import (
	"context"
	"errors"
	"testing"

	"mindwell/models"

	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	content string
	err     error
}

func (s *stubClient) Complete(context.Context, string, string) (string, error) {
	return s.content, s.err
}

func TestRespondParsesModelReply(t *testing.T) {
	svc := NewDefaultAIService(nil, &stubClient{
		content: `{"response":"That sounds hard. I'm with you.","confidenceScore":0.85}`,
	})

	resp := svc.Respond(context.Background(), models.AIContext{}, "I feel low")

	assert.Equal(t, "That sounds hard. I'm with you.", resp.Response)
	assert.Equal(t, 0.85, resp.ConfidenceScore)
	assert.False(t, resp.EscalationRequired)
}

func TestRespondFallsBackWhenClientFails(t *testing.T) {
	svc := NewDefaultAIService(nil, &stubClient{err: errors.New("connection refused")})

	resp := svc.Respond(context.Background(), models.AIContext{}, "I feel low")

	assert.Equal(t, fallbackMessage, resp.Response)
	assert.Equal(t, 0.3, resp.ConfidenceScore)
	assert.True(t, resp.EscalationRequired)
}

func TestRespondSynthesizesFromProseReply(t *testing.T) {
	svc := NewDefaultAIService(nil, &stubClient{content: "You are not alone in this."})

	resp := svc.Respond(context.Background(), models.AIContext{}, "hi")

	assert.Equal(t, "You are not alone in this.", resp.Response)
	assert.Equal(t, 0.5, resp.ConfidenceScore)
}
