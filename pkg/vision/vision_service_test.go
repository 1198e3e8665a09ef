package vision

import (
	"FoodTracker-Backend/domain"
	"FoodTracker-Backend/pkg/gemini"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text string
	err  error
	req  gemini.GenerateRequest
}

func (f *fakeClient) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (string, error) {
	f.req = req
	return f.text, f.err
}

func TestAnalyzeFoodImage(t *testing.T) {
	client := &fakeClient{text: `{"foods":[{"name":"apple","calories":52,"confidence":0.8}]}`}
	svc := NewVisionService(client)

	analysis, err := svc.AnalyzeFoodImage(context.Background(), []byte("img"), "image/jpeg")

	require.NoError(t, err)
	require.Len(t, analysis.Foods, 1)
	assert.Equal(t, "apple", analysis.Foods[0].Name)
	assert.Equal(t, []byte("img"), client.req.Image)
	assert.Equal(t, "image/jpeg", client.req.MimeType)
	assert.Equal(t, 0.3, client.req.Temperature)
	assert.Contains(t, client.req.Prompt, "Return ONLY a JSON object")
}

func TestAnalyzeFoodImage_UnusableOutputFallsBack(t *testing.T) {
	svc := NewVisionService(&fakeClient{text: "no idea"})

	analysis, err := svc.AnalyzeFoodImage(context.Background(), []byte("img"), "image/jpeg")

	require.NoError(t, err)
	assert.True(t, analysis.Fallback)
}

func TestAnalyzeFoodImage_TransportError(t *testing.T) {
	svc := NewVisionService(&fakeClient{err: domain.ErrGeminiRateLimited})

	_, err := svc.AnalyzeFoodImage(context.Background(), []byte("img"), "image/jpeg")

	assert.ErrorIs(t, err, domain.ErrGeminiRateLimited)
}
