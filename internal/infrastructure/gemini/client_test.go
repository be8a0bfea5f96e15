package gemini

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/soilhealth-et/portal/domain"
)

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) *Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = fasthttp.Serve(ln, handler) }()
	t.Cleanup(func() { ln.Close() })

	client := New(Config{APIKey: "test-key", BaseURL: "http://advisor.test"}, nil)
	client.http.Dial = func(addr string) (net.Conn, error) {
		return ln.Dial()
	}
	return client
}

func TestGenerate(t *testing.T) {
	var captured generateRequest
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", string(ctx.Path()))
		assert.Equal(t, "test-key", string(ctx.Request.Header.Peek("x-goog-api-key")))
		require.NoError(t, json.Unmarshal(ctx.PostBody(), &captured))

		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"candidates":[{"content":{"parts":[{"text":"add lime to the soil"}]}}]}`)
	})

	history := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Text: "hello"},
		{Role: domain.ChatRoleModel, Text: "hi"},
	}
	reply, err := client.Generate(context.Background(), "you are an advisor", history, "my soil is acidic")
	require.NoError(t, err)
	assert.Equal(t, "add lime to the soil", reply)

	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "you are an advisor", captured.SystemInstruction.Parts[0].Text)
	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)
	assert.Equal(t, "my soil is acidic", captured.Contents[2].Parts[0].Text)
	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
}

func TestGenerateAPIError(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
		ctx.SetBodyString(`{"error":{"code":429,"message":"quota exceeded"}}`)
	})

	_, err := client.Generate(context.Background(), "sys", nil, "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateNoCandidates(t *testing.T) {
	client := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"candidates":[]}`)
	})

	_, err := client.Generate(context.Background(), "sys", nil, "q")
	assert.Error(t, err)
}

func TestGenerateWithoutKey(t *testing.T) {
	client := New(Config{}, nil)
	assert.False(t, client.Configured())

	_, err := client.Generate(context.Background(), "sys", nil, "q")
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	client := New(Config{APIKey: "k"}, nil)
	assert.Equal(t, defaultModel, client.cfg.Model)
	assert.Equal(t, defaultBaseURL, client.cfg.BaseURL)
	assert.Equal(t, defaultTimeout, client.cfg.Timeout)
	assert.True(t, client.Configured())
}
