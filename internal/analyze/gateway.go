package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/healthdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// max gateway error body kept in errors
const maxErrorBodyLen = 4096

// Gateway calls the text generation model behind the AI gateway.
type Gateway struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewGateway(url, token string, httpClient *http.Client) *Gateway {
	return &Gateway{
		url:        url,
		token:      token,
		httpClient: httpClient,
	}
}

type gatewayRequest struct {
	Prompt string `json:"prompt"`
}

type gatewayResponse struct {
	Result struct {
		Response string `json:"response"`
	} `json:"result"`
}

func (g *Gateway) Generate(ctx context.Context, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyze.gateway.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	body, err := json.Marshal(gatewayRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnf("close gateway response body: %s", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(respBody) > maxErrorBodyLen {
			respBody = respBody[:maxErrorBodyLen]
		}
		log.Errorf("ai gateway error, status %d: %s", resp.StatusCode, respBody)
		return "", fmt.Errorf("%w: status %d: %s", ErrGatewayResponse, resp.StatusCode, respBody)
	}

	var gwResp gatewayResponse
	if err := json.Unmarshal(respBody, &gwResp); err != nil {
		return "", fmt.Errorf("%w: %s", ErrGatewayResponse, err)
	}
	if gwResp.Result.Response == "" {
		return "", fmt.Errorf("%w: missing result.response", ErrGatewayResponse)
	}

	return gwResp.Result.Response, nil
}
