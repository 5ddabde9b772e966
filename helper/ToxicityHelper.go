package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const perspectiveURL = "https://commentanalyzer.googleapis.com/v1alpha1/comments:analyze"

// ToxicityClient proxies text to the Perspective API and extracts the
// summary TOXICITY score.
type ToxicityClient struct {
	APIKey   string
	Endpoint string
	HTTP     *http.Client
}

func NewToxicityClient(apiKey string) *ToxicityClient {
	return &ToxicityClient{
		APIKey:   apiKey,
		Endpoint: perspectiveURL,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

type perspectiveRequest struct {
	Comment struct {
		Text string `json:"text"`
	} `json:"comment"`
	Languages           []string            `json:"languages"`
	RequestedAttributes map[string]struct{} `json:"requestedAttributes"`
}

type perspectiveResponse struct {
	AttributeScores map[string]struct {
		SummaryScore struct {
			Value float64 `json:"value"`
		} `json:"summaryScore"`
	} `json:"attributeScores"`
}

func (c *ToxicityClient) Check(ctx context.Context, text string) (float64, error) {
	var reqBody perspectiveRequest
	reqBody.Comment.Text = text
	reqBody.Languages = []string{"en"}
	reqBody.RequestedAttributes = map[string]struct{}{"TOXICITY": {}}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"?key="+c.APIKey, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("perspective API returned %s", resp.Status)
	}

	var parsed perspectiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}
	return parsed.AttributeScores["TOXICITY"].SummaryScore.Value, nil
}
