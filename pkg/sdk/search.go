package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Method selects a server-side scoring strategy.
type Method string

// Supported search methods.
const (
	Keyword  Method = "keyword"
	Fuzzy    Method = "fuzzy"
	Semantic Method = "semantic"
)

// SearchResult is a single ranked product hit.
type SearchResult struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Badge       string  `json:"badge,omitempty"`
	Score       float64 `json:"score"`
}

// SearchResponse is a ranked result set for one method.
type SearchResponse struct {
	Results          []SearchResult `json:"results"`
	Query            string         `json:"query"`
	Method           string         `json:"method"`
	LatencyMS        float64        `json:"latency_ms"`
	TotalHits        int            `json:"total_hits"`
	Transcription    string         `json:"transcription,omitempty"`
	RewrittenQuery   string         `json:"rewritten_query,omitempty"`
	DetectedFeatures []string       `json:"detected_features,omitempty"`
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// Search runs one strategy over the query. topK 0 uses the server default.
func (c *Client) Search(ctx context.Context, m Method, query string, topK int) (SearchResponse, error) {
	var resp SearchResponse
	err := c.postJSON(ctx, "/api/search/"+string(m), searchRequest{Query: query, TopK: topK}, &resp)
	if err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// SearchAll runs every strategy over the query.
func (c *Client) SearchAll(ctx context.Context, query string, topK int) (map[Method]SearchResponse, error) {
	var raw map[string]any
	if err := c.postJSON(ctx, "/api/search/all", searchRequest{Query: query, TopK: topK}, &raw); err != nil {
		return nil, err
	}

	out := make(map[Method]SearchResponse, 3)
	for _, m := range []Method{Keyword, Fuzzy, Semantic} {
		section, ok := raw[string(m)]
		if !ok {
			return nil, fmt.Errorf("sdk: response missing %q section", m)
		}
		var resp SearchResponse
		if err := remarshal(section, &resp); err != nil {
			return nil, fmt.Errorf("sdk: decode %q section: %w", m, err)
		}
		out[m] = resp
	}
	return out, nil
}

// SearchAudio uploads an audio blob for transcription-driven search.
func (c *Client) SearchAudio(ctx context.Context, m Method, audio []byte) (SearchResponse, error) {
	return c.uploadSearch(ctx, "/api/search/"+string(m)+"/audio", "audio", audio)
}

// SearchImage uploads an image blob for feature-driven search.
func (c *Client) SearchImage(ctx context.Context, m Method, image []byte) (SearchResponse, error) {
	return c.uploadSearch(ctx, "/api/search/"+string(m)+"/image", "image", image)
}

func (c *Client) uploadSearch(ctx context.Context, path, field string, payload []byte) (SearchResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, field+".bin")
	if err != nil {
		return SearchResponse{}, fmt.Errorf("sdk: build multipart body: %w", err)
	}
	if _, err := fw.Write(payload); err != nil {
		return SearchResponse{}, fmt.Errorf("sdk: write multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return SearchResponse{}, fmt.Errorf("sdk: close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("sdk: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp SearchResponse
	if err := c.do(req, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// remarshal converts a decoded any value into a typed struct.
func remarshal(in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("remarshal: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("remarshal: %w", err)
	}
	return nil
}
