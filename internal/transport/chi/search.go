package chi

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/curio-labs/searchlab/internal/domain"
	"github.com/curio-labs/searchlab/internal/domain/search/method"
	"github.com/curio-labs/searchlab/internal/domain/search/request"
	"github.com/curio-labs/searchlab/internal/domain/search/result"
	"github.com/curio-labs/searchlab/internal/metrics"
)

const maxUploadSize = 10 << 20 // 10MB

type searchBody struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type searchResultItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Category    string  `json:"category,omitempty"`
	Badge       string  `json:"badge,omitempty"`
	Score       float64 `json:"score"`
}

type searchResponse struct {
	Results          []searchResultItem `json:"results"`
	Query            string             `json:"query"`
	Method           string             `json:"method"`
	LatencyMS        float64            `json:"latency_ms"`
	TotalHits        int                `json:"total_hits"`
	Transcription    string             `json:"transcription,omitempty"`
	RewrittenQuery   string             `json:"rewritten_query,omitempty"`
	DetectedFeatures []string           `json:"detected_features,omitempty"`
}

// handleSearch handles POST /api/search/{method}.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	m, ok := s.methodParam(w, r)
	if !ok {
		return
	}

	var body searchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	if m != method.Keyword {
		s.latency.sleep()
	}

	resp, err := s.runSearch(r, m, body.Query, body.TopK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseFrom(resp, m, time.Since(start)))
}

// handleSearchAll handles POST /api/search/all.
func (s *Server) handleSearchAll(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topK := body.TopK
	if topK == 0 {
		topK = s.defaultTopK
	}

	start := time.Now()
	responses, err := s.search.SearchAll(r.Context(), body.Query, topK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	elapsed := time.Since(start)

	out := make(map[string]any, len(responses)+1)
	for m, resp := range responses {
		s.observeSearch(m, &resp)
		out[string(m)] = searchResponseFrom(resp, m, elapsed)
	}
	out["total_latency_ms"] = roundMS(elapsed)

	writeJSON(w, http.StatusOK, out)
}

// handleSearchAudio handles POST /api/search/{method}/audio.
func (s *Server) handleSearchAudio(w http.ResponseWriter, r *http.Request) {
	m, ok := s.methodParam(w, r)
	if !ok {
		return
	}

	audio, ok := s.readUpload(w, r, "audio")
	if !ok {
		return
	}

	start := time.Now()
	s.latency.sleep()

	transcription, err := s.transcriber.Transcribe(r.Context(), audio)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.runSearch(r, m, transcription, 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := searchResponseFrom(resp, m, time.Since(start))
	out.Transcription = transcription
	writeJSON(w, http.StatusOK, out)
}

// handleSearchImage handles POST /api/search/{method}/image.
func (s *Server) handleSearchImage(w http.ResponseWriter, r *http.Request) {
	m, ok := s.methodParam(w, r)
	if !ok {
		return
	}

	image, ok := s.readUpload(w, r, "image")
	if !ok {
		return
	}

	start := time.Now()
	s.latency.sleep()

	features, err := s.analyzer.Analyze(r.Context(), image)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.runSearch(r, m, strings.Join(features, " "), 0)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := searchResponseFrom(resp, m, time.Since(start))
	out.DetectedFeatures = features
	writeJSON(w, http.StatusOK, out)
}

// runSearch builds and executes a search request. topK 0 means the
// server default; negative values fail validation downstream.
func (s *Server) runSearch(
	r *http.Request, m method.Method, query string, topK int,
) (result.Response, error) {
	if topK == 0 {
		topK = s.defaultTopK
	}

	req, err := request.New(query, m, topK)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(string(m), "error").Inc()
		return result.Response{}, err
	}

	resp, err := s.search.Search(r.Context(), req)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(string(m), "error").Inc()
		return result.Response{}, err
	}

	s.observeSearch(m, &resp)
	return resp, nil
}

func (s *Server) observeSearch(m method.Method, resp *result.Response) {
	metrics.SearchRequestsTotal.WithLabelValues(string(m), "ok").Inc()
	metrics.SearchResultsReturned.WithLabelValues(string(m)).Observe(float64(len(resp.Results())))
	if _, ok := resp.Metadata()["rewritten_query"]; ok {
		metrics.QueryRewritesTotal.Inc()
	}
}

// methodParam parses and validates the {method} URL parameter.
func (s *Server) methodParam(w http.ResponseWriter, r *http.Request) (method.Method, bool) {
	m := method.Method(chi.URLParam(r, "method"))
	if !m.IsValid() {
		writeError(w, http.StatusBadRequest, codeUnknownMethod,
			domain.ErrUnknownMethod.Error()+": "+strconv.Quote(string(m)))
		return "", false
	}
	return m, true
}

// readUpload extracts a multipart file field from the request body.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request, field string) ([]byte, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid multipart body: "+err.Error())
		return nil, false
	}

	file, _, err := r.FormFile(field)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, field+" file is required")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "failed to read "+field+" upload")
		return nil, false
	}
	return data, true
}

func searchResponseFrom(resp result.Response, m method.Method, elapsed time.Duration) searchResponse {
	results := resp.Results()
	items := make([]searchResultItem, len(results))
	for i := range results {
		items[i] = resultToItem(&results[i])
	}

	out := searchResponse{
		Results:   items,
		Query:     resp.Query(),
		Method:    string(m),
		LatencyMS: roundMS(elapsed),
		TotalHits: resp.TotalHits(),
	}
	if rewritten, ok := resp.Metadata()["rewritten_query"].(string); ok {
		out.RewrittenQuery = rewritten
	}
	return out
}

func resultToItem(r *result.Result) searchResultItem {
	item := searchResultItem{
		ID:    r.DocID(),
		Score: r.Score(),
	}
	meta := r.Metadata()
	item.Name, _ = meta["name"].(string)
	item.Description, _ = meta["description"].(string)
	item.Category, _ = meta["category"].(string)
	item.ImageURL, _ = meta["image_url"].(string)
	item.Badge, _ = meta["badge"].(string)
	if p, ok := meta["price"].(float64); ok {
		item.Price = p
	}
	return item
}

// roundMS converts a duration to milliseconds rounded to 2 decimal places.
func roundMS(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000*100) / 100
}
