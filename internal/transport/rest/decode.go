package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/heartmarshall/tupa/internal/service/decoding"
)

const maxBodyBytes = 1 << 20

// decodingService is the subset of the decoding service the handlers use.
type decodingService interface {
	Decode(ctx context.Context, in decoding.DecodeInput) (domain.Position, error)
	DecodeBatch(ctx context.Context, in decoding.BatchInput) ([]decoding.Result, error)
	Verify(ctx context.Context, in decoding.VerifyInput) (decoding.Report, error)
}

// corpusSources lists the seeded reference corpora.
type corpusSources interface {
	Sources(ctx context.Context) ([]domain.CorpusSource, error)
}

// DecodeHandler serves the decoding endpoints.
type DecodeHandler struct {
	svc     decodingService
	sources corpusSources
	log     *slog.Logger
}

// NewDecodeHandler creates a DecodeHandler.
func NewDecodeHandler(svc decodingService, sources corpusSources, logger *slog.Logger) *DecodeHandler {
	return &DecodeHandler{svc: svc, sources: sources, log: logger.With("handler", "decode")}
}

type positionResponse struct {
	Description string `json:"description"`
	Initial     string `json:"initial"`
	Openness    string `json:"openness,omitempty"`
	Grade       string `json:"grade"`
	Class       string `json:"class,omitempty"`
	Rhyme       string `json:"rhyme"`
	Tone        string `json:"tone"`
}

func toPositionResponse(p domain.Position) *positionResponse {
	return &positionResponse{
		Description: p.Description(),
		Initial:     p.Initial().String(),
		Openness:    p.Openness().String(),
		Grade:       p.Grade().String(),
		Class:       p.Class().String(),
		Rhyme:       p.Rhyme().String(),
		Tone:        p.Tone().String(),
	}
}

type decodeResponse struct {
	Syllable string            `json:"syllable"`
	Position *positionResponse `json:"position"`
}

// Decode handles GET /api/v1/decode?syllable=…&marginal=….
func (h *DecodeHandler) Decode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	marginal, err := marginalParam(q.Has("marginal"), q.Get("marginal"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	syllable := q.Get("syllable")
	pos, err := h.svc.Decode(r.Context(), decoding.DecodeInput{Syllable: syllable, Marginal: marginal})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, decodeResponse{
		Syllable: domain.NormalizeSyllable(syllable),
		Position: toPositionResponse(pos),
	})
}

type batchRequest struct {
	Syllables []string `json:"syllables"`
	Marginal  *string  `json:"marginal"`
}

type batchItem struct {
	Syllable string            `json:"syllable"`
	Position *positionResponse `json:"position"`
	Error    string            `json:"error,omitempty"`
	Kind     string            `json:"kind,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
	Failed  int         `json:"failed"`
}

// DecodeBatch handles POST /api/v1/decode/batch.
func (h *DecodeHandler) DecodeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var marginal *domain.MarginalKinds
	if req.Marginal != nil {
		m, err := marginalParam(true, *req.Marginal)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		marginal = m
	}

	results, err := h.svc.DecodeBatch(r.Context(), decoding.BatchInput{Syllables: req.Syllables, Marginal: marginal})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := batchResponse{Results: make([]batchItem, len(results))}
	for i, res := range results {
		item := batchItem{Syllable: res.Syllable}
		if res.Err != nil {
			item.Error = res.Err.Error()
			item.Kind = res.Kind().String()
			resp.Failed++
		} else {
			item.Position = toPositionResponse(res.Position)
		}
		resp.Results[i] = item
	}

	writeJSON(w, http.StatusOK, resp)
}

type failureResponse struct {
	Spelling string `json:"spelling"`
	Expected string `json:"expected"`
	Actual   string `json:"actual,omitempty"`
	Error    string `json:"error,omitempty"`
}

type verifyResponse struct {
	Source   string            `json:"source"`
	Run      int               `json:"run"`
	Failed   int               `json:"failed"`
	Passed   bool              `json:"passed"`
	Failures []failureResponse `json:"failures"`
}

// Verify handles GET /api/v1/corpus/verify?source=…&limit=….
func (h *DecodeHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := decoding.VerifyInput{Source: q.Get("source")}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		in.PrintLimit = &n
	}

	report, err := h.svc.Verify(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := verifyResponse{
		Source:   in.Source,
		Run:      report.Run,
		Failed:   report.Failed,
		Passed:   report.Passed(),
		Failures: make([]failureResponse, len(report.Failures)),
	}
	for i, f := range report.Failures {
		fr := failureResponse{Spelling: f.Spelling, Expected: f.Expected, Actual: f.Actual}
		if f.Err != nil {
			fr.Error = f.Err.Error()
		}
		resp.Failures[i] = fr
	}

	writeJSON(w, http.StatusOK, resp)
}

type sourceResponse struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Sources handles GET /api/v1/corpus/sources.
func (h *DecodeHandler) Sources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.sources.Sources(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]sourceResponse, len(sources))
	for i, s := range sources {
		resp[i] = sourceResponse{Slug: s.Slug, Count: s.Count}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sources": resp})
}

// marginalParam parses an explicit marginal selector. An absent
// parameter yields nil so the configured default applies.
func marginalParam(present bool, raw string) (*domain.MarginalKinds, error) {
	if !present {
		return nil, nil
	}
	kinds, err := domain.ParseMarginalKinds(raw)
	if err != nil {
		return nil, err
	}
	return &kinds, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return errors.New("request body too large")
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		default:
			return errors.New("invalid JSON body")
		}
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
