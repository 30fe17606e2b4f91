// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils is a client for the NCBI Entrez E-utilities API,
// covering the two endpoints the engine needs: esearch (term to PMID
// list) and efetch (PMIDs to citation XML).
//
// The client rate-limits itself to NCBI's published ceiling: 3 requests
// per second without an API key, 10 with one. Responses that still come
// back 429 are retried with backoff by httputil.DoWithRetry.
package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-engine/internal/httputil"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

// apiBase is the E-utilities endpoint root. Declared as a var so tests
// can substitute an httptest server.
var apiBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// toolName identifies this client in the tool parameter NCBI asks
// automated callers to send.
const toolName = "pubmed-engine"

const (
	rateWithoutKey = 3
	rateWithKey    = 10
	burstSize      = 3

	// maxResponseBytes bounds how much of a response body is read.
	// A 200-record efetch batch runs a few MB; 100 MB is far past any
	// legitimate response.
	maxResponseBytes = 100 << 20
)

// Client talks to the E-utilities endpoints. It is safe for concurrent
// use; the rate limiter is shared across goroutines.
type Client struct {
	cfg     types.EutilsConfig
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient builds a Client from cfg. A nil logger disables
// diagnostics.
func NewClient(cfg types.EutilsConfig, log *zap.Logger) *Client {
	cfg.ApplyDefaults()
	if log == nil {
		log = zap.NewNop()
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = rateWithoutKey
		if cfg.APIKey != "" {
			rps = rateWithKey
		}
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burstSize),
		log:     log,
	}
}

// SearchResult is one esearch page: the total hit count for the term
// and the PMIDs on this page.
type SearchResult struct {
	// Count is the total number of records matching the term, which
	// may far exceed the page returned.
	Count int

	// PMIDs are the identifiers on this page, in the server's ranking
	// order.
	PMIDs []uint64
}

// esearch returns numbers as JSON strings.
type esearchEnvelope struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search runs an esearch query for term, returning one page of PMIDs
// starting at retStart. A retMax of 0 uses the configured page size.
func (c *Client) Search(ctx context.Context, term string, retStart, retMax int) (*SearchResult, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty search term")
	}
	if retMax <= 0 {
		retMax = c.cfg.RetMax
	}

	params := c.baseParams()
	params.Set("term", term)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(retMax))
	if retStart > 0 {
		params.Set("retstart", strconv.Itoa(retStart))
	}

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, err
	}

	var env esearchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}

	count, err := strconv.Atoi(env.Result.Count)
	if err != nil {
		return nil, fmt.Errorf("esearch count %q: %w", env.Result.Count, err)
	}

	result := &SearchResult{Count: count}
	for _, id := range env.Result.IDList {
		pmid, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			c.log.Warn("skipping unparseable PMID in esearch response",
				zap.String("id", id))
			continue
		}
		result.PMIDs = append(result.PMIDs, pmid)
	}

	c.log.Debug("esearch page",
		zap.String("term", term),
		zap.Int("count", count),
		zap.Int("page_size", len(result.PMIDs)),
		zap.Int("retstart", retStart))

	return result, nil
}

// Fetch retrieves citation XML for pmids via efetch, batching requests
// at the configured batch size. It returns one XML document per batch,
// in input order; documents are kept separate because each is a
// complete standalone response. An empty pmid list fetches nothing.
func (c *Client) Fetch(ctx context.Context, pmids []uint64) ([][]byte, error) {
	if len(pmids) == 0 {
		return nil, nil
	}

	var docs [][]byte
	for start := 0; start < len(pmids); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(pmids) {
			end = len(pmids)
		}
		batch := pmids[start:end]

		params := c.baseParams()
		params.Set("id", joinPMIDs(batch))
		params.Set("retmode", "xml")

		body, err := c.get(ctx, "efetch.fcgi", params)
		if err != nil {
			return nil, fmt.Errorf("batch starting at PMID %d: %w", batch[0], err)
		}
		docs = append(docs, body)

		c.log.Debug("efetch batch",
			zap.Int("ids", len(batch)),
			zap.Int("bytes", len(body)))
	}

	return docs, nil
}

// baseParams returns the query parameters common to every request.
func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("tool", toolName)
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	return params
}

// get performs one rate-limited GET against an E-utilities endpoint and
// returns the response body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/%s?%s", apiBase, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}
	return body, nil
}

func joinPMIDs(pmids []uint64) string {
	ids := make([]string, len(pmids))
	for i, p := range pmids {
		ids[i] = strconv.FormatUint(p, 10)
	}
	return strings.Join(ids, ",")
}
