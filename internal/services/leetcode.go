package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"portfolio-backend/internal/metrics"
	apperrors "portfolio-backend/pkg/errors"
)

// statsQuery is the fixed upstream query: per-difficulty accepted counts,
// the user's global ranking, and per-difficulty question totals. The
// username always rides in the variables map, never in the query text.
const statsQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    submitStats: submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
    profile {
      ranking
    }
  }
  allQuestionsCount {
    difficulty
    count
  }
}
`

// maxStatsBody caps the relayed upstream response.
const maxStatsBody = 1 << 20

// StatsFetcher performs the upstream stats round-trip. It exists so the
// handler can be tested against a fake instead of a live endpoint.
type StatsFetcher interface {
	Fetch(ctx context.Context, username string) ([]byte, error)
}

// LeetCodeService proxies profile statistics from the upstream GraphQL API.
// Each call is a fresh round-trip: no retry, no cache, transport-default
// timeouts.
type LeetCodeService struct {
	endpoint string
	client   *http.Client
}

// NewLeetCodeService creates a new stats proxy service
func NewLeetCodeService(endpoint string) *LeetCodeService {
	return &LeetCodeService{
		endpoint: endpoint,
		client:   http.DefaultClient,
	}
}

// Fetch issues the upstream query for username and returns the response body
// verbatim. The request is bound to ctx, so an aborted inbound request
// abandons the upstream call.
func (s *LeetCodeService) Fetch(ctx context.Context, username string) ([]byte, error) {
	payload := map[string]interface{}{
		"query": statsQuery,
		"variables": map[string]string{
			"username": username,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Proxy("failed to encode upstream query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Proxy("failed to create upstream request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[LEETCODE] Upstream request failed: %v", err)
		metrics.RecordLeetCodeFetch(false)
		return nil, apperrors.Proxy("upstream request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxStatsBody))
	if err != nil {
		log.Printf("[LEETCODE] Failed to read upstream response: %v", err)
		metrics.RecordLeetCodeFetch(false)
		return nil, apperrors.Proxy("failed to read upstream response", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[LEETCODE] Upstream returned status %d", resp.StatusCode)
		metrics.RecordLeetCodeFetch(false)
		return nil, apperrors.Proxy(fmt.Sprintf("upstream returned status %d", resp.StatusCode), nil)
	}

	metrics.RecordLeetCodeFetch(true)
	return data, nil
}
