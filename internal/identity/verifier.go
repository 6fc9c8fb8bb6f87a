// Package identity resolves bearer tokens against the external identity
// provider. All verification failures collapse into domain.ErrUnauthorized;
// the cause is logged, never surfaced to the caller.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/noticias-pt/news-api/domain"
)

const defaultTimeout = 5 * time.Second

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Users []struct {
		Email string `json:"email"`
	} `json:"users"`
}

type Verifier struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
}

var _ domain.TokenVerifier = (*Verifier)(nil)

// NewVerifier creates a token verifier against the given verification
// endpoint. A non-positive timeout falls back to the default.
func NewVerifier(endpoint string, timeout time.Duration) *Verifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Verifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "identity-provider",
			MaxRequests: 3,
			Interval:    30 * time.Second,
			Timeout:     60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				ratio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 5 && ratio >= 0.6
			},
		}),
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	res, err := v.breaker.Execute(func() (interface{}, error) {
		return v.verify(ctx, token)
	})
	if err != nil {
		logrus.Warnf("token verification failed: %v", err)
		return domain.Identity{}, domain.ErrUnauthorized
	}

	users := res.(*verifyResponse).Users
	if len(users) == 0 {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return domain.Identity{Email: users[0].Email}, nil
}

func (v *Verifier) verify(ctx context.Context, token string) (*verifyResponse, error) {
	body, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var parsed verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("malformed identity provider response: %w", err)
	}
	return &parsed, nil
}
