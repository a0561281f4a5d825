package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/readiness-cli/internal/config"
	"github.com/sells-group/readiness-cli/internal/offer"
	"github.com/sells-group/readiness-cli/internal/store"
)

// validOffer omits the derived fields on purpose: the API normalizes before
// scoring.
func validOffer() offer.DiagnosticInput {
	return offer.DiagnosticInput{
		OfferType:      offer.OfferDoneForYou,
		PromiseOutcome: offer.OutcomeMeetingsBooked,

		Industry:        offer.IndustryB2BSoftware,
		VerticalSegment: offer.VerticalSaaS,
		ICPSize:         offer.SizeSMB,
		ICPMaturity:     offer.MaturityScaling,
		ICPSpecificity:  offer.SpecificityNamed,

		Pricing: offer.Pricing{
			Structure: offer.PricingRecurring,
			Recurring: &offer.RecurringPricing{PriceTier: offer.Recurring3KTo6K},
		},

		RiskModel:             offer.RiskConditional,
		FulfillmentComplexity: offer.FulfillmentLightOnboarding,
		ProofLevel:            offer.ProofCaseStudies,
	}
}

func newTestServer(t *testing.T, serverCfg config.ServerConfig) *httptest.Server {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { s.Close() }) //nolint:errcheck

	srv := httptest.NewServer(newRouter(s, serverCfg))
	t.Cleanup(srv.Close)
	return srv
}

func defaultServerCfg() config.ServerConfig {
	return config.ServerConfig{AllowedOrigins: []string{"*"}}
}

func postOffer(t *testing.T, srv *httptest.Server, input offer.DiagnosticInput) *http.Response {
	t.Helper()
	body, err := json.Marshal(input)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/v1/evaluations", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeRecord(t *testing.T, resp *http.Response) store.Record {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck

	var rec store.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	return rec
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, defaultServerCfg())

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_CreateAndGetEvaluation(t *testing.T) {
	srv := newTestServer(t, defaultServerCfg())

	resp := postOffer(t, srv, validOffer())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeRecord(t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 85, created.Score.AlignmentScore)
	assert.True(t, created.Score.OutboundReady)
	// Derived fields were filled server-side.
	assert.Equal(t, offer.BucketLeadFlow, created.Input.PromiseBucket)
	assert.Equal(t, offer.SegmentHighVelocity, created.Input.ScoringSegment)

	getResp, err := http.Get(srv.URL + "/v1/evaluations/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	got := decodeRecord(t, getResp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Score.AlignmentScore, got.Score.AlignmentScore)
}

func TestServer_CreateEvaluation_BadBody(t *testing.T) {
	srv := newTestServer(t, defaultServerCfg())

	resp, err := http.Post(srv.URL+"/v1/evaluations", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_CreateEvaluation_Incomplete(t *testing.T) {
	srv := newTestServer(t, defaultServerCfg())

	input := validOffer()
	input.ProofLevel = ""

	resp := postOffer(t, srv, input)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "proof_level")
}

func TestServer_GetEvaluation_NotFound(t *testing.T) {
	srv := newTestServer(t, defaultServerCfg())

	resp, err := http.Get(srv.URL + "/v1/evaluations/does-not-exist")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ListEvaluations(t *testing.T) {
	srv := newTestServer(t, defaultServerCfg())

	for i := 0; i < 3; i++ {
		resp := postOffer(t, srv, validOffer())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close() //nolint:errcheck
	}

	t.Run("all", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/evaluations")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var records []store.Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		assert.Len(t, records, 3)
	})

	t.Run("filtered", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/evaluations?label=strong&ready=true&limit=2")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var records []store.Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		assert.Len(t, records, 2)
	})

	t.Run("no match is an empty array", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/evaluations?label=weak")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var records []store.Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("bad ready param", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/evaluations?ready=maybe")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad limit param", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/evaluations?limit=-1")
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_RateLimit(t *testing.T) {
	cfg := defaultServerCfg()
	cfg.RatePerSecond = 0.001
	cfg.RateBurst = 1
	srv := newTestServer(t, cfg)

	first, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	first.Body.Close() //nolint:errcheck
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	second.Body.Close() //nolint:errcheck
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
}
