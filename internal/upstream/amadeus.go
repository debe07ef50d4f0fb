// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/antoineeeHao/itinera/internal/models"
)

const (
	// DefaultAmadeusBaseURL is the Amadeus self-service test environment.
	DefaultAmadeusBaseURL = "https://test.api.amadeus.com"

	tokenPath  = "/v1/security/oauth2/token"
	offersPath = "/v2/shopping/flight-offers"

	maxOffers = 5

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512
)

// AmadeusConfig configures the Amadeus flight-offers client.
type AmadeusConfig struct {
	ClientID     string
	ClientSecret string

	// BaseURL of the API.
	// Default: https://test.api.amadeus.com
	BaseURL string

	// MaxTPS paces outgoing requests. The test environment allows 10.
	// Default: 10
	MaxTPS float64

	// HTTPClient carries the transport used for token and offer requests.
	// Default: a client with a 30s timeout
	HTTPClient *http.Client
}

// AmadeusClient prices flights with the Amadeus flight-offers search.
// Access tokens come from the OAuth2 client-credentials flow and are
// refreshed automatically.
type AmadeusClient struct {
	baseURL string
	client  *http.Client
	pacer   *rate.Limiter
}

// NewAmadeusClient creates a client. Both credentials are required.
func NewAmadeusClient(cfg AmadeusConfig) (*AmadeusClient, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("amadeus client id and secret are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAmadeusBaseURL
	}
	if cfg.MaxTPS <= 0 {
		cfg.MaxTPS = 10
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	// The token source reads its transport from the context for the
	// lifetime of the client.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, cfg.HTTPClient)

	return &AmadeusClient{
		baseURL: baseURL,
		client:  cc.Client(tokenCtx),
		pacer:   rate.NewLimiter(rate.Limit(cfg.MaxTPS), 1),
	}, nil
}

// Supports implements Fetcher. Amadeus prices flights only.
func (c *AmadeusClient) Supports(kind models.ItemKind) bool {
	return kind == models.ItemFlight
}

// amadeusClass maps a flight class to the Amadeus travelClass value.
func amadeusClass(class models.FlightClass) string {
	switch class {
	case models.FlightPremium:
		return "PREMIUM_ECONOMY"
	case models.FlightBusiness:
		return "BUSINESS"
	default:
		return "ECONOMY"
	}
}

type offersResponse struct {
	Data []struct {
		Price struct {
			Currency   string `json:"currency"`
			Total      string `json:"total"`
			GrandTotal string `json:"grandTotal"`
		} `json:"price"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

// FetchPrice implements Fetcher.
func (c *AmadeusClient) FetchPrice(ctx context.Context, req PriceRequest) (Offer, error) {
	if !c.Supports(req.Item.Kind) {
		return Offer{}, ErrUnsupported
	}
	if req.Origin == "" || req.Airport == "" {
		return Offer{}, &Error{Kind: KindMalformed, Message: "origin and destination airports are required"}
	}

	if err := c.pacer.Wait(ctx); err != nil {
		return Offer{}, &Error{Kind: KindTimeout, Message: "waiting for request slot", Err: err}
	}

	params := url.Values{}
	params.Set("originLocationCode", req.Origin)
	params.Set("destinationLocationCode", req.Airport)
	params.Set("departureDate", models.DateKey(req.Date))
	params.Set("adults", "1")
	params.Set("travelClass", amadeusClass(req.Class))
	params.Set("max", strconv.Itoa(maxOffers))
	if req.Currency != "" {
		params.Set("currencyCode", req.Currency)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+offersPath+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return Offer{}, &Error{Kind: KindMalformed, Message: "build request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Offer{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Offer{}, ErrorForStatus(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Offer{}, &Error{Kind: KindMalformed, StatusCode: resp.StatusCode, Message: "decode offers", Err: err}
	}

	return cheapestOffer(&payload)
}

// cheapestOffer picks the lowest grandTotal, falling back to total when an
// offer has no grandTotal. Offers without a parseable price are skipped.
func cheapestOffer(payload *offersResponse) (Offer, error) {
	best := Offer{Amount: -1}
	for i := range payload.Data {
		price := payload.Data[i].Price
		raw := price.GrandTotal
		if raw == "" {
			raw = price.Total
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			continue
		}
		if best.Amount < 0 || amount < best.Amount {
			best = Offer{Amount: amount, Currency: price.Currency}
			if codes := payload.Data[i].ValidatingAirlineCodes; len(codes) > 0 {
				best.Carrier = codes[0]
			}
		}
	}

	if best.Amount < 0 {
		return Offer{}, ErrNoOffers
	}
	return best, nil
}

// classifyTransportError maps errors from the HTTP round trip, token
// retrieval included, onto upstream error kinds.
func classifyTransportError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		upErr := ErrorForStatus(status, "token request failed")
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			// Amadeus answers bad client credentials with 400/401 invalid_client.
			upErr.Kind = KindAuth
		}
		upErr.Err = err
		return upErr
	}

	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindNetwork, Message: "request failed", Err: err}
}
