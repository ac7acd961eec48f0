// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-kv-sync/internal/config"
	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/internal/utils"
	"github.com/MKhiriev/go-kv-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	requestTimeout time.Duration
	pingTimeout    time.Duration

	mu       sync.RWMutex
	endpoint string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// adapterCfg.HTTPAddress is optional: the endpoint may be set later with
// SetEndpoint once it is known from the device settings.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	client.SetTimeout(adapterCfg.RequestTimeout)

	h := &httpServerAdapter{
		client:         client,
		requestTimeout: adapterCfg.RequestTimeout,
		pingTimeout:    adapterCfg.PingTimeout,
		logger:         log,
	}

	if adapterCfg.HTTPAddress != "" {
		if err := h.SetEndpoint(adapterCfg.HTTPAddress); err != nil {
			return nil, fmt.Errorf("invalid adapter http address: %w", err)
		}
	}

	return h, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEndpointNotConfigured
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", errors.New("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetEndpoint(raw string) error {
	endpoint, err := normalizeEndpoint(raw)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.endpoint = endpoint
	h.mu.Unlock()
	return nil
}

func (h *httpServerAdapter) Endpoint() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.endpoint
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	endpoint := h.Endpoint()
	if endpoint == "" {
		return ErrEndpointNotConfigured
	}
	return h.ping(ctx, endpoint)
}

func (h *httpServerAdapter) PingURL(ctx context.Context, raw string) error {
	endpoint, err := normalizeEndpoint(raw)
	if err != nil {
		return err
	}
	return h.ping(ctx, endpoint)
}

func (h *httpServerAdapter) ping(ctx context.Context, endpoint string) error {
	ctx, cancel := context.WithTimeout(ctx, h.pingTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("action", models.ActionPing).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("ping request: %w", classifyTransportError(err))
	}

	if _, err = decodeEnvelope(resp); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) Sync(ctx context.Context, queue models.PendingChanges) (models.RemoteSnapshot, error) {
	env, err := h.post(ctx, models.ActionSync, models.SyncRequest{
		Action: models.ActionSync,
		Queue:  withEmptySlices(queue),
	})
	if err != nil {
		return models.RemoteSnapshot{}, err
	}
	return toSnapshot(env), nil
}

func (h *httpServerAdapter) Initialize(ctx context.Context, req models.InitializeRequest) (models.RemoteSnapshot, error) {
	req.Action = models.ActionInitialize
	if req.InitData == nil {
		req.InitData = map[string]string{}
	}
	if req.SelectedKeys == nil {
		req.SelectedKeys = []string{}
	}

	env, err := h.post(ctx, models.ActionInitialize, req)
	if err != nil {
		return models.RemoteSnapshot{}, err
	}
	return toSnapshot(env), nil
}

func (h *httpServerAdapter) UpdateEnabledKeys(ctx context.Context, keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	_, err := h.post(ctx, models.ActionUpdateEnabledKeys, models.UpdateEnabledKeysRequest{
		Action:      models.ActionUpdateEnabledKeys,
		EnabledKeys: keys,
	})
	return err
}

func (h *httpServerAdapter) GetStorage(ctx context.Context, requestedKeys []string) (models.RemoteSnapshot, error) {
	if requestedKeys == nil {
		requestedKeys = []string{}
	}
	env, err := h.post(ctx, models.ActionGetStorage, models.GetStorageRequest{
		Action:        models.ActionGetStorage,
		RequestedKeys: requestedKeys,
	})
	if err != nil {
		return models.RemoteSnapshot{}, err
	}
	return toSnapshot(env), nil
}

// post sends one protocol action and returns the decoded success envelope.
func (h *httpServerAdapter) post(ctx context.Context, action string, body any) (models.Envelope, error) {
	endpoint := h.Endpoint()
	if endpoint == "" {
		return models.Envelope{}, ErrEndpointNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	started := time.Now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		err = classifyTransportError(err)
		h.logger.Err(err).Str("func", "httpServerAdapter.post").Str("action", action).
			Dur("elapsed", time.Since(started)).Msg("request failed")
		return models.Envelope{}, fmt.Errorf("%s request: %w", action, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter.post").Str("action", action).
			Int("status", resp.StatusCode()).Msg("remote rejected request")
		return models.Envelope{}, fmt.Errorf("%s: %w", action, err)
	}

	h.logger.Debug().Str("func", "httpServerAdapter.post").Str("action", action).
		Int("status", resp.StatusCode()).Dur("elapsed", time.Since(started)).Msg("request completed")
	return env, nil
}

// classifyTransportError maps an error returned before any response was
// received to ErrTimeout or ErrNetwork.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// decodeEnvelope maps a received response to a success envelope or to an
// ApplicationError / ParseError.
func decodeEnvelope(resp *resty.Response) (models.Envelope, error) {
	body := resp.Body()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := strings.TrimSpace(excerpt(body))
		var env models.Envelope
		if json.Unmarshal(body, &env) == nil && env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return models.Envelope{}, &ApplicationError{Status: resp.StatusCode(), Message: msg}
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Envelope{}, &ParseError{Excerpt: excerpt(body), Err: err}
	}

	if !env.Succeeded() {
		return models.Envelope{}, &ApplicationError{Status: resp.StatusCode(), Message: env.ErrorMessage()}
	}

	return env, nil
}

// toSnapshot normalises the response shapes seen in the wild: the snapshot
// may be nested under data or sit at the top level, and be named storage_data
// or status_data.
func toSnapshot(env models.Envelope) models.RemoteSnapshot {
	snap := models.RemoteSnapshot{Values: map[string]string{}}

	var values map[string]string
	var notes map[string]models.Note
	if d := env.Data; d != nil {
		values = firstNonNil(d.StorageData, d.StatusData)
		notes = d.Notes
		snap.Initialized = d.Initialized
		snap.EnabledKeys = d.EnabledKeys
	}
	if values == nil {
		values = firstNonNil(env.StorageData, env.StatusData)
	}
	if notes == nil {
		notes = env.Notes
	}
	if env.Initialized != nil {
		snap.Initialized = snap.Initialized || *env.Initialized
	}
	if snap.EnabledKeys == nil {
		snap.EnabledKeys = env.EnabledKeys
	}

	for k, v := range values {
		snap.Values[k] = v
	}
	if notes != nil {
		snap.Notes = notes
		snap.HasNotes = true
	}

	return snap
}

func firstNonNil(maps ...map[string]string) map[string]string {
	for _, m := range maps {
		if m != nil {
			return m
		}
	}
	return nil
}

func withEmptySlices(p models.PendingChanges) models.PendingChanges {
	if p.Operations == nil {
		p.Operations = []models.Operation{}
	}
	if p.Notes == nil {
		p.Notes = []models.NoteUpdate{}
	}
	return p
}
