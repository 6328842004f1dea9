package restimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pawtrail/pawtrail-core/internal/ratelimit"
	"github.com/pawtrail/pawtrail-core/internal/remote"
	"github.com/pawtrail/pawtrail-core/pkg/config"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"github.com/pawtrail/pawtrail-core/pkg/retry"
	"go.uber.org/fx"
)

// RestImpl talks JSON over HTTPS to the backend with bearer-token auth.
// Retry and rate limiting live here, not in the stores above it.
type RestImpl struct {
	http     *http.Client
	baseURL  string
	token    string
	limiter  ratelimit.Limiter
	logger   logger.Logger
	retryCfg retry.Config
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *RestImpl {
	return &RestImpl{
		http: &http.Client{
			Timeout: time.Duration(opts.Config.API.TimeoutSeconds) * time.Second,
		},
		baseURL:  strings.TrimRight(opts.Config.API.BaseURL, "/"),
		token:    opts.Config.API.Token,
		limiter:  ratelimit.NewClientLimiter(opts.Config.API.RatePerSecond, opts.Config.API.RateBurst),
		logger:   opts.Logger.WithComponent("RestService"),
		retryCfg: retry.DefaultConfig(),
	}
}

var _ remote.Service = (*RestImpl)(nil)

// call performs one API request: rate limit, build, send, map status, decode.
// 5xx and transport errors are retried; 4xx are permanent.
func (c *RestImpl) call(ctx context.Context, op, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &remote.CallError{Op: op, Err: err}
		}
		payload = b
	}

	operation := func() error {
		var rdr io.Reader
		if payload != nil {
			rdr = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
		if err != nil {
			return backoff.Permanent(&remote.CallError{Op: op, Err: err})
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return &remote.CallError{Op: op, Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return backoff.Permanent(remote.ErrAuthRequired)
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(remote.ErrNotFound)
		case resp.StatusCode >= 500:
			return &remote.CallError{Op: op, StatusCode: resp.StatusCode}
		case resp.StatusCode >= 400:
			return backoff.Permanent(&remote.CallError{Op: op, StatusCode: resp.StatusCode})
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(&remote.CallError{Op: op, Err: err})
		}
		return nil
	}

	return retry.Do(ctx, c.logger, op, operation, c.retryCfg)
}
