package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	cerr "github.com/fleetadm/fleetadm/cmd/fleetadm/errors"
	"github.com/fleetadm/fleetadm/pkg/api/types/envelope"
	apierr "github.com/fleetadm/fleetadm/pkg/api/types/errors"
)

// do sends one request and hands back the raw response body.
//
// Failures come out classified under the sentinels of the errors
// package. A 401 on an authenticated request additionally expires the
// session; the server has spoken, whatever call this was.
func (c *client) do(
	ctx context.Context, method string, url string, payload any, authed bool,
) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.sink.Info("%s %s", method, url)

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apierr.ErrConnection, err)
	}

	if 200 <= resp.StatusCode && resp.StatusCode < 300 {
		return content, nil
	}

	if authed && resp.StatusCode == http.StatusUnauthorized {
		c.session.Expire()
	}
	message := envelope.ErrorMessage(content, http.StatusText(resp.StatusCode))
	httpErr := apierr.NewHTTPError(resp.StatusCode, message)
	return nil, cerr.NewCuiError(
		httpErr.Error(),
		cerr.WithVerbose(string(content)),
		cerr.WithCause(httpErr),
	)
}

func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", apierr.ErrTimeout, err)
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: %s", apierr.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %s", apierr.ErrConnection, err)
}
