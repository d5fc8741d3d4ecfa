package eventdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ceremony/internal/metrics"
	"ceremony/internal/models"
)

// ForwardRSVP hands a guest's completed RSVP to the event API. Nothing is
// persisted locally; the remote service owns responses. Demo tokens are
// accepted and dropped so sales previews can exercise the form.
func (c *Client) ForwardRSVP(ctx context.Context, token string, sub *models.RSVPSubmission) error {
	if _, ok := DemoEvent(token); ok {
		metrics.RSVPForwards.WithLabelValues("ok").Inc()
		return nil
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("rsvp marshal: %w", err)
	}

	url := fmt.Sprintf("%s/api/public/events/%s/rsvp", c.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RSVPForwards.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.RSVPForwards.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: token %q", ErrNotFound, token)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		metrics.RSVPForwards.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	metrics.RSVPForwards.WithLabelValues("ok").Inc()
	return nil
}
