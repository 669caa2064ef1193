// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"homework_status_bot/internal/domain/homework"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// Client queries the Practicum homework_statuses endpoint.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, httpClient *http.Client, logger *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchStatuses performs one GET with from_date=fromDate and returns the decoded
// JSON body as is. Every failure is a *homework.ServiceError; there are no retries.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, transportError(errors.Wrap(err, "invalid endpoint"))
	}
	query := reqURL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, transportError(errors.Wrap(err, "build request"))
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	logCtx := c.logger.WithField("from_date", fromDate)
	logCtx.Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &homework.ServiceError{Kind: homework.ServiceEndpointUnavailable, StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &homework.ServiceError{Kind: homework.ServiceBadStatus, StatusCode: resp.StatusCode}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, transportError(errors.Wrap(err, "decode response body"))
	}

	logCtx.Debug("Homework statuses received")
	return payload, nil
}

func transportError(err error) *homework.ServiceError {
	return &homework.ServiceError{Kind: homework.ServiceTransport, Err: err}
}
