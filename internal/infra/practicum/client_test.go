package practicum

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	l, _ := test.NewNullLogger()
	return NewClient(endpoint, "secret", nil, logrus.NewEntry(l))
}

func serviceError(t *testing.T, err error) *homework.ServiceError {
	t.Helper()
	var serr *homework.ServiceError
	require.True(t, errors.As(err, &serr), "expected *homework.ServiceError, got %T (%v)", err, err)
	return serr
}

func TestFetchStatuses_OK(t *testing.T) {
	var gotAuth, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_date": 1700000000, "homeworks": [{"homework_name": "X", "status": "approved"}]}`))
	}))
	defer srv.Close()

	payload, err := newTestClient(t, srv.URL).FetchStatuses(context.Background(), 1699990000)
	require.NoError(t, err)

	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1699990000", gotFrom)

	body, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1700000000), body["current_date"])
	assert.Len(t, body["homeworks"], 1)
}

func TestFetchStatuses_KeepsEndpointQuery(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	payload, err := newTestClient(t, srv.URL+"/api/?lang=ru").FetchStatuses(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{}, payload)
	assert.Contains(t, rawQuery, "lang=ru")
	assert.Contains(t, rawQuery, "from_date=0")
}

func TestFetchStatuses_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchStatuses(context.Background(), 0)
	serr := serviceError(t, err)
	assert.Equal(t, homework.ServiceEndpointUnavailable, serr.Kind)
	assert.Equal(t, http.StatusNotFound, serr.StatusCode)
}

func TestFetchStatuses_BadStatus(t *testing.T) {
	for _, code := range []int{http.StatusNoContent, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		_, err := newTestClient(t, srv.URL).FetchStatuses(context.Background(), 0)
		srv.Close()

		serr := serviceError(t, err)
		assert.Equal(t, homework.ServiceBadStatus, serr.Kind)
		assert.Equal(t, code, serr.StatusCode)
	}
}

func TestFetchStatuses_NotFoundRendersDifferentlyFromServerError(t *testing.T) {
	notFound := &homework.ServiceError{Kind: homework.ServiceEndpointUnavailable, StatusCode: 404}
	serverErr := &homework.ServiceError{Kind: homework.ServiceBadStatus, StatusCode: 500}

	assert.NotEqual(t, notFound.Error(), serverErr.Error())
	assert.Contains(t, serverErr.Error(), "500")
}

func TestFetchStatuses_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).FetchStatuses(context.Background(), 0)
	serr := serviceError(t, err)
	assert.Equal(t, homework.ServiceTransport, serr.Kind)
	assert.Error(t, serr.Err)
}

func TestFetchStatuses_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	_, err := newTestClient(t, url).FetchStatuses(context.Background(), 0)
	serr := serviceError(t, err)
	assert.Equal(t, homework.ServiceTransport, serr.Kind)
}
