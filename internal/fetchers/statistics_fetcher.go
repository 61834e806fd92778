package fetchers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"attempt-stats/internal/models"
	"attempt-stats/internal/shared/loggers"

	"github.com/cenkalti/backoff/v5"
)

const maxErrorBodyBytes = 512

// Credentials identify the caller to the statistics API.
type Credentials struct {
	Client    string
	ClientKey string
}

//go:generate mockgen -source=statistics_fetcher.go -destination=./mocks/statistics_fetcher_mock.go -package=mocks
type StatisticsFetcher interface {
	// Fetch returns every attempt record the API reports for the window, in response order.
	Fetch(ctx context.Context, window models.TimeWindow) ([]models.RawAttemptRecord, error)
}

type statisticsFetcher struct {
	httpClient  *http.Client
	endpoint    string
	credentials Credentials
	policy      RetryPolicy
}

// NewHTTPClient returns a client with an overall request timeout that does not follow redirects,
// so 3xx responses surface as redirection errors.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func NewStatisticsFetcher(httpClient *http.Client, endpoint string, credentials Credentials, policy RetryPolicy) StatisticsFetcher {
	return &statisticsFetcher{
		httpClient:  httpClient,
		endpoint:    endpoint,
		credentials: credentials,
		policy:      policy,
	}
}

func (f *statisticsFetcher) Fetch(ctx context.Context, window models.TimeWindow) ([]models.RawAttemptRecord, error) {
	logger := loggers.Ctx(ctx)

	requestURL, err := f.requestURL(window, true)
	if err != nil {
		return nil, err
	}
	loggedURL, _ := f.requestURL(window, false)

	attempt := 0
	operation := func() ([]models.RawAttemptRecord, error) {
		attempt++
		records, err := f.fetchOnce(ctx, requestURL)
		if err == nil {
			metricFetchAttemptsTotal.WithLabelValues(outcomeOK).Inc()
			logger.Debug().
				Int(loggers.FieldAttempt, attempt).
				Int(loggers.FieldRecordCount, len(records)).
				Msg("fetched attempt statistics")
			return records, nil
		}

		var fetchErr *FetchError
		errors.As(err, &fetchErr)
		metricFetchAttemptsTotal.WithLabelValues(string(fetchErr.Kind)).Inc()
		logger.Warn().
			Err(err).
			Int(loggers.FieldHttpStatus, fetchErr.StatusCode).
			Str(loggers.FieldURL, loggedURL).
			Int(loggers.FieldAttempt, attempt).
			Msg("statistics request failed")

		if !fetchErr.Retryable() {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	records, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(f.policy.NewBackOff()),
		backoff.WithMaxTries(f.policy.maxTries()),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Info().
				Int(loggers.FieldAttempt, attempt).
				Dur("retry_in", next).
				Msg("retrying statistics request")
		}),
	)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Unwrap()
		}
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			// cancelled between attempts
			err = &FetchError{Kind: KindTransport, Err: err}
		}
		return nil, err
	}
	return records, nil
}

func (f *statisticsFetcher) fetchOnce(ctx context.Context, requestURL string) ([]models.RawAttemptRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the request url, client_key included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &FetchError{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var records []models.RawAttemptRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	return records, nil
}

// requestURL builds the GET url; withKey=false omits client_key for logging.
func (f *statisticsFetcher) requestURL(window models.TimeWindow, withKey bool) (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", &FetchError{Kind: KindTransport, Err: err}
	}
	q := u.Query()
	q.Set("client", f.credentials.Client)
	if withKey {
		q.Set("client_key", f.credentials.ClientKey)
	}
	q.Set("start", window.StartParam())
	q.Set("end", window.EndParam())
	u.RawQuery = q.Encode()
	return u.String(), nil
}
