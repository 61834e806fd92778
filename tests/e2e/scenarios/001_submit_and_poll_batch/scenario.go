package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data and must match expected results.
const (
	usersCount       = 40 // distinct lti_user_id values
	attemptsPerUser  = 5  // attempts per user, every 2nd one correct
	malformedRecords = 3  // records whose passback_params cannot be decoded
)

// ### End - fixed configs

type rawAttempt struct {
	UserID         string `json:"lti_user_id"`
	PassbackParams string `json:"passback_params"`
	AttemptType    string `json:"attempt_type"`
	CreatedAt      string `json:"created_at"`
	IsCorrect      *bool  `json:"is_correct"`
}

type summary struct {
	TotalAttempts      int `json:"total_attempts"`
	SuccessfulAttempts int `json:"successful_attempts"`
	UniqueUsers        int `json:"unique_users"`
}

type batchReport struct {
	BatchID string   `json:"batchId"`
	Status  string   `json:"status"`
	Fetched int      `json:"fetched"`
	Skipped int      `json:"skipped"`
	Summary *summary `json:"summary"`
	Error   string   `json:"error"`
}

// main runs the e2e scenario: 001_submit_and_poll_batch
//
// It starts a fake statistics API on statisticsAddr and drives a running attempt-stats
// server (started with -mode serve and api.url pointing at the fake API):
//   - POST /batches for a one-day window answers 202 with a batch id
//   - the fake API receives client, client_key, start and end query parameters
//   - GET /batches/{batchId} eventually reports a terminal status
//
// Expected results:
//   - status "succeeded" (or "partially_delivered" when a configured sink is unreachable)
//   - fetched = usersCount*attemptsPerUser + malformedRecords, skipped = malformedRecords
//   - summary = {total_attempts: 200, successful_attempts: 120, unique_users: 40}
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"   // attempt-stats server
	statisticsAddr := "localhost:18081" // fake statistics API, configure api.url=http://localhost:18081/statistics
	pollTimeout := 2 * time.Minute

	stopAPI, requests, err := startStatisticsAPI(statisticsAddr)
	if err != nil {
		fail("start statistics api: %v", err)
	}
	defer stopAPI()

	body := []byte(`{"start":"2023-04-01 00:00:00.000000","end":"2023-04-02 00:00:00.000000"}`)
	resp, err := http.Post(baseURL+"/batches", "application/json", bytes.NewReader(body))
	if err != nil {
		fail("submit batch: %v", err)
	}
	var accepted struct {
		BatchID string `json:"batchId"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&accepted)
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted || decodeErr != nil {
		fail("submit batch: status %d, decode error %v", resp.StatusCode, decodeErr)
	}
	fmt.Printf("Batch %s accepted\n", accepted.BatchID)

	report, err := pollReport(baseURL, accepted.BatchID, pollTimeout)
	if err != nil {
		fail("poll report: %v", err)
	}

	select {
	case query := <-requests:
		fmt.Printf("Statistics API called with %s\n", query)
	default:
		fail("statistics api was never called")
	}

	expectedFetched := usersCount*attemptsPerUser + malformedRecords
	expected := summary{
		TotalAttempts:      usersCount * attemptsPerUser,
		SuccessfulAttempts: usersCount * ((attemptsPerUser + 1) / 2),
		UniqueUsers:        usersCount,
	}
	switch {
	case report.Status != "succeeded" && report.Status != "partially_delivered":
		fail("unexpected status %q: %s", report.Status, report.Error)
	case report.Fetched != expectedFetched || report.Skipped != malformedRecords:
		fail("fetched=%d skipped=%d, want %d and %d", report.Fetched, report.Skipped, expectedFetched, malformedRecords)
	case report.Summary == nil || *report.Summary != expected:
		fail("summary %+v, want %+v", report.Summary, expected)
	}
	fmt.Printf("PASS: batch %s %s with %+v\n", report.BatchID, report.Status, *report.Summary)
}

func startStatisticsAPI(addr string) (func(), <-chan string, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	requests := make(chan string, 16)
	mux := http.NewServeMux()
	mux.HandleFunc("/statistics", func(w http.ResponseWriter, r *http.Request) {
		select {
		case requests <- r.URL.Query().Encode():
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(attempts())
	})

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() { _ = server.Serve(listener) }()

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
	return stop, requests, nil
}

func attempts() []rawAttempt {
	var records []rawAttempt
	for user := 0; user < usersCount; user++ {
		userID := fmt.Sprintf("user-%03d", user)
		for attempt := 0; attempt < attemptsPerUser; attempt++ {
			correct := attempt%2 == 0
			records = append(records, rawAttempt{
				UserID:         userID,
				PassbackParams: fmt.Sprintf("{'oauth_consumer_key': '', 'lis_result_sourcedid': 'course-v1:%s', 'lis_outcome_service_url': 'https://lms.example.org/grade_handler'}", userID),
				AttemptType:    "submit",
				CreatedAt:      fmt.Sprintf("2023-04-01 12:%02d:00.000000", attempt),
				IsCorrect:      &correct,
			})
		}
	}
	for i := 0; i < malformedRecords; i++ {
		records = append(records, rawAttempt{
			UserID:         fmt.Sprintf("broken-%d", i),
			PassbackParams: "{'oauth_consumer_key': ",
			AttemptType:    "run",
			CreatedAt:      "2023-04-01 13:00:00.000000",
		})
	}
	return records
}

func pollReport(baseURL, batchID string, timeout time.Duration) (*batchReport, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/batches/" + batchID)
		if err != nil {
			return nil, err
		}
		var report batchReport
		err = json.NewDecoder(resp.Body).Decode(&report)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if report.Status != "pending" {
			return &report, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, errors.New("batch did not finish before timeout")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}
