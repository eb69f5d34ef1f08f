package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"skill-tracking-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create Recurring Event E2E", func(t *testing.T) {
		var gotRecurrence []string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				raw, _ := io.ReadAll(r.Body)
				var payload struct {
					Recurrence []string `json:"recurrence"`
				}
				json.Unmarshal(raw, &payload)
				gotRecurrence = payload.Recurrence

				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: tsClient.Transport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}

		client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		if err != nil {
			t.Fatalf("unexpected error creating client: %v", err)
		}

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID:  "primary",
			Summary:     "Log your water intake",
			Description: "Daily goal: 2000 ml",
			StartTime:   time.Now(),
			EndTime:     time.Now().Add(15 * time.Minute),
			Recurrence:  []string{"RRULE:FREQ=DAILY"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
		if len(gotRecurrence) != 1 || gotRecurrence[0] != "RRULE:FREQ=DAILY" {
			t.Errorf("recurrence not forwarded: %v", gotRecurrence)
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: tsClient.Transport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}

		client, _ := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}
