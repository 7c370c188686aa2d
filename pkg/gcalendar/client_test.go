package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"taskboard/pkg/gcalendar"
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

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("NewClientFromHTTP() error = %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	installed := []byte(`{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"redirect_uris": ["http://localhost"]
		}
	}`)
	dir := t.TempDir()
	goodToken := filepath.Join(dir, "token.json")
	badToken := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(goodToken, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(badToken, []byte(`{"broken": true`), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		creds   []byte
		token   string
		wantErr bool
	}{
		{name: "unknown format", creds: []byte(`{"broken":true}`), token: goodToken, wantErr: true},
		{name: "installed app with token", creds: installed, token: goodToken},
		{name: "installed app bad token", creds: installed, token: badToken, wantErr: true},
		{name: "installed app missing token", creds: installed, token: filepath.Join(dir, "missing.json"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), tt.creds, tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), goodToken); err == nil {
		t.Errorf("expected error reading missing credentials file")
	}
}

func TestCreateAllDayEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "event-123",
			"summary": "Write report",
			"htmlLink": "https://calendar.google.com/event-uri",
			"start": {"date": "2024-03-15"},
			"extendedProperties": {"private": {"source": "taskboard", "taskId": "t1"}}
		}`))
	})

	event, err := client.CreateAllDayEvent(context.Background(), gcalendar.AllDayEventRequest{
		TaskID:  "t1",
		Summary: "Write report",
		Date:    time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateAllDayEvent() error = %v", err)
	}
	if event.ID != "event-123" || event.TaskID != "t1" || event.Date != "2024-03-15" {
		t.Errorf("unexpected event: %+v", event)
	}

	start, _ := body["start"].(map[string]any)
	end, _ := body["end"].(map[string]any)
	if start["date"] != "2024-03-15" || end["date"] != "2024-03-16" {
		t.Errorf("start/end = %v/%v", start, end)
	}
}

func TestListExported(t *testing.T) {
	var gotFilter string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/broken/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		gotFilter = r.URL.Query().Get("privateExtendedProperty")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [
			{"id": "e1", "summary": "A", "start": {"date": "2024-05-01"}, "extendedProperties": {"private": {"taskId": "t1"}}},
			{"id": "e2", "summary": "B", "start": {"date": "2024-05-02"}}
		]}`))
	})

	events, err := client.ListExported(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TimeMax: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("ListExported() error = %v", err)
	}
	if gotFilter != "source=taskboard" {
		t.Errorf("privateExtendedProperty = %q", gotFilter)
	}
	if len(events) != 2 || events[0].TaskID != "t1" || events[1].TaskID != "" {
		t.Errorf("unexpected events: %+v", events)
	}

	if _, err := client.ListExported(context.Background(), gcalendar.ListEventsRequest{CalendarID: "broken"}); err == nil {
		t.Errorf("expected list error on 500")
	}
}
