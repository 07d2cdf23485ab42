package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestReverseReturnsDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("format") != "json" || q.Get("lat") != "27.8974" || q.Get("lon") != "78.088" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("User-Agent") != "ngoconnect-test" {
			t.Errorf("missing user agent, got %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`{"display_name":"Aligarh, Uttar Pradesh, India"}`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "ngoconnect-test", time.Second)
	got, err := n.Reverse(context.Background(), 27.8974, 78.088)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if got != "Aligarh, Uttar Pradesh, India" {
		t.Fatalf("unexpected address %q", got)
	}
}

func TestReverseNoAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	_, err := NewNominatim(srv.URL, "ua", time.Second).Reverse(context.Background(), 0, 0)
	if !errors.Is(err, ErrNoAddress) {
		t.Fatalf("expected ErrNoAddress, got %v", err)
	}
}

func TestReverseRejectsInvalidCoordinates(t *testing.T) {
	n := NewNominatim("http://127.0.0.1:0", "ua", time.Second)
	if _, err := n.Reverse(context.Background(), 91, 0); !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestReverseIsRateLimited(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"display_name":"somewhere"}`))
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL, "ua", time.Second)
	if _, err := n.Reverse(context.Background(), 1, 1); err != nil {
		t.Fatalf("first reverse: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := n.Reverse(ctx, 1, 1); err == nil {
		t.Fatal("second request within a second must wait past the deadline")
	}
	if calls != 1 {
		t.Fatalf("expected a single upstream call, got %d", calls)
	}
}
