package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	NewServer(nil).Register(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNoveltyBlocked(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	body := `{"candidate":"the cat sat on the mat","accepted":["the cat sat near a tree"]}`
	rec := doJSON(t, e, http.MethodPost, "/v1/novelty", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp NoveltyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Blocked {
		t.Fatalf("expected blocked=true, body=%s", rec.Body.String())
	}
	if resp.N != 3 {
		t.Fatalf("expected default n=3, got %d", resp.N)
	}
	if !strings.HasPrefix(resp.ID, "nov_") {
		t.Fatalf("unexpected id: %q", resp.ID)
	}
	if resp.Object != "novelty.check" {
		t.Fatalf("unexpected object: %q", resp.Object)
	}
}

func TestNoveltyAdmitted(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	body := `{"candidate":"dogs run fast","accepted":["the cat sat on the mat"]}`
	rec := doJSON(t, e, http.MethodPost, "/v1/novelty", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp NoveltyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Blocked {
		t.Fatalf("expected blocked=false, body=%s", rec.Body.String())
	}
}

func TestNoveltyCustomN(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	// Shares a bigram but no trigram.
	body := `{"candidate":"quick brown dog","accepted":["the quick brown fox"],"n":2}`
	rec := doJSON(t, e, http.MethodPost, "/v1/novelty", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp NoveltyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Blocked || resp.N != 2 {
		t.Fatalf("expected blocked at n=2, body=%s", rec.Body.String())
	}
}

func TestNoveltyValidationErrors(t *testing.T) {
	t.Parallel()

	e := newTestEcho()

	cases := []struct {
		name string
		body string
	}{
		{name: "negative n", body: `{"candidate":"a b c","n":-1}`},
		{name: "oversized n", body: `{"candidate":"a b c","n":1000}`},
		{name: "malformed json", body: `{"candidate":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := doJSON(t, e, http.MethodPost, "/v1/novelty", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), "invalid_request_error") {
				t.Fatalf("expected error envelope, got: %s", rec.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", rec.Body.String())
	}
}
