package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"walkpath/geometry"
	"walkpath/navmesh"
)

func square(x0, y0, x1, y1 float64) geometry.Polygon {
	return geometry.NewPolygon(geometry.Pt(x0, y0), geometry.Pt(x1, y0), geometry.Pt(x1, y1), geometry.Pt(x0, y1))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := navmesh.NewRegistry()
	if _, err := reg.Build("pillar", geometry.WalkArea{
		Outer: square(0, 0, 10, 10),
		Holes: []geometry.Polygon{square(4, 4, 6, 6)},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Build("split", geometry.WalkArea{
		Outer: square(0, 0, 10, 10),
		Holes: []geometry.Polygon{square(4, 0, 6, 10)},
	}); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(New(reg, time.Second).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if resp.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatal(err)
		}
	}
	return resp, out
}

func TestRoute(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantSuccess bool
		wantPoints  int
	}{
		{
			name:        "around the pillar",
			body:        `{"area":"pillar","start":{"x":1,"y":5},"end":{"x":9,"y":5}}`,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantPoints:  4,
		},
		{
			name:       "across the wall",
			body:       `{"area":"split","start":{"x":1,"y":5},"end":{"x":9,"y":5}}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown area",
			body:       `{"area":"attic","start":{"x":1,"y":5},"end":{"x":9,"y":5}}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := post(t, ts.URL+"/route", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if out["success"] != tt.wantSuccess {
				t.Errorf("success = %v, want %v", out["success"], tt.wantSuccess)
			}
			path, _ := out["path"].([]any)
			if len(path) != tt.wantPoints {
				t.Errorf("path = %v, want %d points", out["path"], tt.wantPoints)
			}
			if tt.wantSuccess {
				want := 2 + 2*math.Sqrt(10)
				if d, _ := out["distance"].(float64); math.Abs(d-want) > 1e-6 {
					t.Errorf("distance = %v, want %v", d, want)
				}
			}
		})
	}
}

// blockingServer holds every route query until the test ends.
func blockingServer(t *testing.T, timeout time.Duration) *Server {
	t.Helper()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	s := New(navmesh.NewRegistry(), timeout)
	s.find = func(area string, start, end geometry.Point) (navmesh.Path, error) {
		<-release
		return nil, nil
	}
	return s
}

func TestRouteTimeout(t *testing.T) {
	s := blockingServer(t, 10*time.Millisecond)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, out := post(t, ts.URL+"/route", `{"area":"pillar","start":{"x":1,"y":5},"end":{"x":9,"y":5}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if out["success"] != false {
		t.Errorf("success = %v, want false", out["success"])
	}
	if msg, _ := out["message"].(string); !strings.Contains(msg, "timeout") {
		t.Errorf("message = %q, want the timeout message", msg)
	}
	if path, ok := out["path"].([]any); !ok || len(path) != 0 {
		t.Errorf("path = %v, want an empty list", out["path"])
	}
}

func TestRouteClientGone(t *testing.T) {
	s := blockingServer(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	body := strings.NewReader(`{"area":"pillar","start":{"x":1,"y":5},"end":{"x":9,"y":5}}`)
	req := httptest.NewRequest(http.MethodPost, "/route", body).WithContext(ctx)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Body.Len() != 0 {
		t.Errorf("wrote %q to a cancelled request", rec.Body.String())
	}
	if rec.Code == http.StatusBadRequest {
		t.Error("cancelled request answered as a bad request")
	}
}

func TestRouteRejectsBadRequests(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/route")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d", resp.StatusCode)
	}

	resp, _ = post(t, ts.URL+"/route", `{"area":`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad body status = %d", resp.StatusCode)
	}
}

func TestAreas(t *testing.T) {
	ts := newTestServer(t)
	room := `{"name":"hall","outer":[{"x":0,"y":0},{"x":20,"y":0},{"x":20,"y":5},{"x":0,"y":5}]}`

	resp, out := post(t, ts.URL+"/areas", room)
	if resp.StatusCode != http.StatusOK || out["success"] != true {
		t.Fatalf("create: status %d, body %v", resp.StatusCode, out)
	}

	resp, _ = post(t, ts.URL+"/areas", room)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", resp.StatusCode)
	}

	forced := strings.Replace(room, `"name"`, `"force":true,"name"`, 1)
	resp, _ = post(t, ts.URL+"/areas", forced)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("forced status = %d, want 200", resp.StatusCode)
	}

	resp, out = post(t, ts.URL+"/areas", `{"name":"line","outer":[{"x":0,"y":0},{"x":1,"y":1}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid geometry status = %d, want 400", resp.StatusCode)
	}
	if msg, _ := out["error"].(string); !strings.Contains(msg, "invalid") {
		t.Errorf("error = %q, want the geometry error", msg)
	}

	resp, out = post(t, ts.URL+"/route", `{"area":"hall","start":{"x":1,"y":1},"end":{"x":19,"y":4}}`)
	if resp.StatusCode != http.StatusOK || out["success"] != true {
		t.Errorf("route on new area: status %d, body %v", resp.StatusCode, out)
	}
}

func TestMeshAndHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/mesh?area=pillar")
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []any  `json:"features"`
	}
	err = json.NewDecoder(resp.Body).Decode(&fc)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	// 4 nodes and the 4 pillar sides
	if fc.Type != "FeatureCollection" || len(fc.Features) != 8 {
		t.Errorf("mesh = %s with %d features, want 8", fc.Type, len(fc.Features))
	}

	resp, err = http.Get(ts.URL + "/mesh?area=attic")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown mesh status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	var health struct {
		Status string   `json:"status"`
		Areas  []string `json:"areas"`
	}
	err = json.NewDecoder(resp.Body).Decode(&health)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if health.Status != "ready" || len(health.Areas) != 2 {
		t.Errorf("health = %+v", health)
	}
}

func TestPreflight(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/route", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("preflight: status %d, headers %v", resp.StatusCode, resp.Header)
	}
}
