package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"walkpath/geometry"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geometry.Point
		wantErr bool
	}{
		{in: "1,2", want: geometry.Pt(1, 2)},
		{in: " -3.5 , 4e1 ", want: geometry.Pt(-3.5, 40)},
		{in: "1", wantErr: true},
		{in: "a,2", wantErr: true},
		{in: "1,", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

const room = `{"type":"FeatureCollection","features":[
  {"type":"Feature","properties":{"name":"room"},"geometry":{"type":"Polygon","coordinates":[
    [[0,0],[10,0],[10,10],[0,10],[0,0]],
    [[4,4],[6,4],[6,6],[4,6],[4,4]]]}}]}`

func TestRouteCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "room.geojson")
	if err := os.WriteFile(file, []byte(room), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := RouteCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--file", file, "--area", "room", "--from", "1,5", "--to", "9,5"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("output = %q, want 4 points and a length", out.String())
	}
	if lines[0] != "1,5" || lines[3] != "9,5" {
		t.Errorf("endpoints = %q, %q", lines[0], lines[3])
	}

	cmd = RouteCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--file", file, "--area", "attic", "--from", "1,5", "--to", "9,5"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unknown area")
	}
}

func TestMeshCmd(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "room.geojson")
	if err := os.WriteFile(file, []byte(room), 0o644); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(dir, "mesh.geojson")

	cmd := MeshCmd()
	cmd.SetArgs([]string{"--file", file, "-o", outFile})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"FeatureCollection"`) {
		t.Errorf("mesh file = %s", data)
	}
}
