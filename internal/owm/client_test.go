package owm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-key")

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}

	if client.baseURL != "https://api.openweathermap.org/data/2.5" {
		t.Errorf("baseURL = %s, want https://api.openweathermap.org/data/2.5", client.baseURL)
	}

	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}

	if client.limiter == nil {
		t.Error("limiter should not be nil")
	}
}

func TestClient_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "London,GB" {
			t.Errorf("q = %q, want London,GB", q.Get("q"))
		}
		if q.Get("appid") != "test-key" {
			t.Errorf("appid = %q, want test-key", q.Get("appid"))
		}
		// Raw values are always requested metric; conversion is local
		if q.Get("units") != "metric" {
			t.Errorf("units = %q, want metric", q.Get("units"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Error("Accept header should be application/json")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cod": 200}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	var dst struct {
		Cod statusCode `json:"cod"`
	}
	if err := client.query(context.Background(), "/weather", "London,GB", &dst); err != nil {
		t.Fatalf("query() error = %v", err)
	}
	if !dst.Cod.ok() {
		t.Errorf("cod = %q, want 200", dst.Cod)
	}
}

func TestStatusCode_UnmarshalBothForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want statusCode
		ok   bool
	}{
		{"numeric success", `{"cod": 200}`, "200", true},
		{"string success", `{"cod": "200"}`, "200", true},
		{"numeric failure", `{"cod": 404}`, "404", false},
		{"string failure", `{"cod": "404"}`, "404", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				Cod statusCode `json:"cod"`
			}
			if err := json.Unmarshal([]byte(tt.body), &dst); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if dst.Cod != tt.want {
				t.Errorf("cod = %q, want %q", dst.Cod, tt.want)
			}
			if dst.Cod.ok() != tt.ok {
				t.Errorf("ok() = %v, want %v", dst.Cod.ok(), tt.ok)
			}
		})
	}
}

func TestLooseString_UnmarshalBothForms(t *testing.T) {
	var dst struct {
		Message looseString `json:"message"`
	}

	if err := json.Unmarshal([]byte(`{"message": 0}`), &dst); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if dst.Message != "0" {
		t.Errorf("numeric message = %q, want 0", dst.Message)
	}

	if err := json.Unmarshal([]byte(`{"message": "city not found"}`), &dst); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if dst.Message != "city not found" {
		t.Errorf("string message = %q, want 'city not found'", dst.Message)
	}
}
