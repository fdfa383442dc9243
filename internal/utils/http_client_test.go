package utils

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient("", 0)

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient("", 0)
	client2 := NewHTTPClient("", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("api.veepo.local:8080/", 3*time.Second)

	if client.BaseURL != "http://api.veepo.local:8080" {
		t.Errorf("unexpected base url %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("unexpected timeout %v", client.GetClient().Timeout)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"":                       "",
		"localhost:8080":         "http://localhost:8080",
		"https://api.stripe.com": "https://api.stripe.com",
		"http://x/ ":             "http://x",
	}

	for in, want := range tests {
		if got := NormalizeBaseURL(in); got != want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}
