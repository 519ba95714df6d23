package utils

import "testing"

func TestParseUserAgent(t *testing.T) {
	chromeUA := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	browser, os, device := ParseUserAgent(chromeUA)
	if browser != "Chrome" {
		t.Errorf("Expected browser Chrome, got %q", browser)
	}
	if os != "Windows" {
		t.Errorf("Expected OS Windows, got %q", os)
	}
	if device != "Desktop" {
		t.Errorf("Expected device Desktop, got %q", device)
	}
}

func TestParseUserAgentEmpty(t *testing.T) {
	browser, os, device := ParseUserAgent("")
	if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
		t.Errorf("Unexpected defaults: %q %q %q", browser, os, device)
	}
}
