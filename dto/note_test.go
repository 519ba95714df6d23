package dto

import (
	"encoding/json"
	"reflect"
	"testing"

	"main/model"
)

func TestTagListUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{"string array", `{"tags":["x","y"]}`, []string{"x", "y"}},
		{"duplicates preserved", `{"tags":["a","a","b"]}`, []string{"a", "a", "b"}},
		{"null coerced", `{"tags":null}`, []string{}},
		{"absent stays nil", `{}`, nil},
		{"string coerced", `{"tags":"oops"}`, []string{}},
		{"mixed array coerced", `{"tags":["a",1]}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req NoteRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual([]string(req.Tags), tt.expected) {
				t.Errorf("Tags = %#v, want %#v", []string(req.Tags), tt.expected)
			}
		})
	}
}

func TestToNoteResponseDefaultsTags(t *testing.T) {
	note := &model.Note{Title: "no tags"}

	resp := ToNoteResponse(note)
	if resp.Tags == nil {
		t.Fatal("Expected empty tags slice, got nil")
	}
	if len(resp.Tags) != 0 {
		t.Errorf("Expected no tags, got %v", resp.Tags)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := decoded["tags"].([]interface{}); !ok {
		t.Errorf("Expected tags serialized as an array, got %T", decoded["tags"])
	}
}
