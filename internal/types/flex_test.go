package types

import (
	"encoding/json"
	"testing"
)

type flexItem struct {
	Name string `json:"name"`
}

func TestFlexListUnmarshalArray(t *testing.T) {
	var list FlexList[flexItem]
	if err := json.Unmarshal([]byte(`[{"name":"a"},{"name":"b"}]`), &list); err != nil {
		t.Fatalf("Failed to unmarshal array: %v", err)
	}
	if len(list) != 2 || list[0].Name != "a" || list[1].Name != "b" {
		t.Errorf("Expected [a b], got %+v", list)
	}
}

func TestFlexListUnmarshalSingleObject(t *testing.T) {
	var list FlexList[flexItem]
	if err := json.Unmarshal([]byte(`{"name":"solo"}`), &list); err != nil {
		t.Fatalf("Failed to unmarshal single object: %v", err)
	}
	if len(list) != 1 || list[0].Name != "solo" {
		t.Errorf("Expected single wrapped item, got %+v", list)
	}
}

func TestFlexListUnmarshalNull(t *testing.T) {
	var list FlexList[flexItem]
	if err := json.Unmarshal([]byte(`null`), &list); err != nil {
		t.Fatalf("Failed to unmarshal null: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty list for null, got %+v", list)
	}
}

func TestFlexUint64UnmarshalNumber(t *testing.T) {
	var value FlexUint64
	if err := json.Unmarshal([]byte(`42`), &value); err != nil {
		t.Fatalf("Failed to unmarshal number: %v", err)
	}
	if value.Uint64() != 42 {
		t.Errorf("Expected 42, got %d", value.Uint64())
	}
}

func TestFlexUint64UnmarshalString(t *testing.T) {
	var value FlexUint64
	if err := json.Unmarshal([]byte(`"42"`), &value); err != nil {
		t.Fatalf("Failed to unmarshal string: %v", err)
	}
	if value.Uint64() != 42 {
		t.Errorf("Expected 42, got %d", value.Uint64())
	}
}

func TestFlexUint64UnmarshalInvalid(t *testing.T) {
	var value FlexUint64
	if err := json.Unmarshal([]byte(`"not-a-number"`), &value); err == nil {
		t.Error("Expected an error for a non-numeric string")
	}
	if err := json.Unmarshal([]byte(`true`), &value); err == nil {
		t.Error("Expected an error for a boolean")
	}
}

func TestFlexUint64MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(FlexUint64(7))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if string(out) != "7" {
		t.Errorf("Expected 7, got %s", out)
	}
}
