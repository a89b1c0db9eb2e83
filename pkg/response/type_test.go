package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"textbook-rag/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("PKT", 5*60*60)
	tm := time.Date(2024, 5, 1, 20, 30, 0, 0, loc)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if got, want := string(b), `"2024-05-01T15:30:00Z"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	var got response.DateTime
	if err := json.Unmarshal([]byte(`"2024-05-01T15:30:00Z"`), &got); err != nil {
		t.Fatalf("unexpected error unmarshaling DateTime: %v", err)
	}
	if !time.Time(got).Equal(want) {
		t.Errorf("expected %v, got %v", want, time.Time(got))
	}

	b, _ := json.Marshal(got)
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("round trip changed value: %s", b)
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &got); err == nil {
		t.Error("expected error for non-RFC3339 value")
	}
}
