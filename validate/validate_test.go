package validate

import (
	"strings"
	"testing"
	"time"
)

func TestCreateMissingRequiredKeys(t *testing.T) {
	_, err := Create(map[string]any{}, DeveloperSchema)
	if err == nil {
		t.Fatal("expected error for empty payload")
	}
	for _, key := range []string{`"name"`, `"email"`} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q should name missing key %s", err.Error(), key)
		}
	}

	_, err = Create(map[string]any{"name": "Ana"}, DeveloperSchema)
	if err == nil || !strings.Contains(err.Error(), `"email"`) {
		t.Errorf("error should name the single missing key, got %v", err)
	}
}

func TestCreateTypeChecks(t *testing.T) {
	_, err := Create(map[string]any{"name": 12.0, "email": "ana@x.com"}, DeveloperSchema)
	if err == nil || !strings.Contains(err.Error(), `"name"`) {
		t.Errorf("expected string type error naming the field, got %v", err)
	}
}

func TestCreateDropsUnknownKeys(t *testing.T) {
	cleaned, err := Create(map[string]any{
		"name":  "Ana",
		"email": "ana@x.com",
		"admin": true,
	}, DeveloperSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cleaned) != 2 {
		t.Errorf("unknown keys should be dropped, got %v", cleaned)
	}
	if _, ok := cleaned["admin"]; ok {
		t.Error("unknown key leaked into cleaned payload")
	}
}

func TestUpdateRequiresAtLeastOneKey(t *testing.T) {
	_, err := Update(map[string]any{}, DeveloperInfoSchema)
	if err == nil {
		t.Fatal("expected error for empty update payload")
	}
	for _, key := range []string{`"developerSince"`, `"preferredOS"`} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q should name acceptable key %s", err.Error(), key)
		}
	}

	// Only-unknown keys behaves like an empty payload.
	_, err = Update(map[string]any{"nickname": "an"}, DeveloperSchema)
	if err == nil {
		t.Error("expected error when only unknown keys are present")
	}
}

func TestUpdatePartialPayload(t *testing.T) {
	cleaned, err := Update(map[string]any{"email": "new@x.com"}, DeveloperSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleaned["email"] != "new@x.com" || len(cleaned) != 1 {
		t.Errorf("unexpected cleaned payload: %v", cleaned)
	}
}

func TestDateParsing(t *testing.T) {
	want := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2020-05-01", "2020/05/01", "01/05/2020"} {
		cleaned, err := Create(map[string]any{
			"developerSince": raw,
			"preferredOS":    "Linux",
		}, DeveloperInfoSchema)
		if err != nil {
			t.Fatalf("date %q unexpected error: %v", raw, err)
		}
		got, ok := cleaned["developer_since"].(time.Time)
		if !ok || !got.Equal(want) {
			t.Errorf("date %q cleaned to %v, want %v", raw, cleaned["developer_since"], want)
		}
	}

	_, err := Create(map[string]any{
		"developerSince": "not-a-date",
		"preferredOS":    "Linux",
	}, DeveloperInfoSchema)
	if err == nil || !strings.Contains(err.Error(), `"developerSince"`) {
		t.Errorf("expected date error naming the field, got %v", err)
	}
}

func TestNumberField(t *testing.T) {
	base := map[string]any{
		"name":          "API",
		"description":   "backend",
		"estimatedTime": "2 weeks",
		"repository":    "https://git.example/api",
		"startDate":     "2023-01-10",
	}

	payload := map[string]any{"developerId": 3.0}
	for k, v := range base {
		payload[k] = v
	}
	cleaned, err := Create(payload, ProjectSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleaned["developer_id"] != 3 {
		t.Errorf("developer_id = %v, want int 3", cleaned["developer_id"])
	}

	for _, bad := range []any{"3", 1.5, -2.0, 0.0, true} {
		payload := map[string]any{"developerId": bad}
		for k, v := range base {
			payload[k] = v
		}
		if _, err := Create(payload, ProjectSchema); err == nil {
			t.Errorf("developerId %v should fail the positive-integer check", bad)
		}
	}
}

func TestOptionalEndDate(t *testing.T) {
	payload := map[string]any{
		"name":          "API",
		"description":   "backend",
		"estimatedTime": "2 weeks",
		"repository":    "https://git.example/api",
		"startDate":     "2023-01-10",
		"developerId":   1.0,
	}
	cleaned, err := Create(payload, ProjectSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cleaned["end_date"]; ok {
		t.Error("absent endDate should not appear in cleaned payload")
	}

	payload["endDate"] = "2023-06-10"
	cleaned, err = Create(payload, ProjectSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cleaned["end_date"].(time.Time); !ok {
		t.Errorf("endDate should clean to a time.Time, got %v", cleaned["end_date"])
	}
}
