package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"talentrank/internal/common"
)

func TestIDFromPathLastSegment(t *testing.T) {
	id := common.NewUUID()
	r := httptest.NewRequest(http.MethodGet, "/positions/"+id.String(), nil)

	got, err := idFromPath(r, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("id = %s, want %s", got, id)
	}
}

func TestIDFromPathCountsFromEnd(t *testing.T) {
	id := common.NewUUID()
	r := httptest.NewRequest(http.MethodPost, "/positions/"+id.String()+"/candidates/import", nil)

	got, err := idFromPath(r, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("id = %s, want %s", got, id)
	}
}

func TestIDFromPathRejectsGarbage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/positions/not-a-uuid", nil)

	if _, err := idFromPath(r, 1); !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestIDFromPathOutOfRange(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/health", nil)

	if _, err := idFromPath(r, 5); !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}
