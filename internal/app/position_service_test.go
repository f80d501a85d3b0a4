package app

import (
	"context"
	"testing"

	"talentrank/internal/common"
	"talentrank/internal/domain/position"
)

func newPositionService() (*PositionService, *fakePositionRepo) {
	repo := newFakePositionRepo()
	return NewPositionService(repo, newFakeAnalyticsRepo()), repo
}

func TestPositionCreateRequiresTitle(t *testing.T) {
	service, _ := newPositionService()

	_, err := service.Create(context.Background(), position.Position{Title: "   "})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestPositionCreateDefaultsToDraft(t *testing.T) {
	service, _ := newPositionService()

	created, err := service.Create(context.Background(), position.Position{Title: "Data Analyst"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != position.StatusDraft {
		t.Fatalf("status = %s, want draft", created.Status)
	}
}

func TestPositionUpdateStatusNormalizes(t *testing.T) {
	service, _ := newPositionService()
	created, err := service.Create(context.Background(), position.Position{Title: "Data Analyst"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.UpdateStatus(context.Background(), created.ID, position.Status(" OPEN "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != position.StatusOpen {
		t.Fatalf("status = %s, want open", updated.Status)
	}
}

func TestPositionUpdateStatusRejectsUnknown(t *testing.T) {
	service, _ := newPositionService()
	created, err := service.Create(context.Background(), position.Position{Title: "Data Analyst"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.UpdateStatus(context.Background(), created.ID, "archived")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestPositionUpdateStatusNotFound(t *testing.T) {
	service, _ := newPositionService()

	_, err := service.UpdateStatus(context.Background(), common.NewUUID(), position.StatusOpen)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}
}
