package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"taskboard/internal/model"
)

func TestParseEnums(t *testing.T) {
	if s, err := model.ParseStatus("IN-PROGRESS"); err != nil || s != model.StatusInProgress {
		t.Errorf("ParseStatus: %v %v", s, err)
	}
	if _, err := model.ParseStatus("archived"); err == nil {
		t.Errorf("expected error for unknown status")
	}
	if p, err := model.ParsePriority("medium"); err != nil || p != model.PriorityMedium {
		t.Errorf("ParsePriority: %v %v", p, err)
	}
	if p, err := model.ParseProjectID(""); err != nil || p != model.ProjectPersonal {
		t.Errorf("ParseProjectID empty: %v %v", p, err)
	}
	if p, err := model.ParseProjectID("education"); err != nil || p != model.ProjectEducation {
		t.Errorf("ParseProjectID: %v %v", p, err)
	}
}

func TestCycle(t *testing.T) {
	if model.StatusDone.Next() != model.StatusNotStarted {
		t.Errorf("status should wrap")
	}
	if model.PriorityLow.Next() != model.PriorityMedium {
		t.Errorf("priority should advance")
	}
}

func TestValidateDraft(t *testing.T) {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		draft   model.Draft
		wantErr bool
	}{
		{name: "defaults", draft: model.NewDraft("Buy milk", due)},
		{name: "empty name", draft: model.NewDraft("", due), wantErr: true},
		{name: "blank name", draft: model.NewDraft("   ", due), wantErr: true},
		{name: "bad priority", draft: func() model.Draft {
			d := model.NewDraft("x", due)
			d.Priority = "Urgent"
			return d
		}(), wantErr: true},
		{name: "bad status", draft: func() model.Draft {
			d := model.NewDraft("x", due)
			d.Status = "paused"
			return d
		}(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateDraft(tt.draft)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var verrs model.ValidationErrors
				if !errors.As(err, &verrs) || len(verrs) == 0 {
					t.Errorf("expected field errors, got %T", err)
				}
			}
		})
	}
}

func TestNormalizeDraft(t *testing.T) {
	d := model.Draft{Name: "  Plan trip  "}.Normalize()
	if d.Name != "Plan trip" || d.ProjectID != model.ProjectPersonal || d.Priority != model.PriorityMedium || d.Status != model.StatusNotStarted {
		t.Errorf("unexpected normalised draft %+v", d)
	}
	if d.Tags == nil || d.Comments == nil {
		t.Errorf("expected empty slices")
	}
}

func TestValidatePatch(t *testing.T) {
	blank := " "
	bad := model.Status("paused")
	good := model.StatusDone

	if err := model.ValidatePatch(model.Patch{}); err != nil {
		t.Errorf("empty patch should be valid: %v", err)
	}
	if err := model.ValidatePatch(model.Patch{Status: &good}); err != nil {
		t.Errorf("status patch should be valid: %v", err)
	}
	if err := model.ValidatePatch(model.Patch{Name: &blank}); err == nil {
		t.Errorf("blank name should fail")
	}
	if err := model.ValidatePatch(model.Patch{Status: &bad}); err == nil {
		t.Errorf("unknown status should fail")
	}
	if !(model.Patch{}).IsEmpty() {
		t.Errorf("zero patch should be empty")
	}
}

func TestValidateComment(t *testing.T) {
	if err := model.ValidateComment(" \t\n"); err == nil {
		t.Errorf("whitespace comment should fail")
	}
	if err := model.ValidateComment("looks good"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFormat(t *testing.T) {
	if got := model.FormatStatus(model.StatusInProgress); got != "In Progress" {
		t.Errorf("FormatStatus() = %q", got)
	}
	if got := model.FormatStatus(model.StatusDone); got != "Done" {
		t.Errorf("FormatStatus() = %q", got)
	}
	d := time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC)
	if got := model.FormatDate(d, time.UTC); got != "02 Jul 2024" {
		t.Errorf("FormatDate() = %q", got)
	}
	if got := model.FormatDate(time.Time{}, time.UTC); got != "—" {
		t.Errorf("FormatDate(zero) = %q", got)
	}
}

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	if err := model.RegisterValidations(v); err != nil {
		t.Fatalf("RegisterValidations() error = %v", err)
	}

	type form struct {
		Name   string `validate:"notblank"`
		Status string `validate:"status"`
	}
	if err := v.Struct(form{Name: "ok", Status: "IN-PROGRESS"}); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
	if err := v.Struct(form{Name: "  ", Status: "archived"}); err == nil {
		t.Errorf("expected blank name and bad status to fail")
	}

	if model.Validator() != model.Validator() {
		t.Errorf("Validator() must return the shared instance")
	}
}
