package trip_test

import (
	"errors"
	"testing"

	tripmodel "github.com/traction-team/korail-mate/backend/internal/model/trip"
	"github.com/traction-team/korail-mate/backend/internal/service/trip"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

func validStep1() tripmodel.Step1 {
	return tripmodel.Step1{
		StartDate: "2025-12-14",
		EndDate:   "2025-12-15",
		Region:    "부산",
		Purpose:   "여유롭게 힐링",
		Budget:    "20-29만원",
		Intensity: "여유",
		People:    "2인",
		MateTypes: []string{"전체 동행"},
	}
}

func validStep2() tripmodel.Step2 {
	return tripmodel.Step2{
		Gender: "무관",
		Age:    "20대",
		MBTI:   "ENFP",
		Wake:   "아침형",
		Food:   "한식",
		Etc:    []string{"금연"},
	}
}

func TestWizardProgression(t *testing.T) {
	kv := storage.NewMemory()
	w := trip.NewWizard(kv)

	if got := w.Stage(); got != tripmodel.StageStep1 {
		t.Fatalf("fresh wizard stage = %s", got)
	}

	if err := w.SubmitStep2(validStep2()); !errors.Is(err, trip.ErrStep1Missing) {
		t.Fatalf("step2 before step1: err = %v", err)
	}
	if _, err := w.Summary(); !errors.Is(err, trip.ErrStep1Missing) {
		t.Fatalf("summary before step1: err = %v", err)
	}

	if err := w.SubmitStep1(validStep1()); err != nil {
		t.Fatalf("SubmitStep1 err: %v", err)
	}
	if got := w.Stage(); got != tripmodel.StageStep2 {
		t.Fatalf("stage after step1 = %s", got)
	}
	if _, err := w.Summary(); !errors.Is(err, trip.ErrStep2Missing) {
		t.Fatalf("summary before step2: err = %v", err)
	}

	if err := w.SubmitStep2(validStep2()); err != nil {
		t.Fatalf("SubmitStep2 err: %v", err)
	}
	if got := w.Stage(); got != tripmodel.StageGenerate {
		t.Fatalf("stage after step2 = %s", got)
	}
}

func TestWizardValidation(t *testing.T) {
	w := trip.NewWizard(storage.NewMemory())

	incomplete := validStep1()
	incomplete.Region = ""
	if err := w.SubmitStep1(incomplete); !errors.Is(err, trip.ErrStep1Invalid) {
		t.Fatalf("expected ErrStep1Invalid, got %v", err)
	}

	if err := w.SubmitStep1(validStep1()); err != nil {
		t.Fatalf("SubmitStep1 err: %v", err)
	}
	bad2 := validStep2()
	bad2.MBTI = ""
	if err := w.SubmitStep2(bad2); !errors.Is(err, trip.ErrStep2Invalid) {
		t.Fatalf("expected ErrStep2Invalid, got %v", err)
	}
}

func TestWizardSummary(t *testing.T) {
	w := trip.NewWizard(storage.NewMemory())
	if err := w.SubmitStep1(validStep1()); err != nil {
		t.Fatalf("SubmitStep1 err: %v", err)
	}
	if err := w.SubmitStep2(validStep2()); err != nil {
		t.Fatalf("SubmitStep2 err: %v", err)
	}

	sum, err := w.Summary()
	if err != nil {
		t.Fatalf("Summary err: %v", err)
	}
	if sum.DateRange != "25.12.14 ~ 25.12.15" {
		t.Fatalf("DateRange = %q", sum.DateRange)
	}
	if sum.PeriodText != "1박 2일" {
		t.Fatalf("PeriodText = %q", sum.PeriodText)
	}
	if sum.Step1.Region != "부산" || sum.Step2.MBTI != "ENFP" {
		t.Fatalf("summary drafts mismatch: %+v", sum)
	}
}

func TestWizardSummaryDayTrip(t *testing.T) {
	w := trip.NewWizard(storage.NewMemory())
	s1 := validStep1()
	s1.EndDate = s1.StartDate
	if err := w.SubmitStep1(s1); err != nil {
		t.Fatalf("SubmitStep1 err: %v", err)
	}
	if err := w.SubmitStep2(validStep2()); err != nil {
		t.Fatalf("SubmitStep2 err: %v", err)
	}
	sum, err := w.Summary()
	if err != nil {
		t.Fatalf("Summary err: %v", err)
	}
	if sum.PeriodText != "당일" {
		t.Fatalf("PeriodText = %q", sum.PeriodText)
	}
}

func TestWizardCompleteSetsFlagsAndClearsDrafts(t *testing.T) {
	kv := storage.NewMemory()
	w := trip.NewWizard(kv)
	if err := w.SubmitStep1(validStep1()); err != nil {
		t.Fatalf("SubmitStep1 err: %v", err)
	}
	if err := w.SubmitStep2(validStep2()); err != nil {
		t.Fatalf("SubmitStep2 err: %v", err)
	}

	if err := w.Complete(); err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if !w.CreatedOnce() {
		t.Fatal("created-once flag not set")
	}
	if !kv.GetBool(storage.KeyMateInfoDone) {
		t.Fatal("mate-info-done flag not set")
	}
	if got := w.Stage(); got != tripmodel.StageStep1 {
		t.Fatalf("drafts must be cleared after complete, stage = %s", got)
	}
}

func TestWizardCompleteRequiresBothSteps(t *testing.T) {
	w := trip.NewWizard(storage.NewMemory())
	if err := w.Complete(); !errors.Is(err, trip.ErrStep1Missing) {
		t.Fatalf("expected ErrStep1Missing, got %v", err)
	}
}

func TestWizardAbandonClearsDrafts(t *testing.T) {
	w := trip.NewWizard(storage.NewMemory())
	if err := w.SubmitStep1(validStep1()); err != nil {
		t.Fatalf("SubmitStep1 err: %v", err)
	}
	if err := w.Abandon(); err != nil {
		t.Fatalf("Abandon err: %v", err)
	}
	if got := w.Stage(); got != tripmodel.StageStep1 {
		t.Fatalf("expected fresh stage after abandon, got %s", got)
	}
	if w.CreatedOnce() {
		t.Fatal("abandon must not mark the flow completed")
	}
}
