// Package trip carries the ko-trip board: the mock recruitment posts and the
// creation wizard. The prototype tracked wizard progress with loose flags
// and left abandoned drafts behind; here the progression is explicit and
// completing or abandoning the flow clears the drafts.
package trip

import (
	"errors"
	"fmt"
	"time"

	"github.com/traction-team/korail-mate/backend/internal/model/trip"
	"github.com/traction-team/korail-mate/backend/internal/storage"
)

var (
	ErrStep1Invalid = errors.New("step1 draft incomplete")
	ErrStep2Invalid = errors.New("step2 draft incomplete")
	ErrStep1Missing = errors.New("step1 not submitted yet")
	ErrStep2Missing = errors.New("step2 not submitted yet")
)

// Wizard is the step1 → step2 → generate progression. Each step persists its
// draft under the stable key so the generate step can assemble both.
type Wizard struct {
	kv storage.KV
}

// NewWizard binds the wizard to the flag store.
func NewWizard(kv storage.KV) *Wizard {
	return &Wizard{kv: kv}
}

// Stage reports where the user is: step1 until its draft exists, step2 until
// that draft exists, generate once both are in.
func (w *Wizard) Stage() trip.Stage {
	var s1 trip.Step1
	if !w.kv.GetJSON(storage.KeyTripStep1, &s1) {
		return trip.StageStep1
	}
	var s2 trip.Step2
	if !w.kv.GetJSON(storage.KeyTripStep2, &s2) {
		return trip.StageStep2
	}
	return trip.StageGenerate
}

// SubmitStep1 validates and persists the trip-facts draft.
func (w *Wizard) SubmitStep1(d trip.Step1) error {
	if !d.Valid() {
		return ErrStep1Invalid
	}
	return w.kv.SetJSON(storage.KeyTripStep1, d)
}

// SubmitStep2 validates and persists the mate-preference draft. Step order
// is enforced: step2 cannot land before step1.
func (w *Wizard) SubmitStep2(d trip.Step2) error {
	var s1 trip.Step1
	if !w.kv.GetJSON(storage.KeyTripStep1, &s1) {
		return ErrStep1Missing
	}
	if !d.Valid() {
		return ErrStep2Invalid
	}
	return w.kv.SetJSON(storage.KeyTripStep2, d)
}

// Summary assembles both drafts for the generate screen.
func (w *Wizard) Summary() (trip.Summary, error) {
	var s1 trip.Step1
	if !w.kv.GetJSON(storage.KeyTripStep1, &s1) {
		return trip.Summary{}, ErrStep1Missing
	}
	var s2 trip.Step2
	if !w.kv.GetJSON(storage.KeyTripStep2, &s2) {
		return trip.Summary{}, ErrStep2Missing
	}

	return trip.Summary{
		Step1:      s1,
		Step2:      s2,
		DateRange:  fmt.Sprintf("%s ~ %s", prettyDate(s1.StartDate), prettyDate(s1.EndDate)),
		PeriodText: nightsDaysText(s1.StartDate, s1.EndDate),
	}, nil
}

// Complete marks the post created, records that the mate info flow has been
// finished once, and clears the drafts so nothing stale lingers.
func (w *Wizard) Complete() error {
	if _, err := w.Summary(); err != nil {
		return err
	}
	if err := w.kv.SetBool(storage.KeyTripCreatedOnce, true); err != nil {
		return err
	}
	if err := w.kv.SetBool(storage.KeyMateInfoDone, true); err != nil {
		return err
	}
	return w.clearDrafts()
}

// Abandon discards a half-finished flow.
func (w *Wizard) Abandon() error {
	return w.clearDrafts()
}

// CreatedOnce reports whether the flow has ever been completed.
func (w *Wizard) CreatedOnce() bool {
	return w.kv.GetBool(storage.KeyTripCreatedOnce)
}

func (w *Wizard) clearDrafts() error {
	if err := w.kv.Delete(storage.KeyTripStep1); err != nil {
		return err
	}
	return w.kv.Delete(storage.KeyTripStep2)
}

// prettyDate shortens "2025-12-14" to "25.12.14". Unparseable values pass
// through unchanged.
func prettyDate(yyyyMMdd string) string {
	t, err := time.Parse("2006-01-02", yyyyMMdd)
	if err != nil {
		return yyyyMMdd
	}
	return t.Format("06.01.02")
}

// nightsDaysText renders the stay length: same-day is 당일, otherwise N박 M일.
func nightsDaysText(start, end string) string {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return ""
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return ""
	}
	nights := int(e.Sub(s).Hours() / 24)
	if nights < 0 {
		nights = 0
	}
	if nights == 0 {
		return "당일"
	}
	return fmt.Sprintf("%d박 %d일", nights, nights+1)
}
