package recommend

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/traction-team/korail-mate/backend/internal/model/recommend"
)

const slotDuration = 2 * time.Hour

// ICal renders a synthesized itinerary as an iCalendar document, one event
// per slot, day offsets taken from start. The schedule times are local wall
// clock; KST is the only audience.
func ICal(days []recommend.ItineraryDay, region string, start time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//korail-mate//recommend//KO")
	cal.SetXWRCalName(region + " 추천 일정")

	for _, day := range days {
		date := start.AddDate(0, 0, day.Day-1)
		for _, item := range day.Items {
			at, err := time.ParseInLocation("15:04", item.Time, start.Location())
			if err != nil {
				return "", fmt.Errorf("slot time %q: %w", item.Time, err)
			}
			begin := time.Date(date.Year(), date.Month(), date.Day(),
				at.Hour(), at.Minute(), 0, 0, start.Location())

			event := cal.AddEvent(uuid.NewString())
			event.SetCreatedTime(time.Now())
			event.SetStartAt(begin)
			event.SetEndAt(begin.Add(slotDuration))
			event.SetSummary(item.Title)
			event.SetDescription(item.Desc)
			event.SetLocation(region)
		}
	}

	return cal.Serialize(), nil
}
