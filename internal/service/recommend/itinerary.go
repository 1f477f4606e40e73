package recommend

import (
	"fmt"

	"github.com/traction-team/korail-mate/backend/internal/model/recommend"
)

// Synthesize generates the free-travel schedule: one identical 5-slot
// template per day, themed by the first two purposes, titles suffixed with
// the day number. Deterministic; the results screen relies on that.
func Synthesize(period recommend.Period, region string, purposes []string) []recommend.ItineraryDay {
	coreDesc := "추천 명소 방문"
	if len(purposes) > 0 && purposes[0] != "" {
		coreDesc = purposes[0] + " 테마 장소 방문"
	}
	walkDesc := "산책/카페"
	if len(purposes) > 1 && purposes[1] != "" {
		walkDesc = purposes[1] + " 기반 코스"
	}

	slots := []recommend.ItineraryItem{
		{Time: "09:00", Title: "아침 이동", Desc: region + " 이동 및 체크인"},
		{Time: "11:00", Title: "핵심 스팟", Desc: coreDesc},
		{Time: "13:00", Title: "점심", Desc: "로컬 맛집 추천"},
		{Time: "15:00", Title: "체험/산책", Desc: walkDesc},
		{Time: "18:00", Title: "저녁", Desc: "저녁 식사 및 야경"},
	}

	days := make([]recommend.ItineraryDay, 0, period.Days())
	for day := 1; day <= period.Days(); day++ {
		items := make([]recommend.ItineraryItem, len(slots))
		for i, s := range slots {
			items[i] = recommend.ItineraryItem{
				Time:  s.Time,
				Title: fmt.Sprintf("%s (DAY %d)", s.Title, day),
				Desc:  s.Desc,
			}
		}
		days = append(days, recommend.ItineraryDay{Day: day, Items: items})
	}
	return days
}
