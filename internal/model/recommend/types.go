package recommend

// TravelType selects which recommendation path a session takes.
type TravelType string

const (
	TravelFree    TravelType = "FREE"
	TravelPackage TravelType = "PACKAGE"
)

// Period is the trip length label from the input screen.
type Period string

const (
	PeriodDayTrip     Period = "당일"
	PeriodOneNight    Period = "1박2일"
	PeriodTwoNights   Period = "2박3일"
	PeriodThreeNights Period = "3박4일"
	PeriodFourPlus    Period = "4박이상"
)

// Periods lists the valid period labels in display order.
func Periods() []Period {
	return []Period{PeriodDayTrip, PeriodOneNight, PeriodTwoNights, PeriodThreeNights, PeriodFourPlus}
}

// Days maps a period label to the number of itinerary days. 4박이상 is
// deliberately capped at 5, an approximation rather than an exact parse.
func (p Period) Days() int {
	switch p {
	case PeriodDayTrip:
		return 1
	case PeriodOneNight:
		return 2
	case PeriodTwoNights:
		return 3
	case PeriodThreeNights:
		return 4
	default:
		return 5
	}
}

// Valid reports whether p is one of the known period labels.
func (p Period) Valid() bool {
	for _, known := range Periods() {
		if p == known {
			return true
		}
	}
	return false
}

// Input is the submitted recommendation query. It lives only in session
// memory; a restart intentionally loses it.
type Input struct {
	TravelType TravelType `json:"travelType"`
	Region1    string     `json:"region1"`
	Region2    string     `json:"region2,omitempty"`
	Period     Period     `json:"period"`
	Purposes   []string   `json:"purposes"`
	Intensity  string     `json:"intensity"` // 여유/중간/강행군
	People     string     `json:"people"`    // 혼자서/단둘이/3명 이상
	StartDate  string     `json:"startDate,omitempty"`
	EndDate    string     `json:"endDate,omitempty"`
}

// Valid mirrors the input screen's next-button condition: required selections
// made and at least one purpose chosen. There is no field-level error
// reporting here.
func (in Input) Valid() bool {
	if in.TravelType != TravelFree && in.TravelType != TravelPackage {
		return false
	}
	if in.Region1 == "" || !in.Period.Valid() {
		return false
	}
	if len(in.Purposes) == 0 {
		return false
	}
	return in.Intensity != "" && in.People != ""
}

// ItineraryItem is one scheduled slot of a generated day.
type ItineraryItem struct {
	Time  string `json:"time"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// ItineraryDay is one generated day. Never user-edited.
type ItineraryDay struct {
	Day   int             `json:"day"`
	Items []ItineraryItem `json:"items"`
}

// PackageItem is a static catalog offer. Read-only reference data.
type PackageItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Region   string   `json:"region"`
	Period   Period   `json:"period"`
	Purposes []string `json:"purposes"`
	Price    int      `json:"price"`
	Provider string   `json:"provider"`
}
