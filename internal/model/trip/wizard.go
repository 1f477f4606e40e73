package trip

// Stage is the ko-trip creation wizard's position. The prototype tracked this
// with loose flags; here the progression is explicit and validated.
type Stage string

const (
	StageStep1    Stage = "step1"
	StageStep2    Stage = "step2"
	StageGenerate Stage = "generate"
)

// Step1 is the trip-facts draft persisted after the first wizard screen.
type Step1 struct {
	StartDate string   `json:"startDate"` // YYYY-MM-DD
	EndDate   string   `json:"endDate"`
	Region    string   `json:"region"`
	Purpose   string   `json:"purpose"`
	Budget    string   `json:"budget"`
	Intensity string   `json:"intensity"`
	People    string   `json:"people"`
	MateTypes []string `json:"mateTypes"`
}

// Valid mirrors the step1 screen's next-button condition.
func (s Step1) Valid() bool {
	return s.StartDate != "" && s.EndDate != "" && s.Region != "" &&
		s.Purpose != "" && s.Budget != "" && s.Intensity != "" &&
		s.People != "" && len(s.MateTypes) > 0
}

// Step2 is the mate-preference draft persisted after the second screen.
type Step2 struct {
	Gender string   `json:"gender"`
	Age    string   `json:"age"`
	MBTI   string   `json:"mbti"`
	Wake   string   `json:"wake"`
	Food   string   `json:"food"`
	Etc    []string `json:"etc"`
}

// Valid mirrors the step2 screen's next-button condition. Etc is optional.
func (s Step2) Valid() bool {
	return s.Gender != "" && s.Age != "" && s.MBTI != "" && s.Wake != "" && s.Food != ""
}

// Summary is assembled at the generate step from both persisted drafts.
type Summary struct {
	Step1      Step1  `json:"step1"`
	Step2      Step2  `json:"step2"`
	DateRange  string `json:"dateRange"`  // "25.12.14 ~ 25.12.15"
	PeriodText string `json:"periodText"` // "당일" / "1박 2일" ...
}
