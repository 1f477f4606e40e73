package trip

// Post is a mate-recruitment post shown on the ko-trip board. Display only;
// nothing in the core mutates posts.
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Nickname string `json:"nickname"`
	AgeGroup string `json:"ageGroup"`
	Gender   string `json:"gender"`
	Start    string `json:"start"`
	End      string `json:"end"`
	DaysText string `json:"daysText"`
}
