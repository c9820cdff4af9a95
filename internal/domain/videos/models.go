package videos

// Category is the video library section.
type Category string

const (
	CategoryHighlights Category = "Highlights"
	CategoryScouting   Category = "Scouting"
	CategoryGameFilm   Category = "Game Film"
	CategoryPractice   Category = "Practice"
)

// Video is library metadata only; media storage lives elsewhere.
type Video struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Player          string   `json:"player"`
	Team            string   `json:"team"`
	Category        Category `json:"category"`
	DurationSeconds int      `json:"durationSeconds"`
	Date            string   `json:"date"`
	Tags            []string `json:"tags"`
}
