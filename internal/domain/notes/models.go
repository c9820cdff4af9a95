package notes

// Category groups meeting notes on the notes page.
type Category string

const (
	CategoryMeeting  Category = "Meeting"
	CategoryScouting Category = "Scouting"
	CategoryTrade    Category = "Trade"
	CategoryMedical  Category = "Medical"
	CategoryGeneral  Category = "General"
)

// Note is a front-office meeting or scouting note.
type Note struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
}
