package players

// Player is the read-only roster record served to the dashboard.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Number   int      `json:"number"`
	Position Position `json:"position"`
	Team     string   `json:"team"`
	League   string   `json:"league"`

	Age         int    `json:"age"`
	HeightCm    int    `json:"heightCm"`
	WeightLbs   int    `json:"weightLbs"`
	Nationality string `json:"nationality"`
	Birthplace  string `json:"birthplace"`
	Shoots      Shoots `json:"shoots"`

	// DraftYear and DraftRound are nil for undrafted players.
	DraftYear     *int `json:"draftYear,omitempty"`
	DraftRound    *int `json:"draftRound,omitempty"`
	YearsInLeague int  `json:"yearsInLeague"`
	DraftEligible bool `json:"draftEligible"`

	Contract       ContractStatus `json:"contract"`
	ContractExpiry int            `json:"contractExpiry"`
	SalaryValue    float64        `json:"salaryValue"`

	GamesPlayed int `json:"gamesPlayed"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
	Points      int `json:"points"`

	Status      Status `json:"status"`
	Rating      Rating `json:"rating"`
	PlayerStyle Style  `json:"playerStyle"`
}

// Undrafted reports whether the player has no draft round on record.
func (p Player) Undrafted() bool {
	return p.DraftRound == nil
}

// Normalize derives fields that are not trusted from the source: points are always goals plus assists.
func Normalize(p Player) Player {
	p.Points = p.Goals + p.Assists
	return p
}

// NormalizeAll returns a normalized copy of items.
func NormalizeAll(items []Player) []Player {
	out := make([]Player, len(items))
	for i, p := range items {
		out[i] = Normalize(p)
	}
	return out
}

// IntPtr is a small helper for building optional draft fields.
func IntPtr(v int) *int {
	return &v
}
