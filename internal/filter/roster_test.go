package filter

import "github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"

func intp(v int) *int { return players.IntPtr(v) }

// testRoster is a small mixed roster covering every enum and an undrafted player.
func testRoster() []players.Player {
	return players.NormalizeAll([]players.Player{
		{
			ID: "p1", Name: "Robert Thomas", Number: 18, Position: players.PositionForward,
			Team: "St. Louis Blues", League: "NHL", Age: 25, HeightCm: 183, WeightLbs: 185,
			Nationality: "Canada", Birthplace: "Aurora, ON", Shoots: players.ShootsRight,
			DraftYear: intp(2017), DraftRound: intp(1), YearsInLeague: 7,
			Contract: players.ContractSigned, ContractExpiry: 2031, SalaryValue: 8.125,
			GamesPlayed: 82, Goals: 26, Assists: 60,
			Status: players.StatusActive, Rating: players.RatingElite, PlayerStyle: players.StylePlaymaker,
		},
		{
			ID: "p2", Name: "Colton Parayko", Number: 55, Position: players.PositionDefense,
			Team: "St. Louis Blues", League: "NHL", Age: 31, HeightCm: 198, WeightLbs: 228,
			Nationality: "Canada", Birthplace: "St. Albert, AB", Shoots: players.ShootsRight,
			DraftYear: intp(2012), DraftRound: intp(3), YearsInLeague: 9,
			Contract: players.ContractSigned, ContractExpiry: 2030, SalaryValue: 6.5,
			GamesPlayed: 80, Goals: 8, Assists: 27,
			Status: players.StatusActive, Rating: players.RatingTopLine, PlayerStyle: players.StyleDefensiveD,
		},
		{
			ID: "p3", Name: "Jordan Binnington", Number: 50, Position: players.PositionGoalie,
			Team: "St. Louis Blues", League: "NHL", Age: 31, HeightCm: 188, WeightLbs: 166,
			Nationality: "Canada", Birthplace: "Richmond Hill, ON", Shoots: players.ShootsLeft,
			DraftYear: intp(2011), DraftRound: intp(3), YearsInLeague: 6,
			Contract: players.ContractSigned, ContractExpiry: 2027, SalaryValue: 6.0,
			GamesPlayed: 57, Status: players.StatusActive, Rating: players.RatingTopLine, PlayerStyle: players.StyleHybrid,
		},
		{
			ID: "p4", Name: "Émile Lavoie", Number: 44, Position: players.PositionForward,
			Team: "Springfield Thunderbirds", League: "AHL", Age: 22, HeightCm: 180, WeightLbs: 179,
			Nationality: "Canada", Birthplace: "Québec City, QC", Shoots: players.ShootsLeft,
			YearsInLeague: 2, DraftEligible: false,
			Contract: players.ContractELC, ContractExpiry: 2026, SalaryValue: 0.85,
			GamesPlayed: 60, Goals: 14, Assists: 15,
			Status: players.StatusInjured, Rating: players.RatingDepth, PlayerStyle: players.StyleGrinder,
		},
		{
			ID: "p5", Name: "Zach Dean", Number: 71, Position: players.PositionForward,
			Team: "Springfield Thunderbirds", League: "AHL", Age: 21, HeightCm: 183, WeightLbs: 176,
			Nationality: "Canada", Birthplace: "Newmarket, ON", Shoots: players.ShootsLeft,
			DraftYear: intp(2021), DraftRound: intp(1), YearsInLeague: 2,
			Contract: players.ContractELC, ContractExpiry: 2026, SalaryValue: 0.9,
			GamesPlayed: 70, Goals: 20, Assists: 25,
			Status: players.StatusActive, Rating: players.RatingProspect, PlayerStyle: players.StyleTwoWay,
		},
		{
			ID: "p6", Name: "Otto Stenberg", Number: 20, Position: players.PositionForward,
			Team: "Frölunda HC", League: "SHL", Age: 19, HeightCm: 180, WeightLbs: 181,
			Nationality: "Sweden", Birthplace: "Stockholm", Shoots: players.ShootsLeft,
			DraftYear: intp(2023), DraftRound: intp(1), YearsInLeague: 1, DraftEligible: true,
			Contract: players.ContractUnsigned, ContractExpiry: 2025, SalaryValue: 0,
			GamesPlayed: 41, Goals: 9, Assists: 11,
			Status: players.StatusProspect, Rating: players.RatingProspect, PlayerStyle: players.StyleSniper,
		},
	})
}

func ids(items []players.Player) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}
