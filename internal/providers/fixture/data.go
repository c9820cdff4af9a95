package fixture

import (
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

const (
	blues  = "St. Louis Blues"
	tbirds = "Springfield Thunderbirds"
)

var ptr = players.IntPtr

func roster() []players.Player {
	return []players.Player{
		{
			ID: "rthomas", Name: "Robert Thomas", Number: 18, Position: players.PositionForward, Team: blues, League: "NHL",
			Age: 25, HeightCm: 183, WeightLbs: 185, Nationality: "Canada", Birthplace: "Aurora, ON", Shoots: players.ShootsRight,
			DraftYear: ptr(2017), DraftRound: ptr(1), YearsInLeague: 7,
			Contract: players.ContractSigned, ContractExpiry: 2031, SalaryValue: 8125000,
			GamesPlayed: 82, Goals: 26, Assists: 60,
			Status: players.StatusActive, Rating: players.RatingElite, PlayerStyle: players.StylePlaymaker,
		},
		{
			ID: "jkyrou", Name: "Jordan Kyrou", Number: 25, Position: players.PositionForward, Team: blues, League: "NHL",
			Age: 27, HeightCm: 185, WeightLbs: 188, Nationality: "Canada", Birthplace: "Toronto, ON", Shoots: players.ShootsRight,
			DraftYear: ptr(2016), DraftRound: ptr(2), YearsInLeague: 7,
			Contract: players.ContractSigned, ContractExpiry: 2031, SalaryValue: 8125000,
			GamesPlayed: 82, Goals: 36, Assists: 34,
			Status: players.StatusActive, Rating: players.RatingElite, PlayerStyle: players.StyleSniper,
		},
		{
			ID: "pbuchnevich", Name: "Pavel Buchnevich", Number: 89, Position: players.PositionForward, Team: blues, League: "NHL",
			Age: 30, HeightCm: 185, WeightLbs: 196, Nationality: "Russia", Birthplace: "Cherepovets", Shoots: players.ShootsLeft,
			DraftYear: ptr(2013), DraftRound: ptr(3), YearsInLeague: 9,
			Contract: players.ContractSigned, ContractExpiry: 2031, SalaryValue: 8000000,
			GamesPlayed: 77, Goals: 25, Assists: 51,
			Status: players.StatusActive, Rating: players.RatingTopLine, PlayerStyle: players.StyleTwoWay,
		},
		{
			ID: "bschenn", Name: "Brayden Schenn", Number: 10, Position: players.PositionForward, Team: blues, League: "NHL",
			Age: 33, HeightCm: 185, WeightLbs: 200, Nationality: "Canada", Birthplace: "Saskatoon, SK", Shoots: players.ShootsRight,
			DraftYear: ptr(2009), DraftRound: ptr(1), YearsInLeague: 14,
			Contract: players.ContractSigned, ContractExpiry: 2028, SalaryValue: 6500000,
			GamesPlayed: 82, Goals: 18, Assists: 26,
			Status: players.StatusActive, Rating: players.RatingMiddleSix, PlayerStyle: players.StylePowerFwd,
		},
		{
			ID: "nbjugstad", Name: "Nick Bjugstad", Number: 17, Position: players.PositionForward, Team: blues, League: "NHL",
			Age: 33, HeightCm: 198, WeightLbs: 209, Nationality: "USA", Birthplace: "Minneapolis, MN", Shoots: players.ShootsRight,
			DraftYear: ptr(2010), DraftRound: ptr(1), YearsInLeague: 11,
			Contract: players.ContractUFA, ContractExpiry: 2025, SalaryValue: 2100000,
			GamesPlayed: 11, Goals: 1, Assists: 2,
			Status: players.StatusInjured, Rating: players.RatingDepth, PlayerStyle: players.StyleGrinder,
		},
		{
			ID: "cparayko", Name: "Colton Parayko", Number: 55, Position: players.PositionDefense, Team: blues, League: "NHL",
			Age: 32, HeightCm: 198, WeightLbs: 228, Nationality: "Canada", Birthplace: "St. Albert, AB", Shoots: players.ShootsRight,
			DraftYear: ptr(2012), DraftRound: ptr(3), YearsInLeague: 10,
			Contract: players.ContractSigned, ContractExpiry: 2030, SalaryValue: 6500000,
			GamesPlayed: 80, Goals: 8, Assists: 27,
			Status: players.StatusActive, Rating: players.RatingTopLine, PlayerStyle: players.StyleDefensiveD,
		},
		{
			ID: "jfaulk", Name: "Justin Faulk", Number: 72, Position: players.PositionDefense, Team: blues, League: "NHL",
			Age: 33, HeightCm: 183, WeightLbs: 218, Nationality: "USA", Birthplace: "South St. Paul, MN", Shoots: players.ShootsRight,
			DraftYear: ptr(2010), DraftRound: ptr(2), YearsInLeague: 14,
			Contract: players.ContractSigned, ContractExpiry: 2027, SalaryValue: 6500000,
			GamesPlayed: 80, Goals: 11, Assists: 30,
			Status: players.StatusActive, Rating: players.RatingTopLine, PlayerStyle: players.StyleOffensiveD,
		},
		{
			ID: "lmailloux", Name: "Logan Mailloux", Number: 24, Position: players.PositionDefense, Team: blues, League: "NHL",
			Age: 22, HeightCm: 191, WeightLbs: 214, Nationality: "Canada", Birthplace: "Belle River, ON", Shoots: players.ShootsRight,
			DraftYear: ptr(2021), DraftRound: ptr(1), YearsInLeague: 1,
			Contract: players.ContractELC, ContractExpiry: 2026, SalaryValue: 863333,
			GamesPlayed: 18, Goals: 2, Assists: 5,
			Status: players.StatusActive, Rating: players.RatingProspect, PlayerStyle: players.StyleOffensiveD,
		},
		{
			ID: "jbinnington", Name: "Jordan Binnington", Number: 50, Position: players.PositionGoalie, Team: blues, League: "NHL",
			Age: 32, HeightCm: 188, WeightLbs: 166, Nationality: "Canada", Birthplace: "Richmond Hill, ON", Shoots: players.ShootsLeft,
			DraftYear: ptr(2011), DraftRound: ptr(3), YearsInLeague: 7,
			Contract: players.ContractSigned, ContractExpiry: 2027, SalaryValue: 6000000,
			GamesPlayed: 57,
			Status: players.StatusActive, Rating: players.RatingTopLine, PlayerStyle: players.StyleHybrid,
		},
		{
			ID: "jhofer", Name: "Joel Hofer", Number: 30, Position: players.PositionGoalie, Team: blues, League: "NHL",
			Age: 25, HeightCm: 196, WeightLbs: 180, Nationality: "Canada", Birthplace: "Winnipeg, MB", Shoots: players.ShootsLeft,
			DraftYear: ptr(2018), DraftRound: ptr(4), YearsInLeague: 3,
			Contract: players.ContractRFA, ContractExpiry: 2026, SalaryValue: 775000,
			GamesPlayed: 30,
			Status: players.StatusActive, Rating: players.RatingMiddleSix, PlayerStyle: players.StyleButterfly,
		},
		{
			ID: "zdean", Name: "Zach Dean", Number: 71, Position: players.PositionForward, Team: tbirds, League: "AHL",
			Age: 22, HeightCm: 183, WeightLbs: 176, Nationality: "Canada", Birthplace: "Newmarket, ON", Shoots: players.ShootsLeft,
			DraftYear: ptr(2021), DraftRound: ptr(1), YearsInLeague: 2,
			Contract: players.ContractELC, ContractExpiry: 2026, SalaryValue: 894167,
			GamesPlayed: 70, Goals: 20, Assists: 25,
			Status: players.StatusActive, Rating: players.RatingProspect, PlayerStyle: players.StyleTwoWay,
		},
		{
			ID: "mlavoie", Name: "Émile Lavoie", Number: 44, Position: players.PositionForward, Team: tbirds, League: "AHL",
			Age: 23, HeightCm: 180, WeightLbs: 179, Nationality: "Canada", Birthplace: "Québec City, QC", Shoots: players.ShootsLeft,
			YearsInLeague: 2,
			Contract: players.ContractELC, ContractExpiry: 2026, SalaryValue: 850000,
			GamesPlayed: 60, Goals: 14, Assists: 15,
			Status: players.StatusInjured, Rating: players.RatingDepth, PlayerStyle: players.StyleGrinder,
		},
		{
			ID: "ttucker", Name: "Tyler Tucker", Number: 75, Position: players.PositionDefense, Team: tbirds, League: "AHL",
			Age: 25, HeightCm: 185, WeightLbs: 209, Nationality: "Canada", Birthplace: "Longlac, ON", Shoots: players.ShootsLeft,
			DraftYear: ptr(2018), DraftRound: ptr(7), YearsInLeague: 4,
			Contract: players.ContractRFA, ContractExpiry: 2025, SalaryValue: 775000,
			GamesPlayed: 45, Goals: 3, Assists: 12,
			Status: players.StatusReserve, Rating: players.RatingDepth, PlayerStyle: players.StyleDefensiveD,
		},
		{
			ID: "ostenberg", Name: "Otto Stenberg", Number: 20, Position: players.PositionForward, Team: "Frölunda HC", League: "SHL",
			Age: 19, HeightCm: 180, WeightLbs: 181, Nationality: "Sweden", Birthplace: "Stockholm", Shoots: players.ShootsLeft,
			DraftYear: ptr(2023), DraftRound: ptr(1), YearsInLeague: 1,
			Contract: players.ContractUnsigned, ContractExpiry: 2025,
			GamesPlayed: 41, Goals: 9, Assists: 11,
			Status: players.StatusProspect, Rating: players.RatingProspect, PlayerStyle: players.StyleSniper,
		},
		{
			ID: "ajiricek", Name: "Adam Jiricek", Number: 6, Position: players.PositionDefense, Team: "HC Plzeň", League: "Czech Extraliga",
			Age: 19, HeightCm: 188, WeightLbs: 180, Nationality: "Czechia", Birthplace: "Klatovy", Shoots: players.ShootsRight,
			DraftYear: ptr(2024), DraftRound: ptr(1), YearsInLeague: 1,
			Contract: players.ContractUnsigned, ContractExpiry: 2025,
			GamesPlayed: 12, Goals: 1, Assists: 3,
			Status: players.StatusSuspended, Rating: players.RatingProspect, PlayerStyle: players.StyleTwoWay,
		},
		{
			ID: "jsnuggerud", Name: "Jimmy Snuggerud", Number: 81, Position: players.PositionForward, Team: "Minnesota Golden Gophers", League: "NCAA",
			Age: 20, HeightCm: 188, WeightLbs: 190, Nationality: "USA", Birthplace: "Chaska, MN", Shoots: players.ShootsRight,
			DraftYear: ptr(2022), DraftRound: ptr(1), YearsInLeague: 2, DraftEligible: false,
			Contract: players.ContractUnsigned, ContractExpiry: 2025,
			GamesPlayed: 39, Goals: 24, Assists: 26,
			Status: players.StatusProspect, Rating: players.RatingProspect, PlayerStyle: players.StyleSniper,
		},
		{
			ID: "lcormier", Name: "Lukas Cormier", Number: 9, Position: players.PositionForward, Team: "Saint John Sea Dogs", League: "QMJHL",
			Age: 17, HeightCm: 178, WeightLbs: 170, Nationality: "Canada", Birthplace: "Moncton, NB", Shoots: players.ShootsLeft,
			YearsInLeague: 1, DraftEligible: true,
			Contract: players.ContractUnsigned,
			GamesPlayed: 64, Goals: 31, Assists: 38,
			Status: players.StatusProspect, Rating: players.RatingProspect, PlayerStyle: players.StylePlaymaker,
		},
	}
}

func meetingNotes() []notes.Note {
	return []notes.Note{
		{
			ID: "note-1", Title: "Trade deadline planning", Author: "Doug Armstrong", Category: notes.CategoryTrade, Date: "2025-02-18",
			Content: "Priority is a right-shot second-pair defenseman. Cap space allows a retained-salary deal up to $3M.",
			Tags:    []string{"deadline", "defense", "cap"},
		},
		{
			ID: "note-2", Title: "Development camp recap", Author: "Tim Taylor", Category: notes.CategoryScouting, Date: "2025-07-03",
			Content: "Stenberg and Jiricek stood out. Snuggerud's release is NHL-ready; skating needs another summer.",
			Tags:    []string{"prospects", "camp"},
		},
		{
			ID: "note-3", Title: "Medical update", Author: "Ray Barile", Category: notes.CategoryMedical, Date: "2025-01-22",
			Content: "Bjugstad is week to week. Lavoie cleared for non-contact practice.",
			Tags:    []string{"injury"},
		},
		{
			ID: "note-4", Title: "Pro scouting meeting", Author: "Bill Armstrong", Category: notes.CategoryMeeting, Date: "2025-03-05",
			Content: "Reviewed UFA targets for July 1. Focus on bottom-six centers who can kill penalties.",
			Tags:    []string{"free agency", "penalty kill"},
		},
		{
			ID: "note-5", Title: "AHL affiliate check-in", Author: "Tim Taylor", Category: notes.CategoryGeneral, Date: "2025-04-12",
			Content: "Springfield pushing for a playoff spot. Dean leads the team in even-strength points.",
			Tags:    []string{"springfield", "ahl"},
		},
	}
}

func library() []videos.Video {
	return []videos.Video{
		{ID: "vid-1", Title: "Thomas overtime winner vs CHI", Player: "Robert Thomas", Team: blues, Category: videos.CategoryHighlights, DurationSeconds: 94, Date: "2025-01-14", Tags: []string{"overtime", "goal"}},
		{ID: "vid-2", Title: "Kyrou zone entries, full season", Player: "Jordan Kyrou", Team: blues, Category: videos.CategoryGameFilm, DurationSeconds: 1260, Date: "2025-03-01", Tags: []string{"transition"}},
		{ID: "vid-3", Title: "Dean forecheck package", Player: "Zach Dean", Team: tbirds, Category: videos.CategoryScouting, DurationSeconds: 610, Date: "2025-02-02", Tags: []string{"forecheck", "prospect"}},
		{ID: "vid-4", Title: "Stenberg SHL shift reel", Player: "Otto Stenberg", Team: "Frölunda HC", Category: videos.CategoryScouting, DurationSeconds: 480, Date: "2025-02-20", Tags: []string{"prospect", "europe"}},
		{ID: "vid-5", Title: "Goalie tracking drills", Player: "Joel Hofer", Team: blues, Category: videos.CategoryPractice, DurationSeconds: 300, Date: "2025-01-30", Tags: []string{"goalie"}},
	}
}
