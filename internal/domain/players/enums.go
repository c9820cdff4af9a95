package players

import (
	"slices"
	"strings"
)

// Position is the player's roster position.
type Position string

const (
	PositionForward Position = "Forward"
	PositionDefense Position = "Defense"
	PositionGoalie  Position = "Goalie"
)

// Status mirrors the roster availability states.
type Status string

const (
	StatusActive    Status = "Active"
	StatusInjured   Status = "Injured"
	StatusReserve   Status = "Reserve"
	StatusProspect  Status = "Prospect"
	StatusSuspended Status = "Suspended"
)

// Rating is the scouting tier assigned to a player.
type Rating string

const (
	RatingElite     Rating = "Elite"
	RatingTopLine   Rating = "Top Line"
	RatingMiddleSix Rating = "Middle Six"
	RatingDepth     Rating = "Depth"
	RatingProspect  Rating = "Prospect"
)

// ContractStatus describes the stage of the contract cycle.
type ContractStatus string

const (
	ContractSigned   ContractStatus = "Signed"
	ContractRFA      ContractStatus = "RFA"
	ContractUFA      ContractStatus = "UFA"
	ContractELC      ContractStatus = "ELC"
	ContractUnsigned ContractStatus = "Unsigned"
)

// Shoots is the player's handedness.
type Shoots string

const (
	ShootsLeft  Shoots = "L"
	ShootsRight Shoots = "R"
)

// Style is the scouting archetype.
type Style string

const (
	StyleSniper     Style = "Sniper"
	StylePlaymaker  Style = "Playmaker"
	StylePowerFwd   Style = "Power Forward"
	StyleTwoWay     Style = "Two-Way"
	StyleGrinder    Style = "Grinder"
	StyleOffensiveD Style = "Offensive D"
	StyleDefensiveD Style = "Defensive D"
	StyleButterfly  Style = "Butterfly"
	StyleHybrid     Style = "Hybrid"
)

var (
	positions = []Position{PositionForward, PositionDefense, PositionGoalie}
	statuses  = []Status{StatusActive, StatusInjured, StatusReserve, StatusProspect, StatusSuspended}
	ratings   = []Rating{RatingElite, RatingTopLine, RatingMiddleSix, RatingDepth, RatingProspect}
	contracts = []ContractStatus{ContractSigned, ContractRFA, ContractUFA, ContractELC, ContractUnsigned}
	handed    = []Shoots{ShootsLeft, ShootsRight}
	styles    = []Style{
		StyleSniper, StylePlaymaker, StylePowerFwd, StyleTwoWay, StyleGrinder,
		StyleOffensiveD, StyleDefensiveD, StyleButterfly, StyleHybrid,
	}
)

// Positions lists every valid Position.
func Positions() []Position { return append([]Position(nil), positions...) }

// Statuses lists every valid Status.
func Statuses() []Status { return append([]Status(nil), statuses...) }

// Ratings lists every valid Rating.
func Ratings() []Rating { return append([]Rating(nil), ratings...) }

// ContractStatuses lists every valid ContractStatus.
func ContractStatuses() []ContractStatus { return append([]ContractStatus(nil), contracts...) }

// Styles lists every valid Style.
func Styles() []Style { return append([]Style(nil), styles...) }

func (p Position) Valid() bool       { return slices.Contains(positions, p) }
func (s Status) Valid() bool         { return slices.Contains(statuses, s) }
func (r Rating) Valid() bool         { return slices.Contains(ratings, r) }
func (c ContractStatus) Valid() bool { return slices.Contains(contracts, c) }
func (s Shoots) Valid() bool         { return slices.Contains(handed, s) }
func (s Style) Valid() bool          { return slices.Contains(styles, s) }

// ParsePosition resolves a case-insensitive position name.
func ParsePosition(raw string) (Position, bool) { return parse(positions, raw) }

// ParseStatus resolves a case-insensitive status name.
func ParseStatus(raw string) (Status, bool) { return parse(statuses, raw) }

// ParseRating resolves a case-insensitive rating name.
func ParseRating(raw string) (Rating, bool) { return parse(ratings, raw) }

// ParseContractStatus resolves a case-insensitive contract status.
func ParseContractStatus(raw string) (ContractStatus, bool) { return parse(contracts, raw) }

// ParseShoots resolves "L"/"R" as well as "left"/"right".
func ParseShoots(raw string) (Shoots, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "l", "left":
		return ShootsLeft, true
	case "r", "right":
		return ShootsRight, true
	}
	return "", false
}

// ParseStyle resolves a case-insensitive style name.
func ParseStyle(raw string) (Style, bool) { return parse(styles, raw) }

func parse[T ~string](set []T, raw string) (T, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range set {
		if strings.EqualFold(string(s), raw) {
			return s, true
		}
	}
	var zero T
	return zero, false
}
