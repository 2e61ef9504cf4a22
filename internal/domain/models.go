package domain

// Sport identifies a supported league.
type Sport string

const (
	SportNFL Sport = "nfl"
	SportNBA Sport = "nba"
)

// Valid reports whether the sport is one we aggregate.
func (s Sport) Valid() bool {
	return s == SportNFL || s == SportNBA
}

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "scheduled"
	StatusInProgress GameStatus = "in_progress"
	StatusFinal      GameStatus = "final"
)

// Team represents the normalized team shape.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo,omitempty"`
	Record       string `json:"record,omitempty"`
	Color        string `json:"color,omitempty"`
}

// Situation carries live in-game detail when a game is in progress.
type Situation struct {
	Possession       string  `json:"possession,omitempty"`
	DownDistanceText string  `json:"downDistanceText,omitempty"`
	LastPlay         string  `json:"lastPlay,omitempty"`
	IsRedZone        bool    `json:"isRedZone,omitempty"`
	HomeTimeouts     int     `json:"homeTimeouts,omitempty"`
	AwayTimeouts     int     `json:"awayTimeouts,omitempty"`
	HomeWinPct       float64 `json:"homeWinPct,omitempty"`
	AwayWinPct       float64 `json:"awayWinPct,omitempty"`
}

// Leader is a per-game statistical leader entry.
type Leader struct {
	TeamID   string `json:"teamId"`
	Player   string `json:"player"`
	Stat     string `json:"stat"`
	Position string `json:"position,omitempty"`
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID           string     `json:"id"`
	Sport        Sport      `json:"sport"`
	HomeTeam     Team       `json:"homeTeam"`
	AwayTeam     Team       `json:"awayTeam"`
	HomeScore    int        `json:"homeScore"`
	AwayScore    int        `json:"awayScore"`
	Status       GameStatus `json:"status"`
	StartTime    string     `json:"startTime"`
	Venue        string     `json:"venue,omitempty"`
	Period       int        `json:"period,omitempty"`
	Clock        string     `json:"clock,omitempty"`
	StatusDetail string     `json:"statusDetail,omitempty"`
	Situation    *Situation `json:"situation,omitempty"`
	Leaders      []Leader   `json:"leaders,omitempty"`
}

// TodayResponse is the payload returned by /games.
type TodayResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// NewTodayResponse builds the /games payload for a date.
func NewTodayResponse(date string, games []Game) TodayResponse {
	if games == nil {
		games = []Game{}
	}
	return TodayResponse{Date: date, Games: games}
}
