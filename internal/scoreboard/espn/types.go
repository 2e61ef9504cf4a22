package espn

// Wire types for the ESPN scoreboard payload. Only the fields we map are
// declared; everything else is ignored by the decoder.

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Status       eventStatus   `json:"status"`
	Competitions []competition `json:"competitions"`
}

type eventStatus struct {
	Period       int        `json:"period"`
	DisplayClock string     `json:"displayClock"`
	Type         statusType `json:"type"`
}

type statusType struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	ShortDetail string `json:"shortDetail"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
	Venue       *venue       `json:"venue"`
	Situation   *situation   `json:"situation"`
}

type competitor struct {
	HomeAway string           `json:"homeAway"`
	Score    string           `json:"score"`
	Team     team             `json:"team"`
	Records  []record         `json:"records"`
	Leaders  []leaderCategory `json:"leaders"`
}

type team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
	Color        string `json:"color"`
}

type venue struct {
	FullName string `json:"fullName"`
}

type record struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type situation struct {
	Possession       string    `json:"possession"`
	DownDistanceText string    `json:"downDistanceText"`
	IsRedZone        bool      `json:"isRedZone"`
	HomeTimeouts     int       `json:"homeTimeouts"`
	AwayTimeouts     int       `json:"awayTimeouts"`
	LastPlay         *lastPlay `json:"lastPlay"`
}

type lastPlay struct {
	Text        string       `json:"text"`
	Probability *probability `json:"probability"`
}

type probability struct {
	HomeWinPercentage float64 `json:"homeWinPercentage"`
	AwayWinPercentage float64 `json:"awayWinPercentage"`
}

type leaderCategory struct {
	Leaders []leaderEntry `json:"leaders"`
}

type leaderEntry struct {
	DisplayValue string  `json:"displayValue"`
	Athlete      athlete `json:"athlete"`
}

type athlete struct {
	DisplayName string   `json:"displayName"`
	Position    position `json:"position"`
}

type position struct {
	Abbreviation string `json:"abbreviation"`
}
