package mlbstats

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int    `json:"gamePk"`
	GameType string `json:"gameType"`
}

type feedResponse struct {
	GamePk   int      `json:"gamePk"`
	GameData gameData `json:"gameData"`
	LiveData liveData `json:"liveData"`
}

type gameData struct {
	Game     gameInfo                  `json:"game"`
	Datetime gameDatetime              `json:"datetime"`
	Teams    homeAway[teamResponse]    `json:"teams"`
	Players  map[string]playerResponse `json:"players"`
}

type gameInfo struct {
	Pk   int    `json:"pk"`
	Type string `json:"type"`
}

type gameDatetime struct {
	OfficialDate string `json:"officialDate"`
}

type homeAway[T any] struct {
	Home T `json:"home"`
	Away T `json:"away"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type playerResponse struct {
	ID       int      `json:"id"`
	FullName string   `json:"fullName"`
	IsPlayer bool     `json:"isPlayer"`
	BatSide  *codeRef `json:"batSide"`
}

type codeRef struct {
	Code string `json:"code"`
}

type idRef struct {
	ID int `json:"id"`
}

type nameRef struct {
	Name string `json:"name"`
}

type liveData struct {
	Plays    playsResponse    `json:"plays"`
	Boxscore boxscoreResponse `json:"boxscore"`
}

type playsResponse struct {
	AllPlays []playResponse `json:"allPlays"`
}

type playResponse struct {
	Result     playResult      `json:"result"`
	About      playAbout       `json:"about"`
	Count      countResponse   `json:"count"`
	Matchup    matchup         `json:"matchup"`
	PlayEvents []eventResponse `json:"playEvents"`
}

type playResult struct {
	Description *string `json:"description"`
}

type playAbout struct {
	Inning     int    `json:"inning"`
	HalfInning string `json:"halfInning"`
}

type countResponse struct {
	Balls   int `json:"balls"`
	Strikes int `json:"strikes"`
	Outs    int `json:"outs"`
}

type matchup struct {
	Batter  idRef   `json:"batter"`
	Pitcher idRef   `json:"pitcher"`
	BatSide codeRef `json:"batSide"`
}

type eventResponse struct {
	IsPitch        bool          `json:"isPitch"`
	IsSubstitution bool          `json:"isSubstitution"`
	PlayID         string        `json:"playId"`
	Count          countResponse `json:"count"`
	Details        eventDetails  `json:"details"`
	StartTime      string        `json:"startTime"`
	EndTime        string        `json:"endTime"`
	PitchData      *pitchData    `json:"pitchData"`
	Position       *nameRef      `json:"position"`
	Player         *idRef        `json:"player"`
	Umpire         *idRef        `json:"umpire"`
}

type eventDetails struct {
	Code        string  `json:"code"`
	Description *string `json:"description"`
	EventType   string  `json:"eventType"`
}

type pitchData struct {
	StrikeZoneTop    *float64    `json:"strikeZoneTop"`
	StrikeZoneBottom *float64    `json:"strikeZoneBottom"`
	Coordinates      coordinates `json:"coordinates"`
}

type coordinates struct {
	PX *float64 `json:"pX"`
	PZ *float64 `json:"pZ"`
}

type boxscoreResponse struct {
	Officials []officialResponse     `json:"officials"`
	Teams     homeAway[boxscoreTeam] `json:"teams"`
}

type officialResponse struct {
	Official     officialPerson `json:"official"`
	OfficialType string         `json:"officialType"`
}

type officialPerson struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type boxscoreTeam struct {
	Players map[string]boxscorePlayer `json:"players"`
}

type boxscorePlayer struct {
	Person     idRef      `json:"person"`
	Position   nameRef    `json:"position"`
	GameStatus gameStatus `json:"gameStatus"`
}

type gameStatus struct {
	IsSubstitute bool `json:"isSubstitute"`
	IsOnBench    bool `json:"isOnBench"`
}
