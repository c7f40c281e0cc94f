package players

// Player is the minimal roster record kept for joins in reports.
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
