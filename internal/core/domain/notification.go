package domain

// Notification is a fire-and-forget outcome report emitted by management
// operations ("member Priya Sharma deleted"). It never affects session or
// directory state; the sink decides how to surface it.
type Notification struct {
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	Actor   string `json:"actor"`
	Message string `json:"message"`
}
