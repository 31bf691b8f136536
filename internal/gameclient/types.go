package gameclient

// EntryKind tags one transcript entry. The remote engine may introduce new
// kinds; unknown values pass through untouched.
type EntryKind string

const (
	KindSpeak EntryKind = "speak"
	KindVote  EntryKind = "vote"
)

type Agent struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsImpostor bool   `json:"is_impostor"`
	IsAlive    bool   `json:"is_alive"`
}

type TranscriptEntry struct {
	AgentID       int       `json:"agent_id"`
	Kind          EntryKind `json:"action_type"`
	Content       string    `json:"content"`
	TargetAgentID *int      `json:"target_agent_id,omitempty"`
}

// Session is the normalized result of a create call: a fresh roster, no
// transcript yet, step zero.
type Session struct {
	GameID        string
	Agents        []Agent
	Message       string
	MeetingReason string
	ReporterName  string
	Step          int
	MaxSteps      int
}

// StepResult carries the full state of a session as of one advance call. The
// transcript is the complete history to date, not a delta.
type StepResult struct {
	GameID     string
	Step       int
	MaxSteps   int
	Transcript []TranscriptEntry
	Eliminated string
	Winner     string
	GameOver   bool
	Message    string
}

// Wire shapes of the impostor-game API (snake_case JSON).

type initWire struct {
	GameID        string  `json:"game_id"`
	Message       string  `json:"message"`
	Agents        []Agent `json:"agents"`
	ReporterName  string  `json:"reporter_name"`
	MeetingReason string  `json:"meeting_reason"`
}

type stepWire struct {
	GameID              string            `json:"game_id"`
	StepNumber          int               `json:"step_number"`
	MaxSteps            int               `json:"max_steps"`
	ConversationHistory []TranscriptEntry `json:"conversation_history"`
	Eliminated          string            `json:"eliminated"`
	Winner              string            `json:"winner"`
	GameOver            bool              `json:"game_over"`
	Message             string            `json:"message"`
}

type stateWire struct {
	GameID              string            `json:"game_id"`
	StepNumber          int               `json:"step_number"`
	MaxSteps            int               `json:"max_steps"`
	Agents              []Agent           `json:"agents"`
	PublicActionHistory []TranscriptEntry `json:"public_action_history"`
	Winner              string            `json:"winner"`
	AliveCount          int               `json:"alive_count"`
	ImpostorAlive       bool              `json:"impostor_alive"`
}

// GameSnapshot is the read-only view behind GET /game/{id}.
type GameSnapshot struct {
	GameID        string
	Step          int
	MaxSteps      int
	Agents        []Agent
	Transcript    []TranscriptEntry
	Winner        string
	AliveCount    int
	ImpostorAlive bool
}
