package museum

// Chat turn roles. The curator adapter maps RoleAssistant onto whatever
// role name the AI API expects.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one entry of the append-only conversation transcript.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
