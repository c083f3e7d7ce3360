package coach

// Role identifies which side of the conversation produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
)

// Turn is one rendered message in the chat transcript.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
