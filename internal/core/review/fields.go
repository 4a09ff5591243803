package review

import "github.com/example/dayboard/internal/models"

// Prompt field names, as stored and transmitted.
const (
	FieldTodaysOneThing = "todays_one_thing"
	FieldTopThreeTasks  = "top_three_tasks"
	FieldGratitude      = "gratitude"
	FieldAccomplished   = "accomplished"
	FieldDistractions   = "distractions"
	FieldTomorrowsShift = "tomorrows_shift"
)

// Prompt is a review field with the question the UI asks for it.
type Prompt struct {
	Field    string
	Question string
}

var amPrompts = []Prompt{
	{FieldTodaysOneThing, "What is the one thing for today?"},
	{FieldTopThreeTasks, "Top three tasks"},
	{FieldGratitude, "Grateful for"},
}

var pmPrompts = []Prompt{
	{FieldAccomplished, "What did you accomplish?"},
	{FieldDistractions, "What distracted you?"},
	{FieldTomorrowsShift, "What shifts tomorrow?"},
}

// PromptsFor returns the prompts belonging to a review type.
// The store accepts every field on either type; this is display policy.
func PromptsFor(t models.ReviewType) []Prompt {
	switch t {
	case models.ReviewAM:
		return amPrompts
	case models.ReviewPM:
		return pmPrompts
	default:
		return nil
	}
}
