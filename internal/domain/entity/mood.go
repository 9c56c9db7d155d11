// Package entity contains the core business objects of the project.
package entity

// Mood is the evening check-in mood scale.
type Mood int

const (
	// MoodGreat indicates the day went well.
	MoodGreat Mood = 0
	// MoodOkay indicates a neutral day.
	MoodOkay Mood = 1
	// MoodDifficult indicates a hard day.
	MoodDifficult Mood = 2
)

// IsValid checks if the Mood is a valid value.
func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodOkay, MoodDifficult:
		return true
	default:
		return false
	}
}

// String returns the display name of the Mood.
func (m Mood) String() string {
	switch m {
	case MoodGreat:
		return "great"
	case MoodOkay:
		return "okay"
	case MoodDifficult:
		return "difficult"
	default:
		return "unknown"
	}
}

// PromptType distinguishes the two daily check-in prompts. Each prompt owns a
// disjoint set of DailyEntry fields, which is what makes merge-on-save safe.
type PromptType string

const (
	// PromptMorning is the morning check-in (the "what do you need" prompt).
	PromptMorning PromptType = "morning"
	// PromptEvening is the evening check-in (mood, gratitude, tomorrow).
	PromptEvening PromptType = "evening"
)

// IsValid checks if the PromptType is a valid value.
func (p PromptType) IsValid() bool {
	return p == PromptMorning || p == PromptEvening
}
