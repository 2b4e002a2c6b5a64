package affirmation

import (
	"fmt"
	"time"
)

const systemPrompt = "You are a supportive companion. Always respond with 2-4 warm sentences. " +
	"Always include the user's name in the affirmation. " +
	"Use the user's name and feeling naturally. " +
	"Add a metaphor or time-of-day context when possible. " +
	"Never give medical or legal advice, and never diagnose."

const safetyNotice = "If the user expresses intent to self-harm, respond with a gentle, supportive message, " +
	"encourage them to seek help from trusted people or professionals, and avoid giving advice."

// timeOfDay buckets the wall clock into a coarse prompt context.
func timeOfDay(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// buildUserPayload renders the structured user turn sent to the model.
func buildUserPayload(req *Request, now time.Time) string {
	return fmt.Sprintf("Name: %s\nFeeling: %s\nDetails: %s\nTime of day: %s",
		req.Name, req.Feeling, req.Details, timeOfDay(now))
}
