package impl

import (
	"fittrack/internal/domain/entity"
)

// defaultActivities is the starter catalog created for every new account.
// Users edit or soft-delete these like any activity they created themselves.
func defaultActivities(userID uint) []*entity.Activity {
	return []*entity.Activity{
		{UserID: userID, Name: "Drink Water", Description: "Stay hydrated through the day", Icon: "droplet", TargetValue: 8, TargetUnit: "glasses", Category: "health", Active: true},
		{UserID: userID, Name: "Exercise", Description: "Any workout counts", Icon: "dumbbell", TargetValue: 30, TargetUnit: "minutes", Category: "fitness", Active: true},
		{UserID: userID, Name: "Walk", Description: "Get your steps in", Icon: "footprints", TargetValue: 10000, TargetUnit: "steps", Category: "fitness", Active: true},
		{UserID: userID, Name: "Sleep", Description: "A full night's rest", Icon: "moon", TargetValue: 8, TargetUnit: "hours", Category: "health", Active: true},
		{UserID: userID, Name: "Read", Description: "Read something, anything", Icon: "book", TargetValue: 20, TargetUnit: "minutes", Category: "mindfulness", Active: true},
		{UserID: userID, Name: "Meditate", Description: "A moment of calm", Icon: "lotus", TargetValue: 10, TargetUnit: "minutes", Category: "mindfulness", Active: true},
		{UserID: userID, Name: "Eat Healthy", Description: "Balanced meals today", Icon: "salad", TargetValue: 3, TargetUnit: "meals", Category: "nutrition", Active: true},
	}
}
