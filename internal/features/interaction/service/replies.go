package service

import (
	"fmt"
	"strings"

	citizenModels "police-bot-backend/internal/features/citizen/models"
	"police-bot-backend/internal/features/interaction/models"
)

const (
	msgUnknownCommand          = "❌ Unknown command"
	msgFillRequiredFields      = "❌ Fill in all required fields"
	msgUnknownUser             = "❌ Could not determine the user"
	msgDatabaseUnavailable     = "❌ Database unavailable"
	msgInsufficientPermissions = "❌ Insufficient permissions. This command is for server administrators only."
	msgSpecifyUser             = "❌ Specify a user"
	msgCreationInProgress      = "❌ Character creation is already in progress, try again in a moment"

	prefixCreateError = "Character creation error"
	prefixSyncError   = "Sync error"
	prefixViewError   = "Data retrieval error"

	statusWanted      = "🚨 WANTED"
	statusLawAbiding  = "✅ Law-abiding"
	valueNotSpecified = "Not specified"
)

func errorReply(prefix, message string) string {
	return fmt.Sprintf("❌ %s: %s", prefix, message)
}

func existingCharacterReply(c *citizenModels.Citizen) string {
	return fmt.Sprintf("❌ You already have a character (ID: %s)\nUse /%s to view it",
		c.CitizenID, models.CommandViewCharacter)
}

func characterCreatedReply(c *citizenModels.Citizen) string {
	return fmt.Sprintf("✅ **Character created!**\n\n"+
		"📋 ID card: `%s`\n"+
		"👤 Full name: %s\n"+
		"📅 Date of birth: %s\n\n"+
		"Your character is now available in the police database",
		c.CitizenID, c.FullName(), c.DateOfBirth)
}

func noCharacterReply() string {
	return fmt.Sprintf("❌ You have no character\n\nCreate one with /%s", models.CommandCreateCharacter)
}

func roleUpdatedReply(role string) string {
	return fmt.Sprintf("✅ Role updated to **%s**", role)
}

func userNotFoundReply(discordUserID string) string {
	return fmt.Sprintf("❌ User <@%s> not found in the database.\n"+
		"Ask them to log in via the web interface first.", discordUserID)
}

func orNotSpecified(v string) string {
	if v == "" {
		return valueNotSpecified
	}
	return v
}

func characterProfileReply(p *citizenModels.CitizenProfile) string {
	status := statusLawAbiding
	if p.IsWanted() {
		status = statusWanted
	}

	var b strings.Builder
	b.WriteString("**📋 Your character**\n\n")
	fmt.Fprintf(&b, "🆔 ID card: `%s`\n", p.CitizenID)
	fmt.Fprintf(&b, "👤 Full name: **%s**\n", p.FullName())
	fmt.Fprintf(&b, "📅 Date of birth: %s\n", p.DateOfBirth)
	fmt.Fprintf(&b, "📍 Address: %s\n", orNotSpecified(p.Address))
	fmt.Fprintf(&b, "📱 Phone: %s\n\n", orNotSpecified(p.Phone))
	fmt.Fprintf(&b, "**Status:** %s\n\n", status)
	b.WriteString("📊 **Statistics:**\n")
	fmt.Fprintf(&b, "🚔 Crimes: %d\n", p.CrimesCount)
	fmt.Fprintf(&b, "💰 Fines: %d\n", p.FinesCount)

	if p.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Notes: %s", p.Notes)
	}

	return b.String()
}
