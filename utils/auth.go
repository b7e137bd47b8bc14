package utils

import "github.com/bwmarrin/discordgo"

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the invoking member carries the Administrator
// permission in the guild.
func IsAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// IsDeveloper reports whether the invoking user is one of the configured
// developer accounts.
func IsDeveloper(i *discordgo.InteractionCreate, developerUserIDs []string) bool {
	if i.Member == nil || i.Member.User == nil {
		return false
	}
	return contains(developerUserIDs, i.Member.User.ID)
}
