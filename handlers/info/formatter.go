package info

import (
	"time"

	"ffinfo-bot/model"
)

// Placeholder replaces any field the API did not provide in a usable form.
const Placeholder = "Not found"

// hiddenRank replaces a rank value whose show flag is off. The number is
// never leaked into the rendered text.
const hiddenRank = "Hidden"

// Timestamps beyond the year 3000 are treated as garbage.
const maxEpochSeconds = 32503680000

type Line struct {
	Label string
	Value string
}

type Section struct {
	Title string
	Lines []Line
}

// FormatPlayer maps a player document into display sections. Every field of
// the document is optional; a missing one renders as the placeholder, and
// the pet, guild, leader and signature parts are left out entirely when
// their backing sub-document is absent.
func FormatPlayer(doc *model.PlayerDocument, uid string) []Section {
	basic := doc.BasicInfo
	if basic == nil {
		basic = &model.BasicInfo{}
	}
	profile := doc.ProfileInfo
	if profile == nil {
		profile = &model.ProfileInfo{}
	}

	sections := []Section{
		basicSection(basic, doc.CreditScoreInfo, doc.SocialInfo, uid),
		activitySection(basic),
		overviewSection(basic, profile, doc.CaptainBasicInfo),
	}
	if !doc.PetInfo.Empty() {
		sections = append(sections, petSection(doc.PetInfo))
	}
	if !doc.ClanBasicInfo.Empty() {
		sections = append(sections, guildSection(doc.ClanBasicInfo, doc.CaptainBasicInfo))
	}
	return sections
}

func basicSection(basic *model.BasicInfo, credit *model.CreditScoreInfo, social *model.SocialInfo, uid string) Section {
	honorScore := Placeholder
	if credit != nil {
		honorScore = value(credit.CreditScore)
	}

	lines := []Line{
		{"Name", value(basic.Nickname)},
		{"UID", "`" + uid + "`"},
		{"Level", value(basic.Level) + " (Exp: " + valueOr(basic.Exp, "?") + ")"},
		{"Region", value(basic.Region)},
		{"Likes", value(basic.Liked)},
		{"Honor Score", honorScore},
	}
	if !social.Empty() {
		lines = append(lines, Line{"Signature", value(social.Signature)})
	}
	return Section{Title: "ACCOUNT BASIC INFO", Lines: lines}
}

func activitySection(basic *model.BasicInfo) Section {
	return Section{Title: "ACCOUNT ACTIVITY", Lines: []Line{
		{"Most Recent OB", valueOr(basic.ReleaseVersion, "?")},
		{"Current BP Badges", value(basic.BadgeCnt)},
		{"BR Rank", rankValue(basic.RankingPoints, basic.ShowBrRank)},
		{"CS Rank", rankValue(basic.CsRankingPoints, basic.ShowCsRank)},
		{"Created At", formatTimestamp(basic.CreateAt)},
		{"Last Login", formatTimestamp(basic.LastLoginAt)},
	}}
}

func overviewSection(basic *model.BasicInfo, profile *model.ProfileInfo, captain *model.CaptainInfo) Section {
	pinID := "Default"
	if !captain.Empty() {
		pinID = valueOr(captain.PinID, "Default")
	}

	skills := Placeholder
	if len(profile.EquipedSkills) > 0 {
		skills = ""
		for index, skill := range profile.EquipedSkills {
			if index > 0 {
				skills += ", "
			}
			skills += skill.String()
		}
	}

	return Section{Title: "ACCOUNT OVERVIEW", Lines: []Line{
		{"Avatar ID", value(profile.AvatarID)},
		{"Banner ID", value(basic.BannerID)},
		{"Pin ID", pinID},
		{"Equipped Skills", skills},
	}}
}

func petSection(pet *model.PetInfo) Section {
	equipped := "No"
	if pet.IsSelected {
		equipped = "Yes"
	}
	return Section{Title: "PET DETAILS", Lines: []Line{
		{"Equipped?", equipped},
		{"Pet Name", value(pet.Name)},
		{"Pet Exp", value(pet.Exp)},
		{"Pet Level", value(pet.Level)},
	}}
}

func guildSection(clan *model.ClanInfo, captain *model.CaptainInfo) Section {
	lines := []Line{
		{"Guild Name", value(clan.ClanName)},
		{"Guild ID", "`" + value(clan.ClanID) + "`"},
		{"Guild Level", value(clan.ClanLevel)},
		{"Live Members", value(clan.MemberNum) + "/" + valueOr(clan.Capacity, "?")},
	}
	if !captain.Empty() {
		lines = append(lines,
			Line{"Leader Name", value(captain.Nickname)},
			Line{"Leader UID", "`" + value(captain.AccountID) + "`"},
			Line{"Leader Level", value(captain.Level) + " (Exp: " + valueOr(captain.Exp, "?") + ")"},
			Line{"Leader Last Login", formatTimestamp(captain.LastLoginAt)},
			Line{"Leader Title", value(captain.Title)},
			Line{"Leader BP Badges", valueOr(captain.BadgeCnt, "?")},
			Line{"Leader BR Rank", rankValue(captain.RankingPoints, captain.ShowBrRank)},
			Line{"Leader CS Rank", rankValue(captain.CsRankingPoints, captain.ShowCsRank)},
		)
	}
	return Section{Title: "GUILD INFO", Lines: lines}
}

// value renders a scalar field, falling back to the placeholder when the
// field is unset, empty, or the API already stuffed "Not found" into it.
func value(f model.FlexString) string {
	return valueOr(f, Placeholder)
}

func valueOr(f model.FlexString, fallback string) string {
	if !f.Valid || f.Value == "" || f.Value == Placeholder {
		return fallback
	}
	return f.Value
}

// rankValue applies the show flag: a hidden rank never exposes its number.
func rankValue(points model.FlexString, show bool) string {
	if !show {
		return hiddenRank
	}
	return valueOr(points, "?")
}

// formatTimestamp renders an epoch-seconds field as a UTC date-time, or the
// placeholder when the value never parsed or is out of range.
func formatTimestamp(t model.UnixTime) string {
	if !t.Valid || t.Sec > maxEpochSeconds {
		return Placeholder
	}
	return time.Unix(t.Sec, 0).UTC().Format("2006-01-02 15:04:05")
}
