package info

import (
	"encoding/json"
	"testing"

	"ffinfo-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionByTitle(t *testing.T, sections []Section, title string) Section {
	for _, s := range sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("section %q not found", title)
	return Section{}
}

func lineValue(t *testing.T, s Section, label string) string {
	for _, l := range s.Lines {
		if l.Label == label {
			return l.Value
		}
	}
	t.Fatalf("line %q not found in section %q", label, s.Title)
	return ""
}

func hasLine(s Section, label string) bool {
	for _, l := range s.Lines {
		if l.Label == label {
			return true
		}
	}
	return false
}

func TestFormatEmptyDocument(t *testing.T) {
	sections := FormatPlayer(&model.PlayerDocument{}, "123456789")

	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"ACCOUNT BASIC INFO", "ACCOUNT ACTIVITY", "ACCOUNT OVERVIEW"}, titles,
		"pet and guild sections are omitted when their sub-documents are absent")

	basic := sectionByTitle(t, sections, "ACCOUNT BASIC INFO")
	assert.Equal(t, Placeholder, lineValue(t, basic, "Name"))
	assert.Equal(t, "`123456789`", lineValue(t, basic, "UID"))
	assert.Equal(t, Placeholder+" (Exp: ?)", lineValue(t, basic, "Level"))
	assert.Equal(t, Placeholder, lineValue(t, basic, "Honor Score"))
	assert.False(t, hasLine(basic, "Signature"), "signature line needs social info")

	activity := sectionByTitle(t, sections, "ACCOUNT ACTIVITY")
	assert.Equal(t, Placeholder, lineValue(t, activity, "Created At"))
	assert.Equal(t, Placeholder, lineValue(t, activity, "Last Login"))
	assert.Equal(t, hiddenRank, lineValue(t, activity, "BR Rank"), "absent show flag hides the rank")

	overview := sectionByTitle(t, sections, "ACCOUNT OVERVIEW")
	assert.Equal(t, "Default", lineValue(t, overview, "Pin ID"))
	assert.Equal(t, Placeholder, lineValue(t, overview, "Equipped Skills"))
}

func fullDocument(t *testing.T) *model.PlayerDocument {
	raw := `{
		"basicInfo": {
			"region": "SAC", "nickname": "ThugLife", "level": 62, "exp": 1234567,
			"liked": 9001, "badgeCnt": 7, "bannerId": 901000001,
			"releaseVersion": "OB46", "rankingPoints": 3100, "csRankingPoints": 45,
			"showBrRank": true, "showCsRank": false,
			"createAt": "0", "lastLoginAt": 1700000000
		},
		"captainBasicInfo": {
			"accountId": "555666777", "nickname": "BossMan", "level": 70, "exp": 999,
			"title": 904090005, "badgeCnt": 12, "pinId": 910090001,
			"rankingPoints": 3300, "csRankingPoints": 60,
			"showBrRank": true, "showCsRank": true, "lastLoginAt": 1700000001
		},
		"clanBasicInfo": {
			"clanId": "3001234567", "clanName": "EliteSquad", "clanLevel": 5,
			"memberNum": 42, "capacity": 50
		},
		"creditScoreInfo": {"creditScore": 100},
		"petInfo": {"isSelected": true, "name": "Rockie", "exp": 3000, "level": 6},
		"profileInfo": {"avatarId": 102000007, "equipedSkills": [16, 706, 1206]},
		"socialInfo": {"signature": "gg wp"}
	}`
	var doc model.PlayerDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestFormatFullDocument(t *testing.T) {
	sections := FormatPlayer(fullDocument(t), "123456789")
	require.Len(t, sections, 5)

	basic := sectionByTitle(t, sections, "ACCOUNT BASIC INFO")
	assert.Equal(t, "ThugLife", lineValue(t, basic, "Name"))
	assert.Equal(t, "62 (Exp: 1234567)", lineValue(t, basic, "Level"))
	assert.Equal(t, "SAC", lineValue(t, basic, "Region"))
	assert.Equal(t, "9001", lineValue(t, basic, "Likes"))
	assert.Equal(t, "100", lineValue(t, basic, "Honor Score"))
	assert.Equal(t, "gg wp", lineValue(t, basic, "Signature"))

	activity := sectionByTitle(t, sections, "ACCOUNT ACTIVITY")
	assert.Equal(t, "OB46", lineValue(t, activity, "Most Recent OB"))
	assert.Equal(t, "3100", lineValue(t, activity, "BR Rank"), "shown rank keeps its value")
	assert.Equal(t, hiddenRank, lineValue(t, activity, "CS Rank"), "hidden rank never leaks the number")
	assert.Equal(t, "1970-01-01 00:00:00", lineValue(t, activity, "Created At"))
	assert.Equal(t, "2023-11-14 22:13:20", lineValue(t, activity, "Last Login"))

	overview := sectionByTitle(t, sections, "ACCOUNT OVERVIEW")
	assert.Equal(t, "102000007", lineValue(t, overview, "Avatar ID"))
	assert.Equal(t, "901000001", lineValue(t, overview, "Banner ID"))
	assert.Equal(t, "910090001", lineValue(t, overview, "Pin ID"))
	assert.Equal(t, "16, 706, 1206", lineValue(t, overview, "Equipped Skills"))

	pet := sectionByTitle(t, sections, "PET DETAILS")
	assert.Equal(t, "Yes", lineValue(t, pet, "Equipped?"))
	assert.Equal(t, "Rockie", lineValue(t, pet, "Pet Name"))

	guild := sectionByTitle(t, sections, "GUILD INFO")
	assert.Equal(t, "EliteSquad", lineValue(t, guild, "Guild Name"))
	assert.Equal(t, "42/50", lineValue(t, guild, "Live Members"))
	assert.Equal(t, "BossMan", lineValue(t, guild, "Leader Name"))
	assert.Equal(t, "`555666777`", lineValue(t, guild, "Leader UID"))
	assert.Equal(t, "3300", lineValue(t, guild, "Leader BR Rank"))
}

func TestGuildSectionWithoutLeader(t *testing.T) {
	doc := fullDocument(t)
	doc.CaptainBasicInfo = nil

	sections := FormatPlayer(doc, "123456789")
	guild := sectionByTitle(t, sections, "GUILD INFO")
	assert.False(t, hasLine(guild, "Leader Name"), "leader block needs captain info")

	overview := sectionByTitle(t, sections, "ACCOUNT OVERVIEW")
	assert.Equal(t, "Default", lineValue(t, overview, "Pin ID"))
}

func TestEmptySubDocumentsAreOmitted(t *testing.T) {
	var doc model.PlayerDocument
	require.NoError(t, json.Unmarshal([]byte(`{"petInfo": {}, "clanBasicInfo": {}, "socialInfo": {}}`), &doc))

	sections := FormatPlayer(&doc, "123456789")
	for _, s := range sections {
		assert.NotEqual(t, "PET DETAILS", s.Title)
		assert.NotEqual(t, "GUILD INFO", s.Title)
	}
	assert.False(t, hasLine(sectionByTitle(t, sections, "ACCOUNT BASIC INFO"), "Signature"))
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"epoch zero", `0`, "1970-01-01 00:00:00"},
		{"numeric string", `"1600000000"`, "2020-09-13 12:26:40"},
		{"not found literal", `"Not found"`, Placeholder},
		{"negative", `-5`, Placeholder},
		{"overflow", `99999999999999999999`, Placeholder},
		{"past year 3000", `40000000000`, Placeholder},
		{"null", `null`, Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts model.UnixTime
			require.NoError(t, json.Unmarshal([]byte(tt.json), &ts))
			assert.Equal(t, tt.want, formatTimestamp(ts))
		})
	}
}

func TestValueTreatsAPIPlaceholderAsMissing(t *testing.T) {
	f := model.FlexString{Value: "Not found", Valid: true}
	assert.Equal(t, Placeholder, value(f))
	assert.Equal(t, "?", valueOr(f, "?"))
}
