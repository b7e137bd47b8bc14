package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString is a scalar field of the player document. The upstream API is
// not consistent about types: the same field can arrive as a string, a
// number, a boolean or null depending on the account. Whatever arrives is
// kept as its text form; anything unusable leaves the field unset.
type FlexString struct {
	Value string
	Valid bool
}

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		f.Value = s
		f.Valid = true
		return nil
	}
	// Numbers and booleans keep their literal text
	f.Value = string(data)
	f.Valid = true
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnixTime is an epoch-seconds field. The API sends it as a number or a
// numeric string, and sometimes as the literal "Not found". Only a value
// that parses as a non-negative integer marks the field valid.
type UnixTime struct {
	Sec   int64
	Valid bool
}

func (t *UnixTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		text = s
	}
	sec, err := strconv.ParseInt(text, 10, 64)
	if err != nil || sec < 0 {
		return nil
	}
	t.Sec = sec
	t.Valid = true
	return nil
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Sec)
}

// PlayerDocument is the stats endpoint response. Every sub-document is
// optional; a missing key decodes to a nil pointer.
type PlayerDocument struct {
	BasicInfo        *BasicInfo       `json:"basicInfo,omitempty"`
	CaptainBasicInfo *CaptainInfo     `json:"captainBasicInfo,omitempty"`
	ClanBasicInfo    *ClanInfo        `json:"clanBasicInfo,omitempty"`
	CreditScoreInfo  *CreditScoreInfo `json:"creditScoreInfo,omitempty"`
	PetInfo          *PetInfo         `json:"petInfo,omitempty"`
	ProfileInfo      *ProfileInfo     `json:"profileInfo,omitempty"`
	SocialInfo       *SocialInfo      `json:"socialInfo,omitempty"`
}

type BasicInfo struct {
	Region          FlexString `json:"region"`
	Nickname        FlexString `json:"nickname"`
	Level           FlexString `json:"level"`
	Exp             FlexString `json:"exp"`
	Liked           FlexString `json:"liked"`
	BadgeCnt        FlexString `json:"badgeCnt"`
	BannerID        FlexString `json:"bannerId"`
	ReleaseVersion  FlexString `json:"releaseVersion"`
	RankingPoints   FlexString `json:"rankingPoints"`
	CsRankingPoints FlexString `json:"csRankingPoints"`
	ShowBrRank      bool       `json:"showBrRank"`
	ShowCsRank      bool       `json:"showCsRank"`
	CreateAt        UnixTime   `json:"createAt"`
	LastLoginAt     UnixTime   `json:"lastLoginAt"`
}

type CaptainInfo struct {
	AccountID       FlexString `json:"accountId"`
	Nickname        FlexString `json:"nickname"`
	Level           FlexString `json:"level"`
	Exp             FlexString `json:"exp"`
	Title           FlexString `json:"title"`
	BadgeCnt        FlexString `json:"badgeCnt"`
	PinID           FlexString `json:"pinId"`
	RankingPoints   FlexString `json:"rankingPoints"`
	CsRankingPoints FlexString `json:"csRankingPoints"`
	ShowBrRank      bool       `json:"showBrRank"`
	ShowCsRank      bool       `json:"showCsRank"`
	LastLoginAt     UnixTime   `json:"lastLoginAt"`
}

func (c *CaptainInfo) Empty() bool {
	return c == nil || *c == (CaptainInfo{})
}

type ClanInfo struct {
	ClanID    FlexString `json:"clanId"`
	ClanName  FlexString `json:"clanName"`
	ClanLevel FlexString `json:"clanLevel"`
	MemberNum FlexString `json:"memberNum"`
	Capacity  FlexString `json:"capacity"`
}

func (c *ClanInfo) Empty() bool {
	return c == nil || *c == (ClanInfo{})
}

type CreditScoreInfo struct {
	CreditScore FlexString `json:"creditScore"`
}

type PetInfo struct {
	IsSelected bool       `json:"isSelected"`
	Name       FlexString `json:"name"`
	Exp        FlexString `json:"exp"`
	Level      FlexString `json:"level"`
}

func (p *PetInfo) Empty() bool {
	return p == nil || *p == (PetInfo{})
}

type ProfileInfo struct {
	AvatarID      FlexString    `json:"avatarId"`
	EquipedSkills []json.Number `json:"equipedSkills"`
}

type SocialInfo struct {
	Signature FlexString `json:"signature"`
}

func (s *SocialInfo) Empty() bool {
	return s == nil || !s.Signature.Valid
}
