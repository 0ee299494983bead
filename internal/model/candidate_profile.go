package model

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// EntityID Directus 主键，可能是数字自增也可能是 uuid，统一保存为字符串
type EntityID string

func (s *EntityID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = EntityID(str)
		return nil
	}
	if data[0] != '-' && (data[0] < '0' || data[0] > '9') {
		return fmt.Errorf("id must be a string or number, got %s", string(data))
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*s = EntityID(num.String())
	return nil
}

// Relation 关联列表中的一项，只参与计数，不关心内容
type Relation = json.RawMessage

// PositionRef 竞选职位，CMS 可能返回字符串或展开后的 {id, name}
type PositionRef struct {
	ID   EntityID `json:"id"`
	Name string   `json:"name"`
}

func (s *PositionRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = PositionRef{}
		return nil
	}
	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = PositionRef{Name: name}
		return nil
	case '{':
		var raw struct {
			ID   EntityID `json:"id"`
			Name *string  `json:"name"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*s = PositionRef{ID: raw.ID}
		if raw.Name != nil {
			s.Name = *raw.Name
		}
		return nil
	default:
		return fmt.Errorf("position must be a string or an object, got %s", string(data))
	}
}

// Blog 候选人发布的博客，只取互动关联
type Blog struct {
	ID        EntityID   `json:"id"`
	Reactions []Relation `json:"reactions"`
	Comments  []Relation `json:"comments"`
}

// CandidateProfile CMS 中的候选人 profile 记录
type CandidateProfile struct {
	ID           EntityID     `json:"id" validate:"required"`
	Name         *string      `json:"name"`
	Image        *string      `json:"image"`
	Department   *string      `json:"department"`
	Position     *PositionRef `json:"position"`
	ProfileVotes []Relation   `json:"profile_votes"`
	Comments     []Relation   `json:"comments"`
	Blogs        []*Blog      `json:"blogs"`
}

// PositionName 返回职位名，未关联职位或职位名为空白时 ok 为 false
func (s *CandidateProfile) PositionName() (string, bool) {
	if s.Position == nil {
		return "", false
	}
	if strings.TrimSpace(s.Position.Name) == "" {
		return "", false
	}
	return s.Position.Name, true
}

// DecodeCandidateProfiles 解析 CMS 返回的 profile 列表
// 关联字段为 null 视为空列表，类型不符直接报错；字段级校验由调用方完成
func DecodeCandidateProfiles(data []byte) ([]*CandidateProfile, error) {
	var profiles []*CandidateProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}
	out := make([]*CandidateProfile, 0, len(profiles))
	for i, p := range profiles {
		if p == nil {
			return nil, fmt.Errorf("profile[%d]: null record", i)
		}
		out = append(out, p)
	}
	return out, nil
}
