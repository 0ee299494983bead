package repository

import (
	"Hustings/internal/api/config"
	"Hustings/internal/model"
	"Hustings/internal/pkg/directus"
	"Hustings/internal/pkg/util"
	"context"
	"errors"
	"fmt"
)

// ErrMalformedRecord CMS 返回的数据结构不符合预期
var ErrMalformedRecord = errors.New("malformed cms record")

// candidateProfileFields 聚合所需的嵌套字段，一次请求取全
var candidateProfileFields = []string{
	"id",
	"name",
	"image",
	"department",
	"position.id",
	"position.name",
	"profile_votes.id",
	"comments.id",
	"blogs.id",
	"blogs.reactions.id",
	"blogs.comments.id",
}

// candidateProfileDeep 取消嵌套关联的默认条数上限，计数要求完整列表
var candidateProfileDeep = map[string]any{
	"profile_votes": map[string]any{"_limit": -1},
	"comments":      map[string]any{"_limit": -1},
	"blogs": map[string]any{
		"_limit":    -1,
		"reactions": map[string]any{"_limit": -1},
		"comments":  map[string]any{"_limit": -1},
	},
}

// ItemsReader CMS 集合读取
type ItemsReader interface {
	Items(ctx context.Context, collection string, query directus.Query) ([]byte, error)
}

type CandidateRepo interface {
	ListCandidateProfiles(ctx context.Context) ([]*model.CandidateProfile, error)
}

type candidateRepoImpl struct {
	cms            ItemsReader
	collection     string
	candidateField string
}

func NewCandidateRepo(cms ItemsReader, cfg config.DirectusConfig) CandidateRepo {
	return &candidateRepoImpl{
		cms:            cms,
		collection:     cfg.ProfilesCollection,
		candidateField: cfg.CandidateField,
	}
}

func (s *candidateRepoImpl) ListCandidateProfiles(ctx context.Context) ([]*model.CandidateProfile, error) {
	query := directus.Query{
		Fields: candidateProfileFields,
		Sort:   []string{"id"},
		Deep:   candidateProfileDeep,
	}
	if s.candidateField != "" {
		query.Filter = map[string]any{
			s.candidateField: map[string]any{"_eq": true},
		}
	}

	data, err := s.cms.Items(ctx, s.collection, query)
	if err != nil {
		return nil, err
	}

	profiles, err := model.DecodeCandidateProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	for i, p := range profiles {
		if err = util.ValidateDTO(p); err != nil {
			return nil, fmt.Errorf("%w: profile[%d]: %v", ErrMalformedRecord, i, err)
		}
	}
	return profiles, nil
}
