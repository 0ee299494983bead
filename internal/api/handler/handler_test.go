package handler

import (
	"Hustings/internal/api/dto"
	"Hustings/internal/pkg/directus"
	"Hustings/internal/service"
	"Hustings/internal/service/mocks"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newRouter(svc service.EngagementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	candidate := NewCandidateHandler(svc)
	admin := NewAdminHandler(svc)
	hook := NewHookHandler(svc)
	r.GET("/top", candidate.GetTopCandidates)
	r.GET("/panel", candidate.GetPanel)
	r.GET("/engagement", admin.GetEngagement)
	r.POST("/refresh", admin.RefreshEngagement)
	r.POST("/hook", hook.EngagementChanged)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var cmsDown = fmt.Errorf("%w: %w", service.ErrCMSUnavailable, &directus.APIError{Status: 503})

// TestGetTopCandidates tests the public leaderboard endpoint
func TestGetTopCandidates(t *testing.T) {
	t.Run("raw array with camelCase fields", func(t *testing.T) {
		svc := &mocks.MockEngagementService{
			GetTopCandidatesFunc: func(ctx context.Context) ([]*dto.TopCandidateDTO, error) {
				return []*dto.TopCandidateDTO{{
					ID:              "a",
					Name:            strPtr("Ada"),
					Position:        strPtr("President"),
					TotalScore:      34,
					ProfileVotes:    10,
					ProfileComments: 0,
				}}, nil
			},
		}

		w := do(newRouter(svc), http.MethodGet, "/top", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"id": "a", "name": "Ada", "image": null, "department": null, "position": "President",
			"totalScore": 34, "profileComments": 0, "profileVotes": 10
		}]`, w.Body.String())
	})

	t.Run("empty list is an empty array", func(t *testing.T) {
		svc := &mocks.MockEngagementService{
			GetTopCandidatesFunc: func(ctx context.Context) ([]*dto.TopCandidateDTO, error) {
				return []*dto.TopCandidateDTO{}, nil
			},
		}

		w := do(newRouter(svc), http.MethodGet, "/top", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("cms failure is a 500 with details", func(t *testing.T) {
		svc := &mocks.MockEngagementService{
			GetTopCandidatesFunc: func(ctx context.Context) ([]*dto.TopCandidateDTO, error) {
				return nil, cmsDown
			},
		}

		w := do(newRouter(svc), http.MethodGet, "/top", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, service.ErrCMSUnavailable.Error(), body.Error)
		assert.Equal(t, "directus responded 503", body.Details)
	})
}

// TestGetPanel tests the public panel endpoint
func TestGetPanel(t *testing.T) {
	t.Run("full breakdown", func(t *testing.T) {
		svc := &mocks.MockEngagementService{
			GetPanelFunc: func(ctx context.Context) ([]*dto.PanelMemberDTO, error) {
				return []*dto.PanelMemberDTO{
					{ID: "a", Position: "President", TotalScore: 34, ProfileVotes: 10, BlogReactions: 2, BlogComments: 1},
					{ID: "c", Position: "Secretary", TotalScore: 7.5, ProfileVotes: 1, BlogReactions: 1, BlogComments: 1, ProfileComments: 1},
				}, nil
			},
		}

		w := do(newRouter(svc), http.MethodGet, "/panel", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "President", body[0]["position"])
		assert.Equal(t, 7.5, body[1]["totalScore"])
		assert.Equal(t, 1.0, body[1]["blogComments"])
		assert.Equal(t, 1.0, body[1]["profileComments"])
	})

	t.Run("malformed cms data is a 500", func(t *testing.T) {
		svc := &mocks.MockEngagementService{
			GetPanelFunc: func(ctx context.Context) ([]*dto.PanelMemberDTO, error) {
				return nil, fmt.Errorf("%w: profile[3]: field [CandidateProfile.ID] failed rule [required]", service.ErrCMSMalformed)
			},
		}

		w := do(newRouter(svc), http.MethodGet, "/panel", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "profile[3]")
	})
}

// TestAdminEndpoints tests the admin breakdown and refresh handlers
func TestAdminEndpoints(t *testing.T) {
	svc := &mocks.MockEngagementService{
		GetEngagementFunc: func(ctx context.Context) ([]*dto.CandidateEngagementDTO, error) {
			return []*dto.CandidateEngagementDTO{{ID: "d", TotalScore: 9, ProfileVotes: 3}}, nil
		},
		RefreshFunc: func(ctx context.Context) (*dto.EngagementRefreshDTO, error) {
			return &dto.EngagementRefreshDTO{Candidates: 4, Cached: true}, nil
		},
	}
	r := newRouter(svc)

	t.Run("engagement", func(t *testing.T) {
		w := do(r, http.MethodGet, "/engagement", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusOK, body.Code)
		assert.Len(t, body.Data, 1)
	})

	t.Run("refresh", func(t *testing.T) {
		w := do(r, http.MethodPost, "/refresh", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"candidates":4`)
		assert.Contains(t, w.Body.String(), `"cached":true`)
	})
}

// TestEngagementChanged tests the CMS webhook handler
func TestEngagementChanged(t *testing.T) {
	invalidated := 0
	svc := &mocks.MockEngagementService{
		InvalidateFunc: func(ctx context.Context) error {
			invalidated++
			return nil
		},
	}
	r := newRouter(svc)

	t.Run("valid event invalidates", func(t *testing.T) {
		w := do(r, http.MethodPost, "/hook", `{"event":"items.create","collection":"profile_votes","keys":[12]}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, invalidated)
	})

	t.Run("unknown event", func(t *testing.T) {
		w := do(r, http.MethodPost, "/hook", `{"event":"auth.login","collection":"directus_users"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Event")
		assert.Equal(t, 1, invalidated)
	})

	t.Run("missing collection", func(t *testing.T) {
		w := do(r, http.MethodPost, "/hook", `{"event":"items.update"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := do(r, http.MethodPost, "/hook", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalidate failure", func(t *testing.T) {
		failing := &mocks.MockEngagementService{
			InvalidateFunc: func(ctx context.Context) error { return service.UnExpectedError },
		}

		w := do(newRouter(failing), http.MethodPost, "/hook", `{"event":"items.delete","collection":"comments"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
