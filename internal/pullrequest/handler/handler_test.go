package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/model"
)

type stubService struct {
	createFn   func(ctx context.Context, req *model.CreateRequest) (*model.Response, error)
	mergeFn    func(ctx context.Context, req *model.MergeRequest) (*model.Response, error)
	reassignFn func(ctx context.Context, req *model.ReassignRequest) (*model.ReassignResponse, error)
}

func (s *stubService) Create(ctx context.Context, req *model.CreateRequest) (*model.Response, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) Merge(ctx context.Context, req *model.MergeRequest) (*model.Response, error) {
	return s.mergeFn(ctx, req)
}

func (s *stubService) Reassign(ctx context.Context, req *model.ReassignRequest) (*model.ReassignResponse, error) {
	return s.reassignFn(ctx, req)
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())
	r := gin.New()
	r.POST("/pullRequest/create", h.Create)
	r.POST("/pullRequest/merge", h.Merge)
	r.POST("/pullRequest/reassign", h.Reassign)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHandler_Create(t *testing.T) {
	t.Run("201 with the PR envelope", func(t *testing.T) {
		svc := &stubService{
			createFn: func(_ context.Context, req *model.CreateRequest) (*model.Response, error) {
				return &model.Response{
					PullRequestID:     req.PullRequestID,
					PullRequestName:   req.PullRequestName,
					AuthorID:          req.AuthorID,
					Status:            model.StatusOpen,
					AssignedReviewers: []string{"u2", "u3"},
				}, nil
			},
		}
		r := setupRouter(svc)

		w := doPost(t, r, "/pullRequest/create",
			`{"pull_request_id":"pr-1","pull_request_name":"Feature","author_id":"u1"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		var body struct {
			PR model.Response `json:"pr"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "pr-1", body.PR.PullRequestID)
		assert.Equal(t, []string{"u2", "u3"}, body.PR.AssignedReviewers)
	})

	t.Run("409 PR_EXISTS on duplicate id", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, *model.CreateRequest) (*model.Response, error) {
				return nil, model.ErrPullRequestExists
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/create",
			`{"pull_request_id":"pr-1","pull_request_name":"Feature","author_id":"u1"}`)

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "PR_EXISTS", errorCode(t, w))
	})

	t.Run("404 NOT_FOUND on unknown author", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, *model.CreateRequest) (*model.Response, error) {
				return nil, model.ErrAuthorNotFound
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/create",
			`{"pull_request_id":"pr-1","pull_request_name":"Feature","author_id":"ghost"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, w))
	})

	t.Run("400 INVALID_REQUEST on malformed body", func(t *testing.T) {
		svc := &stubService{}
		w := doPost(t, setupRouter(svc), "/pullRequest/create", `{"pull_request_id":""}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("400 INVALID_REQUEST on oversized field", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, *model.CreateRequest) (*model.Response, error) {
				return nil, model.ErrInvalidPullRequestName
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/create",
			`{"pull_request_id":"pr-1","pull_request_name":"x","author_id":"u1"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("500 INTERNAL_ERROR on unexpected failure", func(t *testing.T) {
		svc := &stubService{
			createFn: func(context.Context, *model.CreateRequest) (*model.Response, error) {
				return nil, assert.AnError
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/create",
			`{"pull_request_id":"pr-1","pull_request_name":"Feature","author_id":"u1"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w))
	})
}

func TestHandler_Merge(t *testing.T) {
	t.Run("200 with the merged PR", func(t *testing.T) {
		svc := &stubService{
			mergeFn: func(_ context.Context, req *model.MergeRequest) (*model.Response, error) {
				return &model.Response{
					PullRequestID:     req.PullRequestID,
					Status:            model.StatusMerged,
					AssignedReviewers: []string{"u2"},
					MergedAt:          "2025-01-02T03:04:05Z",
				}, nil
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/merge", `{"pull_request_id":"pr-1"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			PR model.Response `json:"pr"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, model.StatusMerged, body.PR.Status)
		assert.NotEmpty(t, body.PR.MergedAt)
	})

	t.Run("404 NOT_FOUND on unknown PR", func(t *testing.T) {
		svc := &stubService{
			mergeFn: func(context.Context, *model.MergeRequest) (*model.Response, error) {
				return nil, model.ErrPullRequestNotFound
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/merge", `{"pull_request_id":"missing"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, w))
	})
}

func TestHandler_Reassign(t *testing.T) {
	t.Run("200 with the updated PR and replacement", func(t *testing.T) {
		svc := &stubService{
			reassignFn: func(_ context.Context, req *model.ReassignRequest) (*model.ReassignResponse, error) {
				return &model.ReassignResponse{
					PR: &model.Response{
						PullRequestID:     req.PullRequestID,
						Status:            model.StatusOpen,
						AssignedReviewers: []string{"u3", "u4"},
					},
					ReplacedBy: "u4",
				}, nil
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/reassign",
			`{"pull_request_id":"pr-1","old_user_id":"u2"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var body model.ReassignResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "u4", body.ReplacedBy)
		require.NotNil(t, body.PR)
		assert.Contains(t, body.PR.AssignedReviewers, "u4")
	})

	t.Run("conflict codes map one to one", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code string
		}{
			{"merged PR", model.ErrPullRequestMerged, "PR_MERGED"},
			{"not assigned", model.ErrNotAssigned, "NOT_ASSIGNED"},
			{"no candidate", model.ErrNoCandidate, "NO_CANDIDATE"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc := &stubService{
					reassignFn: func(context.Context, *model.ReassignRequest) (*model.ReassignResponse, error) {
						return nil, tc.err
					},
				}
				w := doPost(t, setupRouter(svc), "/pullRequest/reassign",
					`{"pull_request_id":"pr-1","old_user_id":"u2"}`)

				require.Equal(t, http.StatusConflict, w.Code)
				assert.Equal(t, tc.code, errorCode(t, w))
			})
		}
	})

	t.Run("404 NOT_FOUND on unknown PR", func(t *testing.T) {
		svc := &stubService{
			reassignFn: func(context.Context, *model.ReassignRequest) (*model.ReassignResponse, error) {
				return nil, model.ErrPullRequestNotFound
			},
		}
		w := doPost(t, setupRouter(svc), "/pullRequest/reassign",
			`{"pull_request_id":"missing","old_user_id":"u2"}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, w))
	})
}
