//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
)

func (s *APITestSuite) TestHealth() {
	resp, body := s.getJSON("/health")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", body["status"])
}

func (s *APITestSuite) TestPullRequestLifecycle() {
	s.addTeam("backend",
		member("u1", "alice", true),
		member("u2", "bob", true),
		member("u3", "carol", true),
	)

	// Create assigns two reviewers from the author's team.
	resp, body := s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-1",
		"pull_request_name": "Add search endpoint",
		"author_id":         "u1",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	pr := body["pr"].(map[string]any)
	s.Equal("pr-1", pr["pull_request_id"])
	s.Equal("OPEN", pr["status"])
	reviewers := pr["assigned_reviewers"].([]any)
	s.Require().Len(reviewers, 2)
	s.NotContains(reviewers, "u1")

	// Each reviewer sees the PR in their review queue.
	for _, r := range reviewers {
		resp, body := s.getJSON("/users/getReview?user_id=" + r.(string))
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		prs := body["pull_requests"].([]any)
		s.Require().Len(prs, 1)
	}

	// Merge is idempotent and keeps the original timestamp.
	resp, body = s.postJSON("/pullRequest/merge", map[string]any{"pull_request_id": "pr-1"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	first := body["pr"].(map[string]any)
	s.Equal("MERGED", first["status"])
	s.NotEmpty(first["mergedAt"])

	resp, body = s.postJSON("/pullRequest/merge", map[string]any{"pull_request_id": "pr-1"})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	second := body["pr"].(map[string]any)
	s.Equal(first["mergedAt"], second["mergedAt"])

	// A merged PR refuses reassignment.
	resp, body = s.postJSON("/pullRequest/reassign", map[string]any{
		"pull_request_id": "pr-1",
		"old_user_id":     reviewers[0],
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("PR_MERGED", s.errorCode(body))
}

func (s *APITestSuite) TestReassignReplacesReviewer() {
	s.addTeam("backend",
		member("u1", "alice", true),
		member("u2", "bob", true),
		member("u3", "carol", true),
		member("u4", "dave", true),
	)

	resp, body := s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-1",
		"pull_request_name": "Refactor storage",
		"author_id":         "u1",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	reviewers := body["pr"].(map[string]any)["assigned_reviewers"].([]any)
	s.Require().Len(reviewers, 2)
	old := reviewers[0].(string)

	resp, body = s.postJSON("/pullRequest/reassign", map[string]any{
		"pull_request_id": "pr-1",
		"old_user_id":     old,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	replacedBy := body["replaced_by"].(string)
	s.NotEqual(old, replacedBy)
	s.NotEqual("u1", replacedBy)

	updated := body["pr"].(map[string]any)["assigned_reviewers"].([]any)
	s.Len(updated, 2)
	s.NotContains(updated, old)
	s.Contains(updated, replacedBy)
}

func (s *APITestSuite) TestErrorCodes() {
	s.addTeam("backend", member("u1", "alice", true), member("u2", "bob", true))

	resp, body := s.postJSON("/team/add", map[string]any{
		"team_name": "backend", "members": []map[string]any{},
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("TEAM_EXISTS", s.errorCode(body))

	resp, body = s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-1",
		"pull_request_name": "First",
		"author_id":         "u1",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, body = s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-1",
		"pull_request_name": "Second",
		"author_id":         "u2",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("PR_EXISTS", s.errorCode(body))

	resp, body = s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-2",
		"pull_request_name": "Ghost",
		"author_id":         "nobody",
	})
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NOT_FOUND", s.errorCode(body))

	resp, body = s.postJSON("/pullRequest/merge", map[string]any{"pull_request_id": "missing"})
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NOT_FOUND", s.errorCode(body))

	resp, body = s.postJSON("/pullRequest/reassign", map[string]any{
		"pull_request_id": "pr-1",
		"old_user_id":     "u1",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("NOT_ASSIGNED", s.errorCode(body))
}

func (s *APITestSuite) TestNoCandidateOnReassign() {
	s.addTeam("duo", member("u1", "alice", true), member("u2", "bob", true))

	resp, body := s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-1",
		"pull_request_name": "Pairing",
		"author_id":         "u1",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	reviewers := body["pr"].(map[string]any)["assigned_reviewers"].([]any)
	s.Require().Len(reviewers, 1)

	resp, body = s.postJSON("/pullRequest/reassign", map[string]any{
		"pull_request_id": "pr-1",
		"old_user_id":     "u2",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("NO_CANDIDATE", s.errorCode(body))
}

func (s *APITestSuite) TestDeactivatedUserExcluded() {
	s.addTeam("backend",
		member("u1", "alice", true),
		member("u2", "bob", true),
		member("u3", "carol", true),
	)

	resp, _ := s.postJSON("/users/setIsActive", map[string]any{
		"user_id": "u2", "is_active": false,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	for i := 0; i < 5; i++ {
		resp, body := s.postJSON("/pullRequest/create", map[string]any{
			"pull_request_id":   fmt.Sprintf("pr-%d", i),
			"pull_request_name": "Change",
			"author_id":         "u1",
		})
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
		reviewers := body["pr"].(map[string]any)["assigned_reviewers"].([]any)
		s.NotContains(reviewers, "u2")
	}
}

func (s *APITestSuite) TestStatistics() {
	s.addTeam("backend",
		member("u1", "alice", true),
		member("u2", "bob", true),
		member("u3", "carol", true),
	)

	resp, _ := s.postJSON("/pullRequest/create", map[string]any{
		"pull_request_id":   "pr-1",
		"pull_request_name": "Feature",
		"author_id":         "u1",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp, body := s.getJSON("/statistics/reviewers")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.EqualValues(3, body["total"])

	resp, body = s.getJSON("/statistics/pullrequests")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	stats := body["statistics"].(map[string]any)
	s.EqualValues(1, stats["total_prs"])
	s.EqualValues(1, stats["open_prs"])
}
