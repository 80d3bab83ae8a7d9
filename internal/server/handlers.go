package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vietddude/audition/internal/core/domain"
	"github.com/vietddude/audition/internal/core/query"
	"github.com/vietddude/audition/internal/infra/resilience"
	"github.com/vietddude/audition/internal/infra/upstream"
)

// Handler binds HTTP requests onto gateway operations and renders the
// results. All failure paths go through the problem writer.
type Handler struct {
	gateway  *upstream.Gateway
	breaker  *resilience.Breaker
	problems *ProblemWriter
	log      *slog.Logger
}

// GetPosts handles GET /api/v1/posts.
func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	criteria, derr := bindCriteria(r.URL.Query())
	if derr != nil {
		h.problems.Write(w, derr)
		return
	}

	posts, derr := h.gateway.ListPosts(r.Context(), criteria)
	if derr != nil {
		h.problems.Write(w, derr)
		return
	}
	h.respondJSON(w, posts)
}

// GetPostByID handles GET /api/v1/posts/{id}. The JSON:API style
// ?include=comments embeds the post's comments in one round trip.
func (h *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, derr := bindPositiveID(chi.URLParam(r, "id"))
	if derr != nil {
		h.problems.Write(w, derr)
		return
	}

	includeComments := strings.EqualFold(r.URL.Query().Get("include"), "comments")

	var post *domain.Post
	if includeComments {
		post, derr = h.gateway.GetPostWithComments(r.Context(), id)
	} else {
		post, derr = h.gateway.GetPost(r.Context(), id)
	}
	if derr != nil {
		h.problems.Write(w, derr)
		return
	}
	h.respondJSON(w, post)
}

// GetCommentsForPost handles GET /api/v1/posts/{postId}/comments.
func (h *Handler) GetCommentsForPost(w http.ResponseWriter, r *http.Request) {
	postID, derr := bindPositiveID(chi.URLParam(r, "postId"))
	if derr != nil {
		h.problems.Write(w, derr)
		return
	}

	comments, gerr := h.gateway.GetComments(r.Context(), postID)
	if gerr != nil {
		h.problems.Write(w, gerr)
		return
	}
	h.respondJSON(w, comments)
}

// GetComments handles GET /api/v1/comments?postId=N, the query-parameter
// flavor of the comments lookup.
func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("postId")
	if raw == "" {
		h.problems.Write(w, domain.BadRequest("postId: query parameter is required"))
		return
	}
	postID, derr := bindPositiveID(raw)
	if derr != nil {
		h.problems.Write(w, derr)
		return
	}

	comments, gerr := h.gateway.GetComments(r.Context(), postID)
	if gerr != nil {
		h.problems.Write(w, gerr)
		return
	}
	h.respondJSON(w, comments)
}

// Health handles GET /health. The service is alive either way; the
// breaker state tells operators whether the upstream currently is.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.breaker.State() != resilience.StateClosed {
		status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":          status,
		"circuit_breaker": h.breaker.State().String(),
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("failed to write response", "error", err)
	}
}

// bindCriteria parses search criteria from query parameters. Type
// mismatches and cross-field violations are all collected so the caller
// sees every problem in one response.
func bindCriteria(q url.Values) (domain.SearchCriteria, *domain.Error) {
	var c domain.SearchCriteria
	var problems []string

	bindInt := func(name string) *int {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, typeMismatch(raw, name))
			return nil
		}
		return &n
	}

	if raw := q.Get("userId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			problems = append(problems, typeMismatch(raw, "userId"))
		} else {
			c.UserID = &n
		}
	}
	c.TitleContains = q.Get("titleContains")
	c.Page = bindInt("page")
	c.Size = bindInt("size")
	c.Sort = q.Get("sort")
	c.Order = q.Get("order")

	if len(problems) > 0 {
		return c, domain.BadRequest(strings.Join(problems, "; "))
	}
	if violations := query.Validate(c); len(violations) > 0 {
		return c, domain.BadRequest(query.JoinViolations(violations))
	}
	return c, nil
}

// bindPositiveID parses a path or query id that must be a positive integer.
func bindPositiveID(raw string) (int64, *domain.Error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.BadRequest(typeMismatch(raw, "id"))
	}
	if id < 1 {
		return 0, domain.BadRequest("Post id must be a positive integer")
	}
	return id, nil
}

func typeMismatch(value, field string) string {
	return fmt.Sprintf("'%s' is not a valid value for '%s'. Please provide a valid number.", value, field)
}
