package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vietddude/audition/internal/core/domain"
	"github.com/vietddude/audition/internal/core/query"
	"github.com/vietddude/audition/internal/infra/resilience"
	"github.com/vietddude/audition/internal/metrics"
)

const serviceUnavailableDetail = "Service temporarily unavailable. Please try again later."

// Endpoints describes the upstream URL layout.
type Endpoints struct {
	BaseURL      string
	PostsPath    string
	CommentsPath string
}

// operation describes one upstream read: its metric name, the target URL,
// and whether an empty success body means the resource does not exist.
type operation struct {
	name          string
	url           string
	requireBody   bool
	missingDetail string
}

// Gateway is the resilient front to the upstream provider. Every public
// operation runs each attempt through circuit-breaker admission, the
// transport, and the failure classifier, retrying per policy, and
// returns either a decoded payload or a *domain.Error. No raw transport
// error ever crosses this boundary.
type Gateway struct {
	transport Transport
	retry     *resilience.RetryPolicy
	breaker   *resilience.Breaker
	endpoints Endpoints
	log       *slog.Logger
}

// NewGateway wires the gateway from its collaborators. The breaker is
// shared process-wide; one instance per upstream dependency.
func NewGateway(
	t Transport,
	retry *resilience.RetryPolicy,
	breaker *resilience.Breaker,
	endpoints Endpoints,
	log *slog.Logger,
) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	endpoints.BaseURL = strings.TrimRight(endpoints.BaseURL, "/")
	return &Gateway{
		transport: t,
		retry:     retry,
		breaker:   breaker,
		endpoints: endpoints,
		log:       log,
	}
}

// ListPosts fetches posts matching the (already validated) criteria.
func (g *Gateway) ListPosts(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Post, *domain.Error) {
	op := operation{
		name:          "list_posts",
		url:           g.postsURL(query.Encode(query.Translate(criteria))),
		missingDetail: "Cannot find posts",
	}

	body, derr := g.execute(ctx, op)
	if derr != nil {
		return nil, derr
	}

	posts := []domain.Post{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &posts); err != nil {
			return nil, g.decodeError(op, err)
		}
	}
	return posts, nil
}

// GetPost fetches a single post by id. An empty success body is a
// domain NotFound, not a success.
func (g *Gateway) GetPost(ctx context.Context, id int64) (*domain.Post, *domain.Error) {
	op := operation{
		name:          "get_post",
		url:           fmt.Sprintf("%s%s/%d", g.endpoints.BaseURL, g.endpoints.PostsPath, id),
		requireBody:   true,
		missingDetail: fmt.Sprintf("Cannot find a Post with id %d", id),
	}
	return g.getPost(ctx, op)
}

// GetPostWithComments fetches a post with its comments embedded.
func (g *Gateway) GetPostWithComments(ctx context.Context, id int64) (*domain.Post, *domain.Error) {
	op := operation{
		name:          "get_post_with_comments",
		url:           fmt.Sprintf("%s%s/%d?_embed=comments", g.endpoints.BaseURL, g.endpoints.PostsPath, id),
		requireBody:   true,
		missingDetail: fmt.Sprintf("Cannot find a Post with id %d", id),
	}
	return g.getPost(ctx, op)
}

// GetComments fetches all comments for a post.
func (g *Gateway) GetComments(ctx context.Context, postID int64) ([]domain.Comment, *domain.Error) {
	op := operation{
		name: "get_comments",
		url: fmt.Sprintf("%s%s/%d%s",
			g.endpoints.BaseURL, g.endpoints.PostsPath, postID, g.endpoints.CommentsPath),
		missingDetail: fmt.Sprintf("Cannot find comments for post with id %d", postID),
	}

	body, derr := g.execute(ctx, op)
	if derr != nil {
		return nil, derr
	}

	comments := []domain.Comment{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &comments); err != nil {
			return nil, g.decodeError(op, err)
		}
	}
	return comments, nil
}

func (g *Gateway) getPost(ctx context.Context, op operation) (*domain.Post, *domain.Error) {
	body, derr := g.execute(ctx, op)
	if derr != nil {
		return nil, derr
	}

	var post domain.Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, g.decodeError(op, err)
	}
	return &post, nil
}

// execute runs the breaker-gated retry loop for one logical operation.
// Attempts are sequential: at most one upstream call is in flight at a
// time, bounded by the retry policy's attempt budget.
func (g *Gateway) execute(ctx context.Context, op operation) ([]byte, *domain.Error) {
	attempts := g.retry.MaxAttempts()
	backoff := g.retry.Schedule()

	var class FailureClass
	var out Outcome

	for attempt := 1; attempt <= attempts; attempt++ {
		if !g.breaker.Allow() {
			metrics.UpstreamShortCircuitsTotal.WithLabelValues(op.name).Inc()
			g.log.Warn("upstream call short-circuited",
				"operation", op.name, "attempt", attempt)
			return nil, domain.ServiceUnavailable(serviceUnavailableDetail, resilience.ErrCircuitOpen)
		}

		start := time.Now()
		out = g.transport.Get(ctx, op.url)
		class = Classify(out)
		g.breaker.Record(class.Responsive())

		metrics.UpstreamCallsTotal.WithLabelValues(op.name, class.String()).Inc()
		metrics.UpstreamLatency.WithLabelValues(op.name).Observe(time.Since(start).Seconds())

		switch class {
		case ClassSuccess:
			if op.requireBody && emptyBody(out.Body) {
				return nil, domain.NotFound(op.missingDetail)
			}
			return out.Body, nil
		case ClassNotFound:
			return nil, domain.NotFound(op.missingDetail)
		case ClassClientError:
			g.log.Warn("upstream rejected request",
				"operation", op.name, "status", out.Status)
			return nil, domain.NewError(domain.DefaultTitle,
				fmt.Sprintf("Upstream rejected the request with status %d", out.Status),
				out.Status, nil)
		case ClassFatal:
			g.log.Error("unexpected upstream response",
				"operation", op.name, "status", out.Status, "error", out.Err)
			return nil, domain.InternalError(
				"An unexpected error occurred while communicating with the API.", out.Err)
		}

		// Transient or rate limited: spend backoff budget if any remains.
		if attempt == attempts {
			break
		}
		g.log.Warn("retrying upstream call",
			"operation", op.name, "attempt", attempt, "class", class.String(),
			"status", out.Status, "error", out.Err)
		metrics.UpstreamRetriesTotal.WithLabelValues(op.name).Inc()
		if err := g.retry.Wait(ctx, backoff); err != nil {
			return nil, domain.ServiceUnavailable(serviceUnavailableDetail, err)
		}
	}

	if class == ClassRateLimited {
		g.log.Warn("upstream rate limit persisted through retries", "operation", op.name)
		return nil, domain.RateLimitExceeded(
			"API rate limit exceeded. Please try again later.", nil)
	}
	g.log.Error("upstream attempts exhausted",
		"operation", op.name, "attempts", attempts, "status", out.Status, "error", out.Err)
	return nil, domain.ServiceUnavailable(serviceUnavailableDetail, out.Err)
}

func (g *Gateway) postsURL(rawQuery string) string {
	u := g.endpoints.BaseURL + g.endpoints.PostsPath
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

func (g *Gateway) decodeError(op operation, err error) *domain.Error {
	g.log.Error("failed to decode upstream payload", "operation", op.name, "error", err)
	return domain.InternalError(
		"An unexpected error occurred while communicating with the API.", err)
}

// emptyBody reports whether a success body is effectively absent:
// nothing at all, or a bare JSON null / empty object.
func emptyBody(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	return trimmed == "" || trimmed == "null" || trimmed == "{}"
}
