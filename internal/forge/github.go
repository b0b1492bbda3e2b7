package forge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	oerrors "github.com/releasekit/cli/internal/errors"
)

// listPageSize is the page size for paginated listings.
const listPageSize = 100

// GitHub implements Client against the GitHub REST API.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
}

var _ Client = (*GitHub)(nil)

// NewGitHub creates a GitHub client for one repository using a static token.
func NewGitHub(ctx context.Context, token, owner, repo string) *GitHub {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &GitHub{
		client: github.NewClient(oauth2.NewClient(ctx, src)),
		owner:  owner,
		repo:   repo,
	}
}

// ListAssociatedPullRequests returns the pull requests associated with a
// commit, in API order.
func (g *GitHub) ListAssociatedPullRequests(ctx context.Context, sha string) ([]PullRequest, error) {
	var all []PullRequest
	opts := &github.ListOptions{PerPage: listPageSize}
	for {
		prs, resp, err := g.client.PullRequests.ListPullRequestsWithCommit(ctx, g.owner, g.repo, sha, opts)
		if err != nil {
			return nil, fmt.Errorf("listing pull requests for commit %s: %w", sha, err)
		}
		for _, pr := range prs {
			p := PullRequest{Number: pr.GetNumber()}
			for _, l := range pr.Labels {
				p.Labels = append(p.Labels, Label{Name: l.GetName()})
			}
			all = append(all, p)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// ListTags returns all repository tags.
func (g *GitHub) ListTags(ctx context.Context) ([]Tag, error) {
	var all []Tag
	opts := &github.ListOptions{PerPage: listPageSize}
	for {
		tags, resp, err := g.client.Repositories.ListTags(ctx, g.owner, g.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing tags: %w", err)
		}
		for _, t := range tags {
			all = append(all, Tag{Name: t.GetName()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// GetReleaseByTag fetches the release for a tag, mapping the provider's 404
// to errors.ErrNotFound so callers can distinguish absence from transport
// failure.
func (g *GitHub) GetReleaseByTag(ctx context.Context, tag string) (Release, error) {
	rel, resp, err := g.client.Repositories.GetReleaseByTag(ctx, g.owner, g.repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return Release{}, fmt.Errorf("release for tag %q: %w", tag, oerrors.ErrNotFound)
		}
		return Release{}, fmt.Errorf("fetching release for tag %q: %w", tag, err)
	}
	return releaseFromAPI(rel), nil
}

// CreateRelease creates a release for the given tag with generated notes.
func (g *GitHub) CreateRelease(ctx context.Context, tag string, prerelease bool) (Release, error) {
	rel, _, err := g.client.Repositories.CreateRelease(ctx, g.owner, g.repo, &github.RepositoryRelease{
		TagName:              github.String(tag),
		Name:                 github.String(tag),
		Prerelease:           github.Bool(prerelease),
		GenerateReleaseNotes: github.Bool(true),
	})
	if err != nil {
		return Release{}, fmt.Errorf("creating release %q: %w", tag, err)
	}
	return releaseFromAPI(rel), nil
}

func releaseFromAPI(rel *github.RepositoryRelease) Release {
	return Release{
		TagName:    rel.GetTagName(),
		Prerelease: rel.GetPrerelease(),
		Draft:      rel.GetDraft(),
		Body:       rel.GetBody(),
	}
}
