// Package forge abstracts the hosted source-control operations the release
// pipeline depends on.
package forge

import "context"

// Label is a pull request label.
type Label struct {
	Name string
}

// PullRequest is the projection of a pull request the bump resolver needs.
type PullRequest struct {
	Number int
	Labels []Label
}

// Tag is a repository tag. Names are the raw version strings the core
// parses.
type Tag struct {
	Name string
}

// Release is the projection of a hosted release object.
type Release struct {
	TagName    string
	Prerelease bool
	Draft      bool
	Body       string
}

// Client is the set of source-control operations the release pipeline
// performs. Calls are sequential and blocking; failures propagate unmodified
// with no retry layer.
type Client interface {
	// ListAssociatedPullRequests returns the pull requests associated with
	// a commit, in the provider's order.
	ListAssociatedPullRequests(ctx context.Context, sha string) ([]PullRequest, error)

	// ListTags returns all repository tags.
	ListTags(ctx context.Context) ([]Tag, error)

	// GetReleaseByTag fetches the release for a tag. A missing release
	// reports errors.ErrNotFound.
	GetReleaseByTag(ctx context.Context, tag string) (Release, error)

	// CreateRelease creates a release for the given tag with
	// provider-generated notes.
	CreateRelease(ctx context.Context, tag string, prerelease bool) (Release, error)
}
