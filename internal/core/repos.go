package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v82/github"
)

// RetrievalErrorMessage is printed for any response status other than 200
const RetrievalErrorMessage = "Error Retrieving repository data."

// RepositoryListing is one page of a user's repositories in API order
type RepositoryListing struct {
	Username     string
	Repositories []*github.Repository
}

// Count returns the number of repositories in the listing
func (l *RepositoryListing) Count() int {
	return len(l.Repositories)
}

// RepoLister fetches a user's repositories and prints their descriptions
type RepoLister struct {
	client *github.Client
	out    io.Writer
	logger *slog.Logger
}

// NewRepoLister creates a lister writing to out. A nil logger discards records.
func NewRepoLister(client *github.Client, out io.Writer, logger *slog.Logger) *RepoLister {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &RepoLister{
		client: client,
		out:    out,
		logger: logger,
	}
}

// FetchRepositories issues a single GET for the user's repositories.
// No query parameters or credentials are sent.
func (l *RepoLister) FetchRepositories(ctx context.Context, username string) (*RepositoryListing, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	l.logger.Debug("fetching repositories",
		slog.String("username", username),
		slog.String("base_url", l.client.BaseURL.String()),
	)

	repos, resp, err := l.client.Repositories.ListByUser(ctx, username, nil)

	// No response means the request never completed
	if resp == nil {
		if err == nil {
			err = errors.New("no response received")
		}

		return nil, &TransportError{
			Operation: fmt.Sprintf("GET users/%s/repos", username),
			Err:       err,
		}
	}

	l.logger.Debug("response received",
		slog.String("username", username),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Username: username, StatusCode: resp.StatusCode}
	}

	if err != nil {
		return nil, &ParseError{Username: username, Err: err}
	}

	// A null or empty body decodes without error but leaves the slice nil
	if repos == nil {
		return nil, &ParseError{Username: username, Err: errors.New("response body is not a JSON array")}
	}

	return &RepositoryListing{
		Username:     username,
		Repositories: repos,
	}, nil
}

// ListRepositories fetches and renders the user's repositories.
// A non-200 status prints RetrievalErrorMessage and returns nil.
func (l *RepoLister) ListRepositories(ctx context.Context, username string) error {
	listing, err := l.FetchRepositories(ctx, username)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			l.logger.Info("repository listing failed",
				slog.String("username", statusErr.Username),
				slog.Int("status", statusErr.StatusCode),
			)

			_, werr := fmt.Fprintln(l.out, RetrievalErrorMessage)

			return werr
		}

		return err
	}

	l.logger.Debug("rendering repositories",
		slog.String("username", listing.Username),
		slog.Int("count", listing.Count()),
	)

	return RenderListing(l.out, listing)
}
