package core

import (
	"fmt"
	"io"

	"github.com/google/go-github/v82/github"
)

// NullDescription is printed for repositories without a description
const NullDescription = "None"

// DescriptionText returns the repository description, or NullDescription when
// the field was absent or null. An empty string is printed as is.
func DescriptionText(repo *github.Repository) string {
	if repo == nil || repo.Description == nil {
		return NullDescription
	}

	return *repo.Description
}

// RenderListing writes the count line followed by one description line per
// repository, in listing order.
func RenderListing(w io.Writer, listing *RepositoryListing) error {
	if _, err := fmt.Fprintf(w, "%s has %d public repositories.\n", listing.Username, listing.Count()); err != nil {
		return err
	}

	for _, repo := range listing.Repositories {
		if _, err := fmt.Fprintf(w, "Description: %s\n", DescriptionText(repo)); err != nil {
			return err
		}
	}

	return nil
}
