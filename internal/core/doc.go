// Package core provides the business logic layer for repodesc.
//
// The package fetches the public repositories of one GitHub user and renders
// their descriptions. Output formatting is kept apart from the HTTP call so
// each half can be exercised on its own.
//
// # Listing Repositories
//
// A listing is produced in two steps:
//
//  1. [RepoLister.FetchRepositories] - One GET to /users/{username}/repos
//  2. [RenderListing] - Writes the count line and one description per repository
//
// [RepoLister.ListRepositories] runs both and turns a non-200 status into the
// fixed line "Error Retrieving repository data." on the output writer.
//
// # Errors
//
// Only a non-200 status is reported on the output writer. Transport failures
// ([TransportError]) and unreadable bodies ([ParseError]) are returned to the
// caller, which is expected to treat them as fatal.
package core
