package application

const (
	// AppName is the application name used for the command and identification
	AppName = "repodesc"

	// DefaultUsername is the GitHub account listed when no username is given
	DefaultUsername = "meta"

	// APIBaseURL is the GitHub REST API root; requests go to users/{username}/repos below it
	APIBaseURL = "https://api.github.com/"
)
