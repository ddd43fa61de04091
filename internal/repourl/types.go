package repourl

// Provider identifies a known git hosting service.
type Provider string

const (
	// ProviderGitHub is the primary provider; it is the only one whose API
	// is queried for metadata.
	ProviderGitHub Provider = "github"

	// ProviderGitLab is recognized syntactically only.
	ProviderGitLab Provider = "gitlab"

	// ProviderBitbucket is recognized syntactically only.
	ProviderBitbucket Provider = "bitbucket"
)

// Reference is the normalized identity of a repository reference.
// Owner and Name are always non-empty in a successfully normalized reference.
type Reference struct {
	// Owner is the account or organization segment.
	Owner string

	// Name is the repository name with any trailing ".git" stripped.
	Name string

	// Branch is the token extracted from a "/tree/<branch>" segment, if any.
	Branch string

	// Commit is the lowercase hex hash extracted from a "/commit/<hash>"
	// segment, if any. Branch and Commit are independent; both may be set.
	Commit string

	// Provider is the detected hosting service. Unrecognized hosts fall
	// back to ProviderGitHub.
	Provider Provider

	// NormalizedURL is the canonical "https://<host>/<owner>/<repo>" form
	// with branch/commit suffixes stripped.
	NormalizedURL string

	// OriginalInput is the verbatim input string.
	OriginalInput string
}
