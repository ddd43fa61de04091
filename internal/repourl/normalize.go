package repourl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

const githubBaseURL = "https://github.com"

var (
	shorthandRe = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)
	branchRe    = regexp.MustCompile(`/tree/([\w.-]+)`)
	commitRe    = regexp.MustCompile(`(?i)/commit/([0-9a-f]+)`)
)

// hostPatterns maps hostname substrings to providers. Order matters: the
// first match wins. Hosts matching none of the patterns fall through to
// ProviderGitHub on purpose, so self-hosted or enterprise mirrors are still
// processed best-effort instead of being rejected.
var hostPatterns = []struct {
	substr   string
	provider Provider
}{
	{"github", ProviderGitHub},
	{"gitlab", ProviderGitLab},
	{"bitbucket", ProviderBitbucket},
}

// Normalize validates and decomposes a raw repository reference into a
// Reference. Accepted forms are absolute URLs, "owner/repo" shorthand
// (anchored to github.com), and scp-style remotes such as
// "git@github.com:owner/repo.git". The function is pure: identical input
// always yields an identical Reference, and normalizing a NormalizedURL
// reproduces the same owner, name, and provider.
func Normalize(input string) (*Reference, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return nil, &InvalidFormatError{Input: input}
	}

	target := raw
	if !strings.Contains(raw, "://") {
		switch {
		case isSCPLike(raw):
			ep, err := transport.NewEndpoint(raw)
			if err != nil {
				return nil, &InvalidFormatError{Input: input, Err: err}
			}
			target = "https://" + ep.Host + "/" + strings.TrimPrefix(ep.Path, "/")
		case shorthandRe.MatchString(raw):
			target = githubBaseURL + "/" + raw
		default:
			return nil, &InvalidFormatError{Input: input}
		}
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Hostname() == "" {
		return nil, &InvalidFormatError{Input: input, Err: err}
	}

	segments := splitPath(parsed.Path)
	if len(segments) < 2 {
		return nil, &MissingOwnerOrRepoError{Input: input}
	}

	owner := segments[0]
	name := strings.TrimSuffix(segments[1], ".git")
	if owner == "" || name == "" {
		return nil, &MissingOwnerOrRepoError{Input: input}
	}

	ref := &Reference{
		Owner:         owner,
		Name:          name,
		Provider:      detectProvider(parsed.Hostname()),
		NormalizedURL: "https://" + parsed.Hostname() + "/" + owner + "/" + name,
		OriginalInput: input,
	}

	// Branch and commit are extracted from the raw string, not the split
	// path, so the first occurrence wins even when the path repeats them.
	if m := branchRe.FindStringSubmatch(raw); m != nil {
		ref.Branch = m[1]
	}
	if m := commitRe.FindStringSubmatch(raw); m != nil {
		ref.Commit = strings.ToLower(m[1])
	}

	return ref, nil
}

// detectProvider matches a hostname against the ordered pattern table.
func detectProvider(host string) Provider {
	host = strings.ToLower(host)
	for _, p := range hostPatterns {
		if strings.Contains(host, p.substr) {
			return p.provider
		}
	}
	return ProviderGitHub
}

// isSCPLike reports whether the input looks like a "user@host:path" remote.
func isSCPLike(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at:], ":")
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
