package specifier

import "strings"

// Host identifies a well-known git hosting provider.
type Host int

const (
	HostOther Host = iota
	HostGitHub
	HostGitLab
	HostBitbucket
	HostGist
)

// String returns the canonical hostname for the provider.
func (h Host) String() string {
	switch h {
	case HostGitHub:
		return "github.com"
	case HostGitLab:
		return "gitlab.com"
	case HostBitbucket:
		return "bitbucket.org"
	case HostGist:
		return "gist.github.com"
	default:
		return "other"
	}
}

// hostOf maps a parsed hostname to its provider. A leading "www." is
// ignored.
func hostOf(hostname string) Host {
	switch strings.TrimPrefix(hostname, "www.") {
	case "github.com":
		return HostGitHub
	case "gitlab.com":
		return HostGitLab
	case "bitbucket.org":
		return HostBitbucket
	case "gist.github.com":
		return HostGist
	default:
		return HostOther
	}
}

// hostOfScheme maps a provider alias protocol ("github:", ...) to its host.
func hostOfScheme(scheme string) Host {
	switch scheme {
	case "github":
		return HostGitHub
	case "gitlab":
		return HostGitLab
	case "bitbucket":
		return HostBitbucket
	case "gist":
		return HostGist
	default:
		return HostOther
	}
}

// commitRef extracts the commit reference a URL on this host pins, given the
// URL's pathname and decoded fragment (without "#"). The second return is
// false when the URL shape carries no extractable reference (download links,
// CI artifacts, missing segments).
func (h Host) commitRef(pathname, fragment string) (string, bool) {
	switch h {
	case HostGitHub:
		return githubRef(pathname, fragment)
	case HostGitLab:
		return gitlabRef(pathname, fragment)
	case HostBitbucket:
		return bitbucketRef(pathname, fragment)
	case HostGist:
		return gistRef(pathname, fragment)
	default:
		// No rule for this host: the fragment is the reference.
		return fragment, true
	}
}

// githubRef handles /user/project[.git] and /user/project/tree/<ref> paths.
// Any other sub-path (releases, raw downloads) carries no reference.
func githubRef(pathname, fragment string) (string, bool) {
	segs := splitLimit(pathname, "/", 5)
	user, project, kind := seg(segs, 1), seg(segs, 2), seg(segs, 3)

	if kind != "" && kind != "tree" {
		return "", false
	}

	ref := fragment
	if kind == "tree" {
		ref = "#" + seg(segs, 4)
	}

	project = strings.TrimSuffix(project, ".git")
	if user == "" || project == "" {
		return "", false
	}
	return ref, true
}

// gitlabRef rejects sub-resource ("/-/") and archive paths. The project is
// the last segment, the user path everything before it.
func gitlabRef(pathname, fragment string) (string, bool) {
	if strings.Contains(pathname, "/-/") || strings.Contains(pathname, "/archive.tar.gz") {
		return "", false
	}
	segs := strings.Split(pathname, "/")
	if len(segs) < 2 {
		return "", false
	}
	project := strings.TrimSuffix(segs[len(segs)-1], ".git")
	user := strings.Join(segs[1:len(segs)-1], "/")
	if user == "" || project == "" {
		return "", false
	}
	return fragment, true
}

// bitbucketRef handles /user/project[.git] paths; "get" sub-paths are
// download links with no reference.
func bitbucketRef(pathname, fragment string) (string, bool) {
	segs := splitLimit(pathname, "/", 4)
	user, project, aux := seg(segs, 1), seg(segs, 2), seg(segs, 3)
	if aux == "get" {
		return "", false
	}
	project = strings.TrimSuffix(project, ".git")
	if user == "" || project == "" {
		return "", false
	}
	return fragment, true
}

// gistRef handles /user/gistid and anonymous /gistid paths; "raw" sub-paths
// carry no reference. An anonymous gist has its id in the user position.
func gistRef(pathname, fragment string) (string, bool) {
	segs := splitLimit(pathname, "/", 4)
	user, project, aux := seg(segs, 1), seg(segs, 2), seg(segs, 3)
	if aux == "raw" {
		return "", false
	}
	if user == "" && project == "" {
		return "", false
	}
	return fragment, true
}

// splitLimit splits s on sep keeping at most limit elements, dropping the
// remainder. Path segments past the limit never carry meaning here.
func splitLimit(s, sep string, limit int) []string {
	parts := strings.Split(s, sep)
	if len(parts) > limit {
		parts = parts[:limit]
	}
	return parts
}

// seg returns parts[i], or "" when the index is out of range.
func seg(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}
