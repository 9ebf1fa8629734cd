package specifier

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// extremeShorthandRegex matches bare "owner/repo#ref" shorthand: no
	// protocol, no auth, no leading dot, at least one path separator and a
	// non-empty fragment.
	extremeShorthandRegex = regexp.MustCompile(`^[^/@:.\s][^/@:\s]*/[^@:\s]*[^/@:\s]#\S+`)

	// shortHostRegex matches provider aliases such as "github:owner/repo".
	// Inserting "//" after the colon would corrupt the path, so these pass
	// through protocol correction untouched.
	shortHostRegex = regexp.MustCompile(`(?i)^(github|gitlab|bitbucket|gist):/?[^/.]+/?`)

	// explicitProtocolRegex matches specifiers that already carry a usable
	// protocol separator.
	explicitProtocolRegex = regexp.MustCompile(`(?i)^((git\+)?(ssh|https?|file)|git)://`)

	// fragmentVersionRegex extracts a version from a "#ref" or "#semver:ref"
	// suffix.
	fragmentVersionRegex = regexp.MustCompile(`#(?:semver:)?(.+)`)

	// hostnameRegex accepts registered-name hosts: dotted names or localhost.
	hostnameRegex = regexp.MustCompile(`^(?:[^/.]+(\.[^/]+)+|localhost)$`)

	// hostColonRegex finds an scp-style "host:path" separator. The path side
	// must not start with a digit so port numbers survive.
	hostColonRegex = regexp.MustCompile(`([^/@#:.]+(?:\.[^/@#:.]+)+|localhost):([^#/0-9]+)`)

	// bareHostRegex matches specifiers that begin with a dotted hostname and
	// no protocol. Without credentials those are ambiguous with plain
	// package names.
	bareHostRegex = regexp.MustCompile(`^([^/@#:.]+(?:\.[^/@#:.]+)+)`)
)

// gitProtocols is every protocol accepted in a git specifier.
var gitProtocols = []string{
	"git", "git+ssh", "git+http", "git+https", "git+file",
	"ssh", "http", "https", "file",
	"github", "gitlab", "bitbucket", "gist",
}

// shortProtocols are the alias protocols (plus file) whose version comes
// only from the fragment, never from host extraction.
var shortProtocols = []string{"github", "gitlab", "bitbucket", "gist", "file"}

// correctProtocol ensures the specifier carries a parseable protocol,
// defaulting to git+ssh:// so scp-like shorthand ("git@host:owner/repo")
// survives URL parsing.
func correctProtocol(s string) string {
	if shortHostRegex.MatchString(s) {
		return s
	}
	if explicitProtocolRegex.MatchString(s) {
		return s
	}
	return "git+ssh://" + s
}

// correctHostColon rewrites the first scp-style "host:path" separator into
// "host/path".
func correctHostColon(s string) string {
	m := hostColonRegex.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	return s[:m[0]] + s[m[2]:m[3]] + "/" + s[m[4]:m[5]] + s[m[1]:]
}

// versionFromFragment extracts "ref" from the first "#ref" or "#semver:ref"
// suffix of s, empty when there is none.
func versionFromFragment(s string) string {
	m := fragmentVersionRegex.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// gitVersion interprets a lowercased specifier as a git URL and extracts the
// version or commit reference it pins. Any unrecognized or ambiguous input
// yields "".
func gitVersion(raw string) (string, Host) {
	corrected := raw
	if extremeShorthandRegex.MatchString(corrected) {
		corrected = "github:" + corrected
	} else {
		corrected = correctProtocol(corrected)
	}
	corrected = correctHostColon(corrected)

	// The fragment is split off before parsing and decoded leniently: a
	// fragment that fails percent-decoding is kept raw, not rejected.
	base, fragment, _ := strings.Cut(corrected, "#")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" {
		return "", HostOther
	}
	if decoded, decErr := url.PathUnescape(fragment); decErr == nil {
		fragment = decoded
	}

	pathname := u.EscapedPath()
	if u.Opaque != "" {
		pathname = u.Opaque
	}

	if !slices.Contains(gitProtocols, u.Scheme) {
		return "", HostOther
	}
	if pathname == "" {
		return "", HostOther
	}
	password, _ := u.User.Password()
	if bareHostRegex.MatchString(raw) && u.User.Username() == "" && password == "" {
		return "", HostOther
	}

	if slices.Contains(shortProtocols, u.Scheme) {
		return versionFromFragment(corrected), hostOfScheme(u.Scheme)
	}

	hostname := u.Hostname()
	if !hostnameRegex.MatchString(hostname) {
		return "", HostOther
	}

	host := hostOf(hostname)
	ref, ok := host.commitRef(pathname, fragment)
	if !ok {
		ref = ""
	}
	if v := versionFromFragment(corrected); v != "" {
		return v, host
	}
	return ref, host
}
