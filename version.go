package numfield

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

// ParseVersion parses v without a leading `v`.
func ParseVersion(v string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, fmt.Errorf("invalid semver %q", v)
	}
	var sv SemVer
	var err error
	for i, dst := range []*int{&sv.Major, &sv.Minor, &sv.Patch} {
		if *dst, err = strconv.Atoi(m[i+1]); err != nil {
			return SemVer{}, fmt.Errorf("invalid semver %q: %w", v, err)
		}
	}
	sv.Pre, sv.Build = m[4], m[5]
	return sv, nil
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Prerelease reports whether v carries a pre-release tag or is a 0.x
// version.
func (v SemVer) Prerelease() bool {
	return v.Pre != "" || v.Major == 0
}

// Version returns the module version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseVersion(v)
	return err == nil
}
