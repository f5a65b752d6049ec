package version

import "strconv"

type Version struct {
	Major int64
	Minor int64
	Patch int64
}

// String generate a human readable Version
func (v Version) String() string {
	return strconv.FormatInt(v.Major, 10) + "." + strconv.FormatInt(v.Minor, 10) + "." + strconv.FormatInt(v.Patch, 10)
}

// GitCommit is filled at link time:
//
//	go build -ldflags "-X github.com/jypelle/ofenpanel/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit string

// Full returns the version followed by the commit it was built from, when known.
func Full() string {
	if GitCommit == "" {
		return AppVersion.String()
	}
	return AppVersion.String() + " (" + GitCommit + ")"
}

var AppVersion = Version{
	Major: 0,
	Minor: 3,
	Patch: 1,
}
