package depflow

import (
	"strings"

	"golang.org/x/exp/slices"
)

type Branch int

const (
	BranchPythonPackages Branch = iota
	BranchMultipassPKG
	BranchMissingBinaries
	BranchUnknown
)

func (b Branch) String() string {
	switch b {
	case BranchPythonPackages:
		return "python-packages"
	case BranchMultipassPKG:
		return "multipass-pkg"
	case BranchMissingBinaries:
		return "missing-binaries"
	default:
		return "unknown"
	}
}

type marker struct {
	substr string
	branch Branch
}

// Marker substrings in the check output are the load-bearing signal for
// remediation. Table order is the precedence order.
var markerTable = []marker{
	{substr: "Missing Python packages", branch: BranchPythonPackages},
	{substr: "Found Multipass PKG", branch: BranchMultipassPKG},
	{substr: "Multipass PKG present", branch: BranchMultipassPKG},
	{substr: "Missing binaries", branch: BranchMissingBinaries},
}

// Classify maps the check's combined output to a remediation branch. Kept
// as the single place that knows about the marker strings so the contract
// can be tightened later without touching the flow.
func Classify(output string) Branch {
	idx := slices.IndexFunc(markerTable, func(m marker) bool {
		return strings.Contains(output, m.substr)
	})
	if idx < 0 {
		return BranchUnknown
	}
	return markerTable[idx].branch
}
