package command

import "strings"

type Action int

const (
	ActionBuild Action = iota
	ActionRunDisplay
	ActionClean
	ActionStopDisplay
	ActionCheck
	ActionDeps
)

func (a Action) String() string {
	switch a {
	case ActionBuild:
		return "build"
	case ActionRunDisplay:
		return "novnc"
	case ActionClean:
		return "clean"
	case ActionStopDisplay:
		return "stop"
	case ActionCheck:
		return "check"
	case ActionDeps:
		return "deps"
	default:
		return "unknown"
	}
}

const (
	DefaultName   = "stralyx"
	DefaultMemory = "4G"
	DefaultCPUs   = "2"
	DefaultDisk   = "20G"
)

// FormParams is an immutable snapshot of the parameter form, taken per
// run-request. Empty string fields fall back to defaults via Normalize.
type FormParams struct {
	Name              string
	Memory            string
	CPUs              string
	Disk              string
	InstallKDE        bool
	InstallCalamares  bool
	InstallPythonDeps bool
	InstallSystemDeps bool
	Elevate           bool
}

func DefaultParams() FormParams {
	return FormParams{
		Name:   DefaultName,
		Memory: DefaultMemory,
		CPUs:   DefaultCPUs,
		Disk:   DefaultDisk,
	}
}

// Normalize returns a copy with empty string fields replaced by defaults.
func (p FormParams) Normalize() FormParams {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = DefaultName
	} else {
		p.Name = strings.TrimSpace(p.Name)
	}
	if strings.TrimSpace(p.Memory) == "" {
		p.Memory = DefaultMemory
	} else {
		p.Memory = strings.TrimSpace(p.Memory)
	}
	if strings.TrimSpace(p.CPUs) == "" {
		p.CPUs = DefaultCPUs
	} else {
		p.CPUs = strings.TrimSpace(p.CPUs)
	}
	if strings.TrimSpace(p.Disk) == "" {
		p.Disk = DefaultDisk
	} else {
		p.Disk = strings.TrimSpace(p.Disk)
	}
	return p
}

// Invocation is a resolved executable plus its ordered argument list.
type Invocation struct {
	Path string
	Args []string
}

func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Path
	}
	return i.Path + " " + strings.Join(i.Args, " ")
}
