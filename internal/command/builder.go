package command

import (
	"strings"

	"github.com/stralyx/simetrio/internal/errdefs"
)

// Builder maps a selected action and a parameter snapshot to a concrete
// external invocation. Pure aside from script resolution.
type Builder struct {
	resolver *Resolver
}

func NewBuilder(resolver *Resolver) *Builder {
	return &Builder{resolver: resolver}
}

func (b *Builder) Build(action Action, params FormParams) (Invocation, error) {
	switch action {
	case ActionBuild:
		params = params.Normalize()
		path, err := b.resolver.Resolve(ScriptBuild)
		if err != nil {
			return Invocation{}, err
		}
		args := []string{"--name", params.Name, "--mem", params.Memory, "--cpus", params.CPUs, "--disk", params.Disk}
		if params.InstallKDE {
			args = append(args, "--with-kde")
		}
		if params.InstallCalamares {
			args = append(args, "--with-calamares")
		}
		return Invocation{Path: path, Args: args}, nil

	case ActionRunDisplay:
		// The name field doubles as the image path for noVNC runs. It is
		// read raw: defaulting an empty path would point at nothing useful.
		img := strings.TrimSpace(params.Name)
		if img == "" {
			return Invocation{}, errdefs.NewCustomError(errdefs.ErrTypeMissingRequiredField,
				"image path required for noVNC")
		}
		path, err := b.resolver.Resolve(ScriptRunDisplay)
		if err != nil {
			return Invocation{}, err
		}
		return Invocation{Path: path, Args: []string{img}}, nil

	case ActionClean:
		params = params.Normalize()
		path, err := b.resolver.Resolve(ScriptClean)
		if err != nil {
			return Invocation{}, err
		}
		return Invocation{Path: path, Args: []string{"--yes", "--remove-instance", "--instance-name", params.Name}}, nil

	case ActionStopDisplay:
		path, err := b.resolver.Resolve(ScriptStopDisplay)
		if err != nil {
			return Invocation{}, err
		}
		return Invocation{Path: path}, nil

	case ActionCheck:
		path, err := b.resolver.Resolve(ScriptCLI)
		if err != nil {
			return Invocation{}, err
		}
		return Invocation{Path: path, Args: []string{"check"}}, nil

	case ActionDeps:
		path, err := b.resolver.Resolve(ScriptCLI)
		if err != nil {
			return Invocation{}, err
		}
		args := []string{"deps"}
		if params.InstallPythonDeps {
			args = append(args, "--install-python")
		}
		if params.InstallSystemDeps {
			args = append(args, "--install-binaries")
		}
		if params.Elevate {
			args = append(args, "--elevate")
		}
		return Invocation{Path: path, Args: args}, nil

	default:
		return Invocation{}, errdefs.NewCustomError(errdefs.ErrTypeGeneric,
			"unknown action: "+action.String())
	}
}

// Check builds the preflight check invocation used by the dependency flow.
func (b *Builder) Check() (Invocation, error) {
	path, err := b.resolver.Resolve(ScriptCLI)
	if err != nil {
		return Invocation{}, err
	}
	return Invocation{Path: path, Args: []string{"check"}}, nil
}

// InstallPython builds the Python requirements installer invocation.
func (b *Builder) InstallPython(elevate bool) (Invocation, error) {
	path, err := b.resolver.Resolve(ScriptCLI)
	if err != nil {
		return Invocation{}, err
	}
	args := []string{"deps", "--install-python"}
	if elevate {
		args = append(args, "--elevate")
	}
	return Invocation{Path: path, Args: args}, nil
}

// InstallBinaries builds the system binaries installer invocation.
func (b *Builder) InstallBinaries(elevate bool) (Invocation, error) {
	path, err := b.resolver.Resolve(ScriptCLI)
	if err != nil {
		return Invocation{}, err
	}
	args := []string{"deps", "--install-binaries"}
	if elevate {
		args = append(args, "--elevate")
	}
	return Invocation{Path: path, Args: args}, nil
}
