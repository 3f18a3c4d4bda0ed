// Package elfdialect resolves a named, semver-versioned dialect profile
// to the default OSABI/machine/endianness bundle elf32.NewWithDialect builds
// a Container from. Grounded on the version-constraint matching pattern
// in cmd/orizon/pkg/commands/outdated.go: a requested name plus a
// semver.Constraint picks the best version among the profiles registered
// for that name.
package elfdialect

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/elf32/pkg/elf32/enum"
)

// Profile bundles the defaults a dialect name implies.
type Profile struct {
	Name    string
	Version *semver.Version
	OSABI   enum.ELFOSABI
	Machine enum.EM
	Data    enum.ELFDATA
}

type registration struct {
	version *semver.Version
	profile Profile
}

var registry = map[string][]registration{}

func register(name, version string, p Profile) {
	v := semver.MustParse(version)
	p.Name = name
	p.Version = v
	registry[name] = append(registry[name], registration{version: v, profile: p})
}

func init() {
	register("linux-gnu", "1.2.0", Profile{OSABI: enum.ELFOSABI_GNU, Machine: enum.EM_X86_64, Data: enum.ELFDATA2LSB})
	register("linux-gnu", "1.0.0", Profile{OSABI: enum.ELFOSABI_GNU, Machine: enum.EM_386, Data: enum.ELFDATA2LSB})
	register("bare-arm", "0.9.0", Profile{OSABI: enum.ELFOSABI_NONE, Machine: enum.EM_ARM, Data: enum.ELFDATA2LSB})
	register("bare-mips-be", "0.1.0", Profile{OSABI: enum.ELFOSABI_NONE, Machine: enum.EM_MIPS, Data: enum.ELFDATA2MSB})
}

// Resolve picks the highest-versioned registered profile for name that
// satisfies constraint (a semver constraint expression such as
// ">=1.0.0 <2.0.0"). An empty constraint matches any registered version.
func Resolve(name, constraint string) (Profile, error) {
	candidates, ok := registry[name]
	if !ok {
		return Profile{}, fmt.Errorf("elfdialect: no profiles registered for %q", name)
	}

	var c *semver.Constraints
	if constraint != "" {
		var err error
		c, err = semver.NewConstraint(constraint)
		if err != nil {
			return Profile{}, fmt.Errorf("elfdialect: invalid constraint %q: %w", constraint, err)
		}
	}

	var best *registration
	for i := range candidates {
		cand := &candidates[i]
		if c != nil && !c.Check(cand.version) {
			continue
		}
		if best == nil || cand.version.GreaterThan(best.version) {
			best = cand
		}
	}
	if best == nil {
		return Profile{}, fmt.Errorf("elfdialect: no version of %q satisfies %q", name, constraint)
	}
	return best.profile, nil
}
