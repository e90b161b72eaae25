package profileconfig

import (
	"io/fs"
	"os"
	"sort"

	"statwizard/domain/core"
	"statwizard/domain/wizard"
	"statwizard/internal/errors"
	"statwizard/internal/logging"
)

// Registry holds the loaded profiles. It implements ports.ProfileRegistry
// and is safe for concurrent readers because nothing mutates it after load.
type Registry struct {
	profiles  map[string]*wizard.Profile
	ids       []string
	defaultID string
}

// LoadFS reads every *.yaml document from the filesystem, typically the
// embedded profiles directory. defaultID must name one of the loaded
// profiles.
func LoadFS(fsys fs.FS, defaultID string, log *logging.Logger) (*Registry, error) {
	paths, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profile documents")
	}
	sort.Strings(paths)

	reg := &Registry{profiles: make(map[string]*wizard.Profile)}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read profile document %s", path)
		}
		p, err := ParseProfile(data, log)
		if err != nil {
			return nil, errors.Wrapf(err, "profile document %s", path)
		}
		if _, dup := reg.profiles[p.ID]; dup {
			return nil, errors.ConfigInvalidf("profile id %q declared by more than one document", p.ID)
		}
		reg.profiles[p.ID] = p
		reg.ids = append(reg.ids, p.ID)
		if log != nil {
			log.Info("loaded profile %q (%d questions, %d rules) from %s",
				p.ID, len(p.Questions), len(p.Rules), path)
		}
	}

	if len(reg.profiles) == 0 {
		return nil, errors.ConfigInvalid("no profile documents found")
	}
	if _, ok := reg.profiles[defaultID]; !ok {
		return nil, errors.ConfigInvalidf("default profile %q is not among the loaded profiles", defaultID)
	}
	reg.defaultID = defaultID
	return reg, nil
}

// LoadDir loads profiles from a directory on disk instead of the embedded
// set.
func LoadDir(dir, defaultID string, log *logging.Logger) (*Registry, error) {
	return LoadFS(os.DirFS(dir), defaultID, log)
}

// Profile returns the profile for id, or the default profile when id is
// empty.
func (r *Registry) Profile(id string) (*wizard.Profile, error) {
	if id == "" {
		id = r.defaultID
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, &core.UnknownProfileError{ProfileID: id}
	}
	return p, nil
}

// DefaultID returns the id used when a request does not name a profile.
func (r *Registry) DefaultID() string { return r.defaultID }

// IDs returns the loaded profile ids in document order.
func (r *Registry) IDs() []string { return r.ids }
