package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

var midiExt = regexp.MustCompile(`(?i)\.midi?$`)

// FindMidiPaths walks root and returns every midi file under it. A
// path that is itself a midi file comes back as the only entry.
func FindMidiPaths(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && midiExt.MatchString(d.Name()) {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, err
	}
	return res, nil
}
