package diff

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"oss.terrastruct.com/diff"
)

// TestdataGeneric compares got against path.exp<ext>.
// A missing or differing expectation fails unless $TESTDATA_ACCEPT is set, in which case got becomes the expectation.
func TestdataGeneric(path, fileExtension string, got []byte) (err error) {
	expPath := fmt.Sprintf("%s.exp%s", path, fileExtension)
	gotPath := fmt.Sprintf("%s.got%s", path, fileExtension)

	err = os.MkdirAll(filepath.Dir(gotPath), 0755)
	if err != nil {
		return err
	}
	err = os.WriteFile(gotPath, got, 0600)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expPath); errors.Is(err, fs.ErrNotExist) {
		if os.Getenv("TESTDATA_ACCEPT") != "" {
			return os.Rename(gotPath, expPath)
		}
		return fmt.Errorf("missing expectation %s, got written to %s (rerun with $TESTDATA_ACCEPT=1 to accept)", expPath, gotPath)
	}

	ds, err := diff.Files(expPath, gotPath)
	if err != nil {
		return err
	}

	if ds != "" {
		if os.Getenv("TESTDATA_ACCEPT") != "" {
			return os.Rename(gotPath, expPath)
		}
		return fmt.Errorf("diff (rerun with $TESTDATA_ACCEPT=1 to accept):\n%s", ds)
	}
	return os.Remove(gotPath)
}
