package open

import "os"

func rewind(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err := f.Seek(0, 0)
	return err
}

// WriteSafeFile replaces the content of the file at filepath with content.
//
// The file is created by NewSafeFile, so only the current user can access it.
func WriteSafeFile(filepath string, content []byte) error {
	f, err := NewSafeFile(filepath)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
