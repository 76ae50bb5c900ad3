package herald

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// OSError converts an operating-system error into a clean, lowercase
// description suitable for an informant call. Filenames involved in the
// failure become the prefix:
//
//	herald.Error(herald.OSError(err))
//	    // myprog error: data.in: no such file or directory.
func OSError(err error) string {
	if err == nil {
		return ""
	}
	var files []string
	var reason string

	var pathErr *fs.PathError
	var linkErr *os.LinkError
	switch {
	case errors.As(err, &pathErr):
		files = append(files, pathErr.Path)
		reason = pathErr.Err.Error()
	case errors.As(err, &linkErr):
		files = append(files, linkErr.Old, linkErr.New)
		reason = linkErr.Err.Error()
	default:
		reason = err.Error()
	}

	parts := cullStrings(append([]string{strings.Join(cullStrings(files), " -> ")},
		strings.ToLower(reason)))
	return FullStop(strings.Join(parts, ": "))
}
