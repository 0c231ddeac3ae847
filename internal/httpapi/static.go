package httpapi

import (
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexFile = "index.html"

// staticFiles serves regular files below a root directory.  Dot-files and
// anything outside the root are never served.
type staticFiles struct {
	fsys fs.FS
}

func newStaticFiles(root string) *staticFiles {
	return &staticFiles{fsys: os.DirFS(root)}
}

// resolve maps the request to a file name inside the root.  A directory
// resolves to its index.html when that exists.
func (s *staticFiles) resolve(r *http.Request) (string, bool) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return "", false
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) || hasDotSegment(name) {
		return "", false
	}

	fi, err := fs.Stat(s.fsys, name)
	if err != nil {
		return "", false
	}
	if fi.IsDir() {
		name = path.Join(name, indexFile)
		if fi, err = fs.Stat(s.fsys, name); err != nil {
			return "", false
		}
	}
	if !fi.Mode().IsRegular() {
		return "", false
	}
	return name, true
}

func (s *staticFiles) match(r *http.Request) bool {
	_, ok := s.resolve(r)
	return ok
}

func (s *staticFiles) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, ok := s.resolve(r)
	if !ok {
		writeNotFound(w, r)
		return
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		writeNotFound(w, r)
		return
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		writeInternalError(w, r)
		return
	}

	rs, ok := f.(io.ReadSeeker)
	if !ok {
		writeInternalError(w, r)
		return
	}

	// ServeContent picks the content type from the extension, falling back
	// to sniffing the first 512 bytes.
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), rs)
}

func hasDotSegment(name string) bool {
	if name == "." {
		return false
	}
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
