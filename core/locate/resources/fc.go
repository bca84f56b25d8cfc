package resources

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/otsvg/core"
	"github.com/npillmayer/otsvg/core/font"
	"github.com/npillmayer/schuko"
)

// fcEntry is a font file as listed by fontconfig.
type fcEntry struct {
	Family string
	Path   string
	Style  string
}

func findFontConfigBinary(conf schuko.Configuration) (path string, err error) {
	path = conf.GetString("fontconfig")
	if path == "" {
		tracer().Infof("fontconfig not configured: key 'fontconfig' should point location of 'fc-list' binary")
		err = errors.New("fontconfig not configured")
	}
	return
}

// runFontConfig calls fc-list and returns its output.
func runFontConfig(conf schuko.Configuration) (io.Reader, error) {
	fcpath, err := findFontConfigBinary(conf)
	if err != nil {
		return nil, err
	}
	if !path.IsAbs(fcpath) {
		return nil, core.Error(core.EINVALID, "fontconfig binary fc-list must point to absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return nil, core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	out, err := exec.Command(fcpath).Output()
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "fontconfig failed: %v", err)
	}
	return bytes.NewReader(out), nil
}

// parseFontConfigList reads lines of the form
//
//	/usr/share/fonts/dejavu/DejaVuSans.ttf: DejaVu Sans:style=Book
//
// Font collections (.ttc) are skipped.
func parseFontConfigList(r io.Reader) ([]fcEntry, error) {
	var entries []fcEntry
	scanner := bufio.NewScanner(r)
	ttc := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		if strings.HasSuffix(fontpath, ".ttc") {
			ttc++
			continue
		}
		entry := fcEntry{Path: fontpath}
		// a family may be listed with several names, separated by comma
		entry.Family = strings.TrimPrefix(strings.TrimSpace(strings.Split(fields[1], ",")[0]), ".")
		if len(fields) > 2 {
			entry.Style = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fields[2]), "style="))
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, core.WrapError(err, core.EINVALID, "cannot read fontconfig font list")
	}
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not supported", ttc)
	}
	return entries, nil
}

var loadFontConfigListTask sync.Once
var fontConfigEntries []fcEntry

// findFontConfigFont searches for a locally installed font using the fontconfig
// system (https://www.freedesktop.org/wiki/Software/fontconfig/).
//
// The output of fc-list is read once. Subsequent calls search the entries
// already read. Among the files of a family, regular styles are preferred.
//
// We call the binary instead of using the C library because of possible version
// issues. If fontconfig is not configured, findFontConfigFont silently reports
// failure.
func findFontConfigFont(conf schuko.Configuration, name string) (string, bool) {
	loadFontConfigListTask.Do(func() {
		r, err := runFontConfig(conf)
		if err != nil {
			tracer().Infof("fontconfig unavailable: %v", err)
			return
		}
		if fontConfigEntries, err = parseFontConfigList(r); err != nil {
			core.UserError(err)
		}
		tracer().Infof("loaded fontconfig list with %d fonts", len(fontConfigEntries))
	})
	return matchFontConfigEntry(fontConfigEntries, name)
}

func matchFontConfigEntry(entries []fcEntry, name string) (string, bool) {
	key := font.NormalizeFontname(name)
	match := ""
	for _, e := range entries {
		if font.NormalizeFontname(e.Family) != key {
			continue
		}
		if isRegularStyle(e.Style) {
			return e.Path, true
		}
		if match == "" {
			match = e.Path
		}
	}
	return match, match != ""
}

func isRegularStyle(style string) bool {
	for _, s := range []string{"regular", "book", "roman", "normal"} {
		if strings.Contains(style, s) {
			return true
		}
	}
	return false
}
