/*
 * ptf.go, part of goTPS.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ptf

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/gotps"
	v3 "github.com/rmera/gotps/v3"
)

const defaultPrec = 3

//Write!

// Writer writes path records to a ptf archive. It implements
// shoot.PathWriter.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
	paths     int
}

// NewWriter creates a ptf archive with the given per-frame atom number.
// The header map, if non-nil, is written as key=value lines before the
// atom number mark. The compression is chosen from the last letter of
// name (see the package documentation); compressionLevel only applies to
// the gzip and flate backends.
func NewWriter(name string, natoms int, header map[string]string, compressionLevel ...int) (*Writer, error) {
	level := 6
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	flatewriter := func(a io.Writer) (io.WriteCloser, error) { return flate.NewWriter(a, level) }
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		AnyNewWriter = gzipwriter
	case 'r':
		AnyNewWriter = flatewriter
	case 's', 'f':
		AnyNewWriter = zstdwriter
	default:
		AnyNewWriter = zstdwriter
	}
	W.h, err = AnyNewWriter(W.f)
	if err != nil {
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.natoms = natoms
	W.filename = name
	W.writeable = true
	W.prec = defaultPrec
	if header != nil {
		if p, ok := header["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err != nil {
				return nil, Error{"Invalid precision in header: " + err.Error(), name, []string{"NewWriter"}, true}
			}
			W.prec = prec
		}
	}
	headerstr := ""
	for _, k := range sortedKeys(header) {
		headerstr += fmt.Sprintf("%s=%v\n", k, header[k])
	}
	W.h.Write([]byte(headerstr))
	W.h.Write([]byte(fmt.Sprintf("** %d\n", W.natoms)))
	return W, nil
}

// Len returns the number of atoms per frame.
func (W *Writer) Len() int {
	return W.natoms
}

// Paths returns the number of path records written so far.
func (W *Writer) Paths() int {
	return W.paths
}

// WritePath appends one path record with the given metadata. Whether the
// frames carry velocities is decided by the first frame of the path, and
// must be consistent along it.
func (W *Writer) WritePath(p *chem.Path, meta map[string]string) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WritePath"}, true}
	}
	if p == nil || p.Len() == 0 {
		return Error{NilCoordinates, W.filename, []string{"WritePath"}, true}
	}
	vel := p.First().Vel != nil
	rec := fmt.Sprintf("&& frames=%d vel=%s", p.Len(), boolmark(vel))
	for _, k := range sortedKeys(meta) {
		if k == "frames" || k == "vel" {
			continue //reserved
		}
		rec += fmt.Sprintf(" %s=%s", k, meta[k])
	}
	W.h.Write([]byte(rec + "\n"))
	var temp [6]int
	for i := 0; i < p.Len(); i++ {
		f := p.Frame(i)
		n := f.Coords.NVecs()
		if n != W.natoms {
			return Error{fmt.Sprintf("%d coordinates given, but %d expected", n, W.natoms), W.filename, []string{"WritePath"}, true}
		}
		if (f.Vel != nil) != vel {
			return Error{"Inconsistent velocity presence along the path", W.filename, []string{"WritePath"}, true}
		}
		for j := 0; j < n; j++ {
			var str string
			if vel {
				str = rowEncode(temp[:], W.prec,
					f.Coords.At(j, 0), f.Coords.At(j, 1), f.Coords.At(j, 2),
					f.Vel.At(j, 0), f.Vel.At(j, 1), f.Vel.At(j, 2))
			} else {
				str = rowEncode(temp[:3], W.prec,
					f.Coords.At(j, 0), f.Coords.At(j, 1), f.Coords.At(j, 2))
			}
			W.h.Write([]byte(str))
		}
		if len(f.Box) >= 9 {
			b := f.Box
			W.h.Write([]byte(fmt.Sprintf("* %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f %4.2f\n",
				b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])))
		} else {
			W.h.Write([]byte("*\n"))
		}
	}
	W.paths++
	return nil
}

// Close flushes and closes the archive. The Writer can not be used after
// this call.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

func boolmark(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func rowEncode(temp []int, prec int, vals ...float64) string {
	p := math.Pow(10.0, float64(prec))
	for i, v := range vals {
		temp[i] = int(math.RoundToEven(v * p))
	}
	strs := make([]string, len(temp))
	for i, v := range temp {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, " ") + "\n"
}

//Read!

// Reader reads a ptf archive. Its Next method makes it a tps.Traj over
// the concatenated frames of all records; ReadPath recovers the records
// themselves.
type Reader struct {
	f            *os.File
	comp         io.ReadCloser
	h            *bufio.Reader
	intermediate *bufio.Reader
	natoms       int
	filename     string
	prec         int
	readable     bool
	curVel       bool //does the current record carry velocities?
}

//*zstd.Decoder does not implement io.ReadCloser (Close returns nothing)
//so it gets a small wrapper.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

// New opens a ptf archive for reading, and returns the handle, a map
// with the file-level metadata (possibly empty) and error or nil.
func New(name string) (*Reader, map[string]string, error) {
	R := new(Reader)
	R.natoms = -1
	R.filename = name
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	flatereader := func(a io.Reader) (io.ReadCloser, error) { return flate.NewReader(a), nil }
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return zstdql{r.Close, r}, nil
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		AnyNewReader = gzreader
	case 'r':
		AnyNewReader = flatereader
	case 's', 'f':
		AnyNewReader = zstdreader
	default:
		AnyNewReader = zstdreader
	}
	R.intermediate = bufio.NewReader(R.f)
	R.comp, err = AnyNewReader(R.intermediate)
	if err != nil {
		return nil, nil, Error{"Can't set up decompression: " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.comp)
	m := make(map[string]string)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from %q", str), name, []string{"New"}, true}
			}
			R.natoms, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, Error{"Can't read atom number: " + err.Error(), name, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{fmt.Sprintf("Malformed header line %q", str), name, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	R.prec = defaultPrec
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil {
			return nil, nil, Error{"Invalid precision in header: " + err.Error(), name, []string{"New"}, true}
		}
		R.prec = prec
	}
	R.readable = true
	return R, m, nil
}

// Readable returns true if it is possible to call Next on the handle.
func (R *Reader) Readable() bool {
	return R.readable
}

// Len returns the number of atoms in each frame of the archive.
func (R *Reader) Len() int {
	return R.natoms
}

// Next puts in c the coordinates of the next frame in the archive,
// crossing record boundaries silently, and, if given and present, the
// box vectors in box. It satisfies tps.Traj, so an archive can be fed to
// anything that consumes regular trajectories. On the end of the archive
// it returns an error implementing tps.LastFrameError.
func (R *Reader) Next(c *v3.Matrix, box ...[]float64) error {
	if !R.readable {
		return Error{TrajUnIniRead, R.filename, []string{"Next"}, true}
	}
	var vals [6]float64
	for i := 0; i < R.natoms; i++ {
		str, err := R.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 && str == "" {
				R.Close()
				return newlastFrameError(R.filename, "Next")
			}
			return Error{err.Error(), R.filename, []string{"Next"}, true}
		}
		if i == 0 && strings.HasPrefix(str, "&&") {
			//a new record starts here; note the velocity flag and move on
			meta, err := recordMeta(str)
			if err != nil {
				return Error{err.Error(), R.filename, []string{"Next"}, true}
			}
			R.curVel = meta["vel"] == "1"
			i--
			continue
		}
		n, err := rowDecode(str, &vals, R.prec)
		if err != nil {
			return Error{err.Error(), R.filename, []string{"Next"}, true}
		}
		if R.curVel && n != 6 || !R.curVel && n != 3 {
			return Error{fmt.Sprintf("Frame line %q disagrees with the record's velocity flag", strings.TrimSpace(str)), R.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue //the frame is read, checked and dropped
		}
		for j := 0; j < 3; j++ {
			c.Set(i, j, vals[j])
		}
	}
	s, err := R.h.ReadString('\n')
	if err != nil {
		return Error{"Can't read the frame termination mark: " + err.Error(), R.filename, []string{"Next"}, true}
	}
	if s[0] != '*' {
		return Error{"Wrong number of atoms in frame", R.filename, []string{"Next"}, true}
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		fields := strings.Fields(strings.TrimSpace(s))
		if len(fields) >= 10 {
			for j, v := range fields[1:10] {
				box[0][j], err = strconv.ParseFloat(v, 64)
				if err != nil {
					return Error{"Can't parse box vectors: " + err.Error(), R.filename, []string{"Next"}, true}
				}
			}
		}
	}
	return nil
}

// ReadPath reads the next whole path record, returning the path and its
// metadata. On the end of the archive it returns an error implementing
// tps.LastFrameError.
func (R *Reader) ReadPath() (*chem.Path, map[string]string, error) {
	if !R.readable {
		return nil, nil, Error{TrajUnIniRead, R.filename, []string{"ReadPath"}, true}
	}
	str, err := R.h.ReadString('\n')
	if err != nil {
		if err == io.EOF && str == "" {
			R.Close()
			return nil, nil, newlastFrameError(R.filename, "ReadPath")
		}
		return nil, nil, Error{err.Error(), R.filename, []string{"ReadPath"}, true}
	}
	if !strings.HasPrefix(str, "&&") {
		return nil, nil, Error{fmt.Sprintf("Expected a record mark, got %q", strings.TrimSpace(str)), R.filename, []string{"ReadPath"}, true}
	}
	meta, err := recordMeta(str)
	if err != nil {
		return nil, nil, Error{err.Error(), R.filename, []string{"ReadPath"}, true}
	}
	nframes, err := strconv.Atoi(meta["frames"])
	if err != nil {
		return nil, nil, Error{"Can't read the frame count of the record: " + err.Error(), R.filename, []string{"ReadPath"}, true}
	}
	vel := meta["vel"] == "1"
	R.curVel = vel
	var vals [6]float64
	p := chem.NewPath(nframes)
	for i := 0; i < nframes; i++ {
		f := chem.NewFrame(v3.Zeros(R.natoms))
		if vel {
			f.Vel = v3.Zeros(R.natoms)
		}
		for j := 0; j < R.natoms; j++ {
			str, err := R.h.ReadString('\n')
			if err != nil {
				return nil, nil, Error{err.Error(), R.filename, []string{"ReadPath"}, true}
			}
			n, err := rowDecode(str, &vals, R.prec)
			if err != nil {
				return nil, nil, Error{err.Error(), R.filename, []string{"ReadPath"}, true}
			}
			if vel && n != 6 || !vel && n != 3 {
				return nil, nil, Error{fmt.Sprintf("Frame line %q disagrees with the record's velocity flag", strings.TrimSpace(str)), R.filename, []string{"ReadPath"}, true}
			}
			for k := 0; k < 3; k++ {
				f.Coords.Set(j, k, vals[k])
			}
			if vel {
				for k := 0; k < 3; k++ {
					f.Vel.Set(j, k, vals[k+3])
				}
			}
		}
		s, err := R.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read the frame termination mark: " + err.Error(), R.filename, []string{"ReadPath"}, true}
		}
		if s[0] != '*' {
			return nil, nil, Error{"Wrong number of atoms in frame", R.filename, []string{"ReadPath"}, true}
		}
		fields := strings.Fields(strings.TrimSpace(s))
		if len(fields) >= 10 {
			f.Box = make([]float64, 9)
			for k, v := range fields[1:10] {
				f.Box[k], err = strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, nil, Error{"Can't parse box vectors: " + err.Error(), R.filename, []string{"ReadPath"}, true}
				}
			}
		}
		p.Append(f)
	}
	return p, meta, nil
}

// ReadAll reads every remaining path record in the archive.
func (R *Reader) ReadAll() ([]*chem.Path, []map[string]string, error) {
	var paths []*chem.Path
	var metas []map[string]string
	for {
		p, m, err := R.ReadPath()
		if err != nil {
			if _, ok := err.(chem.LastFrameError); ok {
				return paths, metas, nil
			}
			return paths, metas, errDecorate(err, "ReadAll")
		}
		paths = append(paths, p)
		metas = append(metas, m)
	}
}

// Close closes the handle and marks it as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	R.comp.Close()
	R.f.Close()
	R.readable = false
}

func recordMeta(line string) (map[string]string, error) {
	m := make(map[string]string)
	fields := strings.Fields(strings.TrimSpace(line))
	for _, f := range fields[1:] { //fields[0] is the "&&" mark
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("Malformed metadata pair %q in record mark", f)
		}
		m[kv[0]] = kv[1]
	}
	return m, nil
}

//rowDecode parses a frame line of 3 (coordinates) or 6 (coordinates and
//velocities) scaled integers. It returns the number of fields parsed.
func rowDecode(str string, vals *[6]float64, prec int) (int, error) {
	p := math.Pow(10.0, float64(prec))
	s := strings.Fields(str)
	if len(s) != 3 && len(s) != 6 {
		return 0, fmt.Errorf("Ill formatted frame line in ptf: %q", strings.TrimSpace(str))
	}
	for i, v := range s {
		f, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("Can't parse value %d (%s): %s", i, v, err.Error())
		}
		vals[i] = float64(f) / p
	}
	return len(s), nil
}

//Errors

//errDecorate asserts that the error implements tps.Error and decorates
//it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(chem.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for ptf archive errors. It fulfills
// tps.Error and tps.TrajError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ptf file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the failing archive.
func (err Error) FileName() string { return err.filename }

// Format returns the format associated to the error (always "ptf").
func (err Error) Format() string { return "ptf" }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Archive object uninitialized to read"
	TrajUnIniWrite = "Archive object uninitialized to write"
	NilCoordinates = "Given nil or empty path"
)

//lastFrameError implements tps.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "ptf" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
