// Go support for leveled logs, analogous to https://github.com/google/glog.
//
// Copyright 2023 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File I/O for logs.

package glog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogFileMode is the mode and permissions for new log files.
var LogFileMode = os.FileMode(0644)

// maxNameAttempts limits the numeric suffixes tried when a log file name is
// already taken.
const maxNameAttempts = 1000

// levelFile is the log file destination for one severity. Every write to the
// file goes through append, which holds the mutex for the whole record.
type levelFile struct {
	backend *Backend

	level Severity

	filePrefix string

	mu     sync.Mutex
	file   *os.File
	fpath  string
	buf    []byte
	closed bool
}

func (v *Backend) newLevelFile(level Severity) *levelFile {
	return &levelFile{
		backend:    v,
		level:      level,
		filePrefix: fmt.Sprintf("%s.%s.%s.log.%s", v.program, host, userName, level),
	}
}

func (f *levelFile) fileName(t time.Time) string {
	return f.filePrefix + t.Format(".20060102-150405.") + strconv.Itoa(pid)
}

func (f *levelFile) linkName() string {
	return f.backend.program + "." + f.level.String()
}

// Path returns the path of the current log file.
func (f *levelFile) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fpath
}

func (f *levelFile) createFile(t time.Time) (*os.File, string, error) {
	dir := f.backend.flags.LogDir
	name := f.fileName(t)

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL | os.O_APPEND
	for i := 0; i < maxNameAttempts; i++ {
		fname := name
		if i > 0 {
			fname = name + "." + strconv.Itoa(i)
		}
		fpath := filepath.Join(dir, fname)
		fp, err := os.OpenFile(fpath, flags, LogFileMode)
		if err == nil {
			return fp, fpath, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("could not find an unused log file name for %q: %w", name, fs.ErrExist)
}

// updateLink points the severity symlink at the file. A new link is created
// under a temporary name and renamed over the old one, so readers of the link
// never find it missing.
func (f *levelFile) updateLink(fpath string) error {
	dir := filepath.Dir(fpath)
	link := filepath.Join(dir, f.linkName())
	tmp := filepath.Join(dir, "."+f.linkName()+"."+uuid.NewString())
	if err := os.Symlink(filepath.Base(fpath), tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, link); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// rotate starts a new log file. The header is written into the new file and
// the symlink is updated before it becomes visible to append.
func (f *levelFile) rotate(now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.rotateLocked(now)
}

func (f *levelFile) rotateLocked(now time.Time) error {
	if f.closed {
		return os.ErrClosed
	}

	file, fpath, err := f.createFile(now)
	if err != nil {
		return fmt.Errorf("could not create log file: %w", err)
	}

	header := appendHeader(f.buf[:0], now, f.backend.start, &f.backend.flags)
	if _, err := file.Write(header); err != nil {
		file.Close()
		os.Remove(fpath)
		return fmt.Errorf("could not write header to %q: %w", fpath, err)
	}
	if err := f.updateLink(fpath); err != nil {
		file.Close()
		os.Remove(fpath)
		return fmt.Errorf("could not update symlink for %q: %w", fpath, err)
	}

	if f.file != nil {
		f.file.Close()
	}
	f.file, f.fpath = file, fpath
	return nil
}

// append writes the formatted line and an optional backtrace to the log file
// with a single write call.
func (f *levelFile) append(line, backtrace []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return os.ErrClosed
	}

	data := line
	if len(backtrace) > 0 {
		f.buf = append(append(f.buf[:0], line...), backtrace...)
		data = f.buf
	}
	_, err := f.file.Write(data)
	return err
}

func (f *levelFile) sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	return f.file.Sync()
}

func (f *levelFile) close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// remove closes the destination and deletes its file and symlink. It is used
// to undo a partially initialized backend.
func (f *levelFile) remove() {
	f.close()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fpath == "" {
		return
	}
	link := filepath.Join(filepath.Dir(f.fpath), f.linkName())
	if target, err := os.Readlink(link); err == nil && target == filepath.Base(f.fpath) {
		os.Remove(link)
	}
	os.Remove(f.fpath)
}
