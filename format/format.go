// Copyright 2026 The boolq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package format exposes the restore context AST nodes write themselves
// into when rendering back to querystring text.
package format

import (
	"io"
	"strings"
)

// RestoreFlags mark how to restore an AST node into text.
type RestoreFlags uint64

// Flag bits.
const (
	RestoreKeyWordUppercase RestoreFlags = 1 << iota
	RestoreKeyWordLowercase
)

// DefaultRestoreFlags is the default value of RestoreFlags.
const DefaultRestoreFlags = RestoreKeyWordUppercase

func (rf RestoreFlags) has(flag RestoreFlags) bool {
	return rf&flag != 0
}

// RestoreCtx is the restore context passed to Node.Restore.
type RestoreCtx struct {
	Flags RestoreFlags
	In    io.Writer
}

// NewRestoreCtx returns a new RestoreCtx.
func NewRestoreCtx(flags RestoreFlags, in io.Writer) *RestoreCtx {
	return &RestoreCtx{Flags: flags, In: in}
}

// WriteKeyWord writes the keyword into the writer, honoring the case
// flags.
func (ctx *RestoreCtx) WriteKeyWord(keyWord string) {
	switch {
	case ctx.Flags.has(RestoreKeyWordLowercase):
		keyWord = strings.ToLower(keyWord)
	default:
		keyWord = strings.ToUpper(keyWord)
	}
	_, _ = io.WriteString(ctx.In, keyWord)
}

// WriteString writes a term wrapped in double quotes. Embedded double
// quotes are dropped, matching what the scanner can read back.
func (ctx *RestoreCtx) WriteString(str string) {
	str = strings.ReplaceAll(str, `"`, ``)
	_, _ = io.WriteString(ctx.In, `"`+str+`"`)
}

// WritePlain writes the string verbatim.
func (ctx *RestoreCtx) WritePlain(plainText string) {
	_, _ = io.WriteString(ctx.In, plainText)
}
