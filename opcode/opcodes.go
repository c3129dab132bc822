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

package opcode

import "fmt"

// Op is the boolean operator code.
type Op int

// List of operators.
const (
	LogicAnd Op = iota + 1
	LogicOr
	Not
)

var ops = map[Op]string{
	LogicAnd: "AND",
	LogicOr:  "OR",
	Not:      "NOT",
}

// String implements fmt.Stringer interface.
func (o Op) String() string {
	str, ok := ops[o]
	if !ok {
		panic(fmt.Sprintf("%d: unknown operator", o))
	}
	return str
}

// IsValid returns true if o is a known operator code.
func (o Op) IsValid() bool {
	_, ok := ops[o]
	return ok
}
