/*
Copyright 2024 The Unitext Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log is a thin adapter around glog. A pure algorithmic library
// has no daemon lifecycle and no flags to register, so this adapter keeps
// only the direct logging calls; every call site in the module fires at
// most once per malformed-table diagnosis, never on the hot path of a
// property lookup or a normalization pass.
package log

import "github.com/golang/glog"

// Flush ensures any pending I/O is written; callers that exit after a
// logged Errorf should flush first, as glog buffers disk writes.
var Flush = glog.Flush

// Infof, Warningf and Errorf log at increasing severity, exactly like the
// glog functions they wrap. Errorf is reserved in this module for
// programming errors: a curated table returning a value the calling
// engine's closed switch does not recognize, which can only happen if the
// table itself is malformed.
func Infof(format string, args ...any)    { glog.Infof(format, args...) }
func Warningf(format string, args ...any) { glog.Warningf(format, args...) }
func Errorf(format string, args ...any)   { glog.Errorf(format, args...) }
