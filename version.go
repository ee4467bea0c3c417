// Copyright ©2025 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gemmbench

import (
	"runtime/debug"
)

const root = "github.com/LynnColeArt/gemmbench"

// Version returns the version of gemmbench and its checksum. The returned
// values are only valid in binaries built with module support.
//
// The exact version format returned by Version may change in future.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			if m.Replace != nil {
				return m.Version + "*", m.Sum + "*"
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
